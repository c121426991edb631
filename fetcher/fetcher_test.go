package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stubDoer struct {
	status int
	body   string
	err    error
	gotUA  string
	gotURL string
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.gotUA = req.Header.Get("User-Agent")
	s.gotURL = req.URL.String()
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func TestFetchPage_OK(t *testing.T) {
	stub := &stubDoer{status: 200, body: "<html>hi</html>"}
	c := NewWithDoer(stub)
	got := c.FetchPage(context.Background(), "https://example.com")
	if got != "<html>hi</html>" {
		t.Fatalf("body = %q", got)
	}
	if !strings.Contains(stub.gotUA, "Mozilla/5.0") {
		t.Errorf("expected browser UA, got %q", stub.gotUA)
	}
}

func TestFetchPage_FailuresReturnEmpty(t *testing.T) {
	tests := []struct {
		name string
		stub *stubDoer
	}{
		{"network error", &stubDoer{err: errors.New("dial refused")}},
		{"404", &stubDoer{status: 404, body: "not found"}},
		{"500", &stubDoer{status: 500, body: "boom"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewWithDoer(tt.stub).FetchPage(context.Background(), "https://example.com"); got != "" {
				t.Errorf("got %q, want empty", got)
			}
		})
	}
}

func TestFetchPage_BadURL(t *testing.T) {
	if got := New().FetchPage(context.Background(), "://no-scheme"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSearchHTML_EncodesQuery(t *testing.T) {
	stub := &stubDoer{status: 200, body: "results"}
	c := NewWithDoer(stub)
	c.SearchHTML(context.Background(), `"Le Bernardin" price per person`)
	if !strings.Contains(stub.gotURL, "duckduckgo.com") {
		t.Errorf("url = %q", stub.gotURL)
	}
	if strings.Contains(stub.gotURL, ` `) {
		t.Errorf("query not escaped: %q", stub.gotURL)
	}
}
