package availability

import (
	"context"
	"strings"
	"testing"
	"time"

	"roamly/cache"
)

func fixedService(store cache.Store) *Service {
	svc := NewService(store)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestProvider(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.opentable.com/r/carbone", "opentable"},
		{"https://resy.com/cities/ny/atomix", "resy"},
		{"https://www.yelp.com/biz/carbone", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		if got := Provider(tt.url); got != tt.want {
			t.Errorf("Provider(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestCheck_OpenTableDeepLinks(t *testing.T) {
	svc := fixedService(nil)
	resp, err := svc.Check(context.Background(), Request{
		URL:       "https://www.opentable.com/r/carbone",
		PartySize: 4,
		Days:      2,
		Date:      "2026-03-10",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Provider != "opentable" || resp.PartySize != 4 {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.Days) != 2 {
		t.Fatalf("days = %d", len(resp.Days))
	}
	if resp.Days[0].Date != "2026-03-10" || resp.Days[1].Date != "2026-03-11" {
		t.Errorf("dates = %s, %s", resp.Days[0].Date, resp.Days[1].Date)
	}
	if len(resp.Days[0].Slots) != 3 {
		t.Fatalf("slots = %d", len(resp.Days[0].Slots))
	}
	first := resp.Days[0].Slots[0]
	if first.Time != "5:00 PM" {
		t.Errorf("slot time = %q", first.Time)
	}
	if !strings.Contains(first.URL, "covers=4") || !strings.Contains(first.URL, "dateTime=2026-03-10T17%3A00") {
		t.Errorf("deep link = %q", first.URL)
	}
}

func TestCheck_ResyDeepLinks(t *testing.T) {
	svc := fixedService(nil)
	resp, err := svc.Check(context.Background(), Request{URL: "https://resy.com/cities/ny/atomix"})
	if err != nil {
		t.Fatal(err)
	}
	// defaults: party of 2, one day starting today
	if resp.PartySize != 2 || len(resp.Days) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Days[0].Date != "2026-03-02" {
		t.Errorf("date = %q", resp.Days[0].Date)
	}
	link := resp.Days[0].Slots[2].URL
	if !strings.Contains(link, "seats=2") || !strings.Contains(link, "date=2026-03-02") || !strings.Contains(link, "time=19%3A00") {
		t.Errorf("deep link = %q", link)
	}
}

func TestCheck_DaysCapped(t *testing.T) {
	svc := fixedService(nil)
	resp, err := svc.Check(context.Background(), Request{
		URL:  "https://www.opentable.com/r/carbone",
		Days: 30,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Days) != maxDays {
		t.Errorf("days = %d, want %d", len(resp.Days), maxDays)
	}
}

func TestCheck_UnsupportedProvider(t *testing.T) {
	svc := fixedService(nil)
	if _, err := svc.Check(context.Background(), Request{URL: "https://example.com"}); err != ErrUnsupportedProvider {
		t.Fatalf("err = %v", err)
	}
}

func TestCheck_Cached(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemory(func() time.Time { return now })
	svc := fixedService(store)

	req := Request{URL: "https://resy.com/cities/ny/atomix", PartySize: 2, Days: 1, Date: "2026-03-10"}
	first, err := svc.Check(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Check(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if first.Days[0].Date != second.Days[0].Date || len(first.Days[0].Slots) != len(second.Days[0].Slots) {
		t.Errorf("cached response differs: %+v vs %+v", first, second)
	}
}
