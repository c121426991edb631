package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"roamly/cache"
)

const (
	maxDays  = 5
	checkTTL = 10 * time.Minute
)

var ErrUnsupportedProvider = errors.New("reservation provider not supported")

type Request struct {
	URL       string `json:"url"`
	PartySize int    `json:"partySize"`
	Days      int    `json:"days"`
	Date      string `json:"date"` // YYYY-MM-DD, defaults to today
}

type Slot struct {
	Time string `json:"time"` // "5:00 PM"
	URL  string `json:"url"`  // provider deep link for this slot
}

type DayAvailability struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

type Response struct {
	Provider  string            `json:"provider"`
	PartySize int               `json:"partySize"`
	Days      []DayAvailability `json:"days"`
}

// Evening slots every provider link is generated for.
var slotHours = []struct {
	display string
	wire    string
}{
	{"5:00 PM", "17:00"},
	{"6:00 PM", "18:00"},
	{"7:00 PM", "19:00"},
}

// Service builds reservation deep links for supported booking providers.
// Providers expose no public availability API, so the slots are the standard
// evening times with a prefilled booking URL; the provider page settles what
// is actually free. Results are cached briefly to keep repeated checks from
// the same trip page cheap.
type Service struct {
	store cache.Store
	now   cache.Clock
}

func NewService(store cache.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Provider recognizes the reservation platform behind a venue URL.
func Provider(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "opentable"):
		return "opentable"
	case strings.Contains(host, "resy.com"):
		return "resy"
	default:
		return ""
	}
}

func (s *Service) Check(ctx context.Context, req Request) (Response, error) {
	provider := Provider(req.URL)
	if provider == "" {
		return Response{}, ErrUnsupportedProvider
	}

	if req.PartySize <= 0 {
		req.PartySize = 2
	}
	if req.Days <= 0 {
		req.Days = 1
	}
	if req.Days > maxDays {
		req.Days = maxDays
	}

	start := s.now().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return Response{}, fmt.Errorf("bad date %q: %w", req.Date, err)
		}
		start = parsed
	}

	key := cache.Fingerprint("availability", provider, req.URL,
		fmt.Sprint(req.PartySize), fmt.Sprint(req.Days), start.Format("2006-01-02"))
	if s.store != nil {
		if cached, ok := s.store.Get(ctx, key); ok {
			var resp Response
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	resp := Response{Provider: provider, PartySize: req.PartySize}
	for d := 0; d < req.Days; d++ {
		date := start.AddDate(0, 0, d).Format("2006-01-02")
		day := DayAvailability{Date: date}
		for _, h := range slotHours {
			day.Slots = append(day.Slots, Slot{
				Time: h.display,
				URL:  deepLink(provider, req.URL, date, h.wire, req.PartySize),
			})
		}
		resp.Days = append(resp.Days, day)
	}

	if s.store != nil {
		if raw, err := json.Marshal(resp); err == nil {
			s.store.Put(ctx, key, string(raw), checkTTL)
		}
	}
	return resp, nil
}

// deepLink prefills the provider's booking page for one date, time and party.
func deepLink(provider, rawURL, date, wireTime string, party int) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	switch provider {
	case "opentable":
		q.Set("covers", fmt.Sprint(party))
		q.Set("dateTime", date+"T"+wireTime)
	case "resy":
		q.Set("date", date)
		q.Set("seats", fmt.Sprint(party))
		q.Set("time", wireTime)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
