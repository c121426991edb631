package unfurl

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"
	"time"

	"roamly/cache"
	"roamly/classify"
	"roamly/extract"
	"roamly/fetcher"
	"roamly/models"
)

const memoTTL = 5 * time.Minute

// Service turns a pasted URL into an enriched venue record. It never fails:
// every external miss degrades to a null field and the record always carries
// at least a title and a category.
type Service struct {
	fetch *fetcher.Client
	memo  cache.Store // optional short-TTL memoization; nil disables it
}

func NewService(f *fetcher.Client, memo cache.Store) *Service {
	return &Service{fetch: f, memo: memo}
}

// Unfurl resolves a URL into a venue record, consulting the memo cache for
// repeated pastes of the same link.
func (s *Service) Unfurl(ctx context.Context, rawURL string) models.VenueLink {
	key := cache.Fingerprint("unfurl", rawURL)
	if s.memo != nil {
		if cached, ok := s.memo.Get(ctx, key); ok {
			var rec models.VenueLink
			if err := json.Unmarshal([]byte(cached), &rec); err == nil {
				return rec
			}
		}
	}

	rec := s.unfurl(ctx, rawURL)

	if s.memo != nil {
		if raw, err := json.Marshal(rec); err == nil {
			s.memo.Put(ctx, key, string(raw), memoTTL)
		}
	}
	return rec
}

func (s *Service) unfurl(ctx context.Context, rawURL string) models.VenueLink {
	html := s.fetch.FetchPage(ctx, rawURL)

	meta := parseMeta(html)
	title := CleanTitle(meta.title, rawURL)
	category := classify.Classify(rawURL, title)

	rec := models.VenueLink{
		URL:         rawURL,
		Title:       title,
		Description: meta.description,
		Category:    category,
	}

	// Direct extraction from the fetched page first; the known review hosts
	// get their own idioms.
	var sig extract.Signals
	if html != "" {
		sig = extract.FromSite(rawURL, html)
		if sig.Rating != nil {
			if host := extract.Host(rawURL); host != "" {
				rec.RatingSource = host
			} else {
				rec.RatingSource = "page"
			}
		}
	}

	// No rating on the page itself: ask the review sources by business name.
	if sig.Rating == nil && len([]rune(title)) >= 3 {
		found, source := s.searchRatings(ctx, title)
		if found.Rating != nil {
			sig.Rating = found.Rating
			rec.RatingSource = source
		}
		if sig.ReviewCount == nil {
			sig.ReviewCount = found.ReviewCount
		}
		if sig.PriceRange == "" {
			sig.PriceRange = found.PriceRange
		}
	}

	rec.Rating = sig.Rating
	rec.ReviewCount = sig.ReviewCount
	rec.PriceRange = sig.PriceRange

	// Secondary enrichment for food and hotel venues. Failures here must not
	// cost us the rest of the record.
	if category == models.CategoryFood || category == models.CategoryHotel {
		s.enrich(ctx, &rec)
	}

	rec.ImageURL = resolveImage(meta.image, rawURL)
	if rec.ImageURL == "" && category == models.CategoryFood {
		rec.ImageURL = s.imageLookup(ctx, title)
	}

	return rec
}

// The rating sources in fixed priority order. Lookups run concurrently but
// the winner is decided by this order, never by arrival order.
var ratingSources = []struct {
	name string
	site string
}{
	{"Yelp", "yelp.com"},
	{"TripAdvisor", "tripadvisor.com"},
	{"Google", ""},
}

func (s *Service) searchRatings(ctx context.Context, title string) (extract.Signals, string) {
	results := make([]extract.Signals, len(ratingSources))

	var wg sync.WaitGroup
	for i := range ratingSources {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := ratingSources[i]
			query := fmt.Sprintf("%q reviews rating", title)
			if src.site != "" {
				query = fmt.Sprintf("%q site:%s", title, src.site)
			}
			if body := s.fetch.SearchHTML(ctx, query); body != "" {
				results[i] = extract.FromHTML(body)
			}
		}(i)
	}
	wg.Wait()

	for i, src := range ratingSources {
		if results[i].Rating != nil {
			return results[i], src.name
		}
	}
	return extract.Signals{}, ""
}

var imgSrcPattern = regexp.MustCompile(`<img[^>]+src=["'](https?://[^"']+)`)

// imageLookup is the last-ditch image search for food venues that came back
// without a photo.
func (s *Service) imageLookup(ctx context.Context, title string) string {
	body := s.fetch.SearchHTML(ctx, fmt.Sprintf("%q restaurant photos", title))
	if body == "" {
		return ""
	}
	if m := imgSrcPattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}
