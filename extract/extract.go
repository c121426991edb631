package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Signals are the best-effort rating facts mined from one page. Fields the
// page did not yield stay nil/empty; extraction never fails outright.
type Signals struct {
	Rating      *float64
	ReviewCount *int
	PriceRange  string // "$".."$$$$"
}

// merge fills s's empty fields from other. Earlier (more trusted) strategies
// always win; there is no blending across sources.
func (s *Signals) merge(other Signals) {
	if s.Rating == nil {
		s.Rating = other.Rating
	}
	if s.ReviewCount == nil {
		s.ReviewCount = other.ReviewCount
	}
	if s.PriceRange == "" {
		s.PriceRange = other.PriceRange
	}
}

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	spaceRe      = regexp.MustCompile(`\s+`)
	ratingOfRe   = regexp.MustCompile(`(?i)(\d(?:\.\d)?)\s*(?:out of|of|/)\s*5`)
	ratingStarRe = regexp.MustCompile(`(?i)(\d(?:\.\d)?)\s*stars?\b`)
	reviewsRe    = regexp.MustCompile(`(?i)([\d,]{1,11})\s*reviews?\b`)
	priceNearRe  = regexp.MustCompile(`(?i)price(?:\s*range)?[^$]{0,40}(\${1,4})`)
	priceBareRe  = regexp.MustCompile(`(?:^|[\s(>])(\${1,4})(?:[\s)<.,]|$)`)
)

// StripTags collapses markup to whitespace-separated text. It is regex-based
// on purpose: it has to survive truncated and malformed documents that a
// strict parser would choke on.
func StripTags(html string) string {
	return spaceRe.ReplaceAllString(tagRe.ReplaceAllString(html, " "), " ")
}

// FromHTML extracts signals from an arbitrary page: structured data first,
// free-text patterns second.
func FromHTML(html string) Signals {
	s := fromJSONLD(html)
	s.merge(fromText(StripTags(html)))
	return s
}

// fromText runs the free-text fallback patterns over tag-stripped text.
func fromText(text string) Signals {
	var s Signals
	if m := ratingOfRe.FindStringSubmatch(text); m != nil {
		s.Rating = parseRating(m[1])
	}
	if s.Rating == nil {
		if m := ratingStarRe.FindStringSubmatch(text); m != nil {
			s.Rating = parseRating(m[1])
		}
	}
	if m := reviewsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil && n >= 0 {
			s.ReviewCount = &n
		}
	}
	if m := priceNearRe.FindStringSubmatch(text); m != nil {
		s.PriceRange = m[1]
	} else if m := priceBareRe.FindStringSubmatch(text); m != nil {
		s.PriceRange = m[1]
	}
	return s
}

// parseRating rejects out-of-domain values so a later strategy can still
// have a go.
func parseRating(raw string) *float64 {
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil || r < 1 || r > 5 {
		return nil
	}
	return &r
}
