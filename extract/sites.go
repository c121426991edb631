package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Site-specific extraction idioms for the review hosts we know the shape of.
// Every strategy chain is: JSON-LD, then the site's own DOM idiom, then the
// generic free-text patterns.

var (
	yelpAriaRe       = regexp.MustCompile(`(?i)aria-label="(\d(?:\.\d)?) star rating"`)
	taBubbleRe       = regexp.MustCompile(`(?i)bubble_(\d{2})\b`)
	taOfBubblesRe    = regexp.MustCompile(`(?i)(\d(?:\.\d)?)\s*of\s*5\s*bubbles`)
	otStarsBasedRe   = regexp.MustCompile(`(?i)(\d(?:\.\d)?)\s*stars?\s*based on`)
	reviewCountAnyRe = regexp.MustCompile(`(?i)\(?([\d,]{1,11})\)?\s*reviews?\b`)
)

// Host reports which known review site serves the URL, or "".
func Host(rawURL string) string {
	u := strings.ToLower(rawURL)
	switch {
	case strings.Contains(u, "yelp.com"):
		return "Yelp"
	case strings.Contains(u, "tripadvisor."):
		return "TripAdvisor"
	case strings.Contains(u, "opentable."):
		return "OpenTable"
	}
	return ""
}

// FromSite dispatches to the idiom for the URL's host, falling back to the
// generic extractor for everything else.
func FromSite(rawURL, html string) Signals {
	switch Host(rawURL) {
	case "Yelp":
		return FromYelp(html)
	case "TripAdvisor":
		return FromTripAdvisor(html)
	case "OpenTable":
		return FromOpenTable(html)
	}
	return FromHTML(html)
}

// FromYelp reads Yelp's accessibility labels ("4.5 star rating").
func FromYelp(html string) Signals {
	s := fromJSONLD(html)
	if s.Rating == nil {
		if m := yelpAriaRe.FindStringSubmatch(html); m != nil {
			s.Rating = parseRating(m[1])
		}
	}
	if s.ReviewCount == nil {
		if m := reviewCountAnyRe.FindStringSubmatch(html); m != nil {
			if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				s.ReviewCount = &n
			}
		}
	}
	s.merge(fromText(StripTags(html)))
	return s
}

// FromTripAdvisor decodes bubble ratings: a "bubble_45" class means 4.5.
func FromTripAdvisor(html string) Signals {
	s := fromJSONLD(html)
	if s.Rating == nil {
		if m := taBubbleRe.FindStringSubmatch(html); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				s.Rating = parseRating(strconv.FormatFloat(float64(n)/10, 'f', 1, 64))
			}
		}
	}
	if s.Rating == nil {
		if m := taOfBubblesRe.FindStringSubmatch(html); m != nil {
			s.Rating = parseRating(m[1])
		}
	}
	s.merge(fromText(StripTags(html)))
	return s
}

// FromOpenTable reads OpenTable's "N stars based on" blurb.
func FromOpenTable(html string) Signals {
	s := fromJSONLD(html)
	if s.Rating == nil {
		if m := otStarsBasedRe.FindStringSubmatch(html); m != nil {
			s.Rating = parseRating(m[1])
		}
	}
	s.merge(fromText(StripTags(html)))
	return s
}
