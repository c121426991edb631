package pricing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"roamly/models"
)

// Venue kinds for snippet mining. Food maps to restaurant, hotel to hotel,
// everything else to activity.
const (
	kindRestaurant = "restaurant"
	kindHotel      = "hotel"
	kindActivity   = "activity"
)

// Plausibility windows: candidate prices outside the window for the venue
// kind are discarded as noise.
var priceWindows = map[string][2]int{
	kindRestaurant: {20, 400},
	kindHotel:      {100, 2000},
	kindActivity:   {10, 200},
}

var (
	perPersonRe  = regexp.MustCompile(`(?i)\$(\d{2,3})\s*(?:per person|pp\b|/person)`)
	tastingRe    = regexp.MustCompile(`(?i)tasting menu[^$]*\$(\d{2,4})|\$(\d{2,4})[^$]*tasting menu`)
	nightlyRe    = regexp.MustCompile(`(?i)\$(\d{2,4})\s*(?:/night|per night|a night|nightly)`)
	fromRe       = regexp.MustCompile(`(?i)(?:from|starting at|rates? from)\s*\$(\d{1,4})`)
	ticketRe     = regexp.MustCompile(`(?i)(?:tickets?|admission|entry)[^$]*\$(\d{1,3})|\$(\d{1,3})[^$]*(?:tickets?|admission|entry)`)
	rangeRe      = regexp.MustCompile(`\$(\d{2,4})\s*[-–]\s*\$?(\d{2,4})`)
	standaloneRe = regexp.MustCompile(`\$(\d{1,4})(?:\D|$)`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// VenueKind maps a link category to the snippet-mining venue kind.
func VenueKind(category string) string {
	switch category {
	case models.CategoryFood:
		return kindRestaurant
	case models.CategoryHotel:
		return kindHotel
	default:
		return kindActivity
	}
}

// ExtractPriceFromText mines a search-result corpus for a dollar figure
// appropriate to the venue kind. Kind-specific labeled patterns are tried
// first, then "$N-$M" ranges (midpoint), then standalone amounts filtered by
// the plausibility window; of the survivors the median wins, not the first.
// Returns nil when nothing plausible is found.
func ExtractPriceFromText(raw, kind string) *int {
	text := whitespaceRe.ReplaceAllString(htmlTagRe.ReplaceAllString(raw, " "), " ")
	window := priceWindows[kind]

	switch kind {
	case kindRestaurant:
		if p := firstGroup(perPersonRe, text); p != nil {
			return p
		}
		if p := firstGroup(tastingRe, text); p != nil {
			return p
		}
	case kindHotel:
		if p := firstGroup(nightlyRe, text); p != nil {
			return p
		}
		if p := firstGroup(fromRe, text); p != nil {
			return p
		}
	case kindActivity:
		if p := firstGroup(ticketRe, text); p != nil {
			return p
		}
		if p := firstGroup(fromRe, text); p != nil {
			return p
		}
	}

	if m := rangeRe.FindStringSubmatch(text); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		mid := (low + high + 1) / 2
		if mid >= window[0] && mid <= window[1] {
			return &mid
		}
	}

	var candidates []int
	for _, m := range standaloneRe.FindAllStringSubmatch(text, -1) {
		p, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if p >= window[0] && p <= window[1] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Ints(candidates)
	median := candidates[len(candidates)/2]
	return &median
}

// firstGroup returns the first non-empty capture group as an int.
func firstGroup(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		if n, err := strconv.Atoi(g); err == nil {
			return &n
		}
	}
	return nil
}

// BuildQueries assembles the search-engine queries for a venue, most
// specific first.
func BuildQueries(title, location, kind string) []string {
	switch kind {
	case kindRestaurant:
		return []string{
			fmt.Sprintf("%q %s price per person", title, location),
			fmt.Sprintf("%q %s menu prices how much", title, location),
			fmt.Sprintf("%q restaurant cost dinner", title),
		}
	case kindHotel:
		return []string{
			fmt.Sprintf("%q %s room rate per night", title, location),
			fmt.Sprintf("%q hotel nightly rate price", title),
			fmt.Sprintf("%q %s hotel cost", title, location),
		}
	default:
		return []string{
			fmt.Sprintf("%q %s ticket price admission", title, location),
			fmt.Sprintf("%q cost how much", title),
		}
	}
}
