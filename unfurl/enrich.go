package unfurl

import (
	"context"
	"fmt"
	"strings"

	"roamly/extract"
	"roamly/models"
	"roamly/pricing"
)

// Venue types assigned during food enrichment.
const (
	venueFineDining = "fine_dining"
	venueFastCasual = "fast_casual"
	venueCafe       = "cafe"
	venueBar        = "bar"
	venueCasual     = "casual"
)

var cuisineKeywords = []string{
	"italian", "japanese", "french", "mexican", "thai", "chinese",
	"korean", "indian", "mediterranean", "greek", "spanish", "vietnamese",
	"peruvian", "ethiopian", "american", "steakhouse", "seafood",
	"sushi", "ramen", "pizza", "bbq", "barbecue", "vegan", "vegetarian",
}

// enrich runs the secondary free-text search pass for food and hotel venues:
// venue type, meal times, cuisine, a per-person or nightly price, and a short
// summary. Everything here is best-effort; a dead search engine just leaves
// the fields empty.
func (s *Service) enrich(ctx context.Context, rec *models.VenueLink) {
	var query string
	if rec.Category == models.CategoryFood {
		query = fmt.Sprintf("%q restaurant cuisine menu breakfast lunch dinner price", rec.Title)
	} else {
		query = fmt.Sprintf("%q hotel nightly rate reviews", rec.Title)
	}

	corpus := strings.ToLower(extract.StripTags(s.fetch.SearchHTML(ctx, query)))
	nameText := strings.ToLower(rec.Title + " " + rec.Description)

	switch rec.Category {
	case models.CategoryFood:
		rec.VenueType = classifyVenueType(nameText, corpus, rec.PriceRange)
		rec.MealTimes = detectMealTimes(nameText + " " + corpus)
		rec.CuisineType = detectCuisine(nameText + " " + corpus)

		if p := pricing.ExtractPriceFromText(corpus, pricing.VenueKind(rec.Category)); p != nil {
			rec.EstimatedPricePerPerson = p
		} else if rec.PriceRange != "" {
			est := pricing.Estimate(rec.Category, rec.Title, rec.Description, rec.PriceRange)
			rec.EstimatedPricePerPerson = &est.EstimatedCost
		}
	case models.CategoryHotel:
		// a mined nightly rate beats the static tier table
		if p := pricing.ExtractPriceFromText(corpus, pricing.VenueKind(rec.Category)); p != nil {
			rec.EstimatedPricePerPerson = p
		}
	}

	rec.AISummary = buildSummary(rec)
}

func classifyVenueType(nameText, corpus, priceRange string) string {
	combined := nameText + " " + corpus
	switch {
	case pricing.IsFineDining(nameText, corpus) || pricing.DollarCount(priceRange) == 4:
		return venueFineDining
	case containsAny(combined, "cafe", "café", "coffee", "bakery", "patisserie", "brunch spot"):
		return venueCafe
	case containsAny(combined, "cocktail bar", "wine bar", "taproom", "brewery", "speakeasy"):
		return venueBar
	case containsAny(combined, "fast casual", "counter service", "quick service", "food truck", "takeout"):
		return venueFastCasual
	default:
		return venueCasual
	}
}

// detectMealTimes reports which meal services the corpus mentions, in the
// fixed breakfast/lunch/dinner order.
func detectMealTimes(text string) []string {
	var times []string
	if containsAny(text, "breakfast", "brunch") {
		times = append(times, "breakfast")
	}
	if strings.Contains(text, "lunch") {
		times = append(times, "lunch")
	}
	if strings.Contains(text, "dinner") {
		times = append(times, "dinner")
	}
	return times
}

func detectCuisine(text string) string {
	for _, c := range cuisineKeywords {
		if strings.Contains(text, c) {
			return c
		}
	}
	return ""
}

// buildSummary composes the one-line blurb shown on the venue card.
func buildSummary(rec *models.VenueLink) string {
	var b strings.Builder
	b.WriteString(rec.Title)

	switch rec.Category {
	case models.CategoryFood:
		b.WriteString(" is a ")
		if rec.VenueType != "" {
			b.WriteString(strings.ReplaceAll(rec.VenueType, "_", " "))
			b.WriteString(" ")
		}
		if rec.CuisineType != "" {
			b.WriteString(rec.CuisineType)
			b.WriteString(" ")
		}
		b.WriteString("restaurant")
		if rec.EstimatedPricePerPerson != nil {
			fmt.Fprintf(&b, ", around $%d per person", *rec.EstimatedPricePerPerson)
		}
	case models.CategoryHotel:
		tier, nightly := pricing.HotelTier(rec.Title)
		if rec.EstimatedPricePerPerson != nil {
			nightly = *rec.EstimatedPricePerPerson
		}
		if tier != "unknown" {
			fmt.Fprintf(&b, " is a %s hotel, around $%d per night", tier, nightly)
		} else {
			fmt.Fprintf(&b, " is a hotel, around $%d per night", nightly)
		}
	}

	if rec.Rating != nil {
		fmt.Fprintf(&b, ", rated %.1f", *rec.Rating)
		if rec.ReviewCount != nil {
			fmt.Fprintf(&b, " by %d reviewers", *rec.ReviewCount)
		}
	}
	b.WriteString(".")
	return b.String()
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
