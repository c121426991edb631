package pricing

import (
	"fmt"
	"strings"

	"roamly/models"
)

// Per-person cost for food venues by dollar-sign count.
var foodDollarMap = map[int]int{1: 20, 2: 40, 3: 75, 4: 175}

// Nightly-rate constants per hotel tier.
const (
	luxuryNightly   = 950
	upscaleNightly  = 450
	midrangeNightly = 275
	budgetNightly   = 175
	rentalNightly   = 250
	unknownNightly  = 350
)

const fineDiningPerPerson = 200

// Flat defaults when nothing better is known.
var categoryDefaults = map[string]models.PriceEstimate{
	models.CategoryFood: {
		EstimatedCost: 50,
		Confidence:    "low",
		Source:        "category_default",
		Explanation:   "Default restaurant estimate - suggest adding actual cost",
	},
	models.CategoryActivity: {
		EstimatedCost: 35,
		Confidence:    "low",
		Source:        "category_default",
		Explanation:   "Default activity estimate",
	},
	models.CategoryOther: {
		EstimatedCost: 25,
		Confidence:    "low",
		Source:        "category_default",
		Explanation:   "Default estimate",
	},
}

var luxuryBrands = []string{
	"four seasons", "fourseasons", "ritz carlton", "ritz-carlton", "st. regis", "st regis",
	"mandarin oriental", "peninsula", "waldorf astoria", "waldorf", "aman", "rosewood",
	"park hyatt", "baccarat", "the mark", "the carlyle", "carlyle", "the plaza", "plaza hotel",
	"the pierre", "pierre hotel", "the langham", "langham", "the greenwich", "equinox hotel",
	"one hotel", "edition", "the edition", "nomad hotel", "gramercy park hotel",
}

var upscaleBrands = []string{
	"marriott", "hilton", "hyatt", "westin", "sheraton", "w hotel", "w new york",
	"conrad", "intercontinental", "kimpton", "thompson", "dream hotel", "sixty hotels",
	"soho grand", "tribeca grand", "the standard", "standard hotel", "ace hotel",
	"the dominick", "dominick", "lotte", "jw marriott", "the whitby", "the william",
	"the beekman", "refinery hotel", "gansevoort", "the james", "viceroy",
}

var midrangeBrands = []string{
	"holiday inn", "courtyard", "residence inn", "hampton inn", "hampton", "doubletree",
	"crowne plaza", "radisson", "wyndham", "best western", "hyatt place", "hyatt house",
	"even hotel", "cambria", "hotel indigo", "aloft", "element", "fairfield",
	"springhill", "towneplace", "homewood suites", "embassy suites",
}

var budgetBrands = []string{
	"pod", "moxy", "citizenm", "citizen m", "yotel", "freehand", "hi hostel",
	"hostelling", "la quinta", "red roof", "motel 6", "super 8", "days inn",
	"microtel", "travelodge", "howard johnson", "econo lodge", "sleep inn",
	"arlo", "made hotel", "the jane",
}

var rentalKeywords = []string{"airbnb", "vrbo", "apartment", "loft"}

var fineDiningIndicators = []string{
	"michelin", "tasting menu", "omakase", "fine dining", "chef's table",
	"james beard", "starred", "haute cuisine", "eleven madison", "per se",
	"le bernardin", "masa", "chef", "kaiseki", "prix fixe",
}

// HotelTier classifies a hotel by brand name and returns its nightly-rate
// constant. The tiers are checked in order; an unrecognized name gets the
// default tier.
func HotelTier(title string) (tier string, nightly int) {
	name := strings.ToLower(title)

	for _, brand := range luxuryBrands {
		if strings.Contains(name, brand) {
			return "luxury", luxuryNightly
		}
	}
	for _, brand := range upscaleBrands {
		if strings.Contains(name, brand) {
			return "upscale", upscaleNightly
		}
	}
	for _, brand := range midrangeBrands {
		if strings.Contains(name, brand) {
			return "midrange", midrangeNightly
		}
	}
	for _, brand := range budgetBrands {
		if strings.Contains(name, brand) {
			return "budget", budgetNightly
		}
	}
	for _, kw := range rentalKeywords {
		if strings.Contains(name, kw) {
			return "rental", rentalNightly
		}
	}
	return "unknown", unknownNightly
}

// IsFineDining spots upscale restaurants from name/description keywords.
func IsFineDining(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, ind := range fineDiningIndicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}

// DollarCount counts price-range glyphs ("$$$" -> 3).
func DollarCount(priceRange string) int {
	return strings.Count(priceRange, "$")
}

// Estimate produces a purely static cost estimate from category and venue
// signals. It never does I/O and is total over its inputs: any combination
// yields a usable estimate. Rule order: food dollar map, hotel tier table,
// fine-dining heuristic, category default.
func Estimate(category, title, description, priceRange string) models.PriceEstimate {
	if category == models.CategoryFood && priceRange != "" {
		if cost, ok := foodDollarMap[DollarCount(priceRange)]; ok {
			return models.PriceEstimate{
				EstimatedCost: cost,
				Confidence:    "medium",
				Source:        "price_range",
				Explanation:   fmt.Sprintf("Based on %s price indicator", priceRange),
			}
		}
	}

	if category == models.CategoryHotel {
		tier, nightly := HotelTier(title)
		confidence := "medium"
		if tier == "unknown" {
			confidence = "low"
		}
		return models.PriceEstimate{
			EstimatedCost: nightly,
			Confidence:    confidence,
			Source:        "hotel_tier_" + tier,
			Explanation:   fmt.Sprintf("%s hotel - estimated $%d/night", capitalize(tier), nightly),
		}
	}

	if category == models.CategoryFood && (IsFineDining(title, description) || DollarCount(priceRange) == 4) {
		return models.PriceEstimate{
			EstimatedCost: fineDiningPerPerson,
			Confidence:    "medium",
			Source:        "fine_dining_heuristic",
			Explanation:   fmt.Sprintf("Fine dining restaurant - estimated $%d/person", fineDiningPerPerson),
		}
	}

	if est, ok := categoryDefaults[category]; ok {
		return est
	}
	return categoryDefaults[models.CategoryOther]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
