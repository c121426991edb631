package classify

import (
	"strings"

	"roamly/models"
)

// Pattern groups are tested in a fixed priority order: hotel, then food, then
// activity. Review-site hosts that straddle categories (tripadvisor,
// opentable) live in the food group, so a TripAdvisor restaurant page lands
// on food rather than activity.

var hotelPatterns = []string{
	"booking.com", "hotels.com", "expedia", "kayak.com", "agoda",
	"airbnb", "vrbo", "marriott", "hilton", "hyatt", "ihg.com",
	"fourseasons", "ritzcarlton", "ritz-carlton",
	"hotel", "hostel", "motel", "resort", "lodging", "accommodation",
	"suites", "bed and breakfast", "b&b",
}

var foodPatterns = []string{
	"yelp.com", "opentable", "resy.com", "tripadvisor",
	"doordash", "ubereats", "grubhub", "seamless", "beli",
	"restaurant", "steakhouse", "trattoria", "brasserie", "bistro",
	"izakaya", "taqueria", "pizzeria", "ramen", "sushi", "omakase",
	"tasting menu", "michelin", "eatery", "diner", "cafe", "coffee",
	"bakery", "brunch", "brewery", "winery", "cocktail", "menu",
	"food", "dining",
}

var activityPatterns = []string{
	"viator", "getyourguide", "ticketmaster", "eventbrite", "stubhub",
	"seatgeek", "broadway", "timeout.com", "atlasobscura",
	"museum", "gallery", "tour", "tickets", "show", "concert",
	"theater", "theatre", "observatory", "aquarium", "zoo",
	"park", "garden", "hike", "kayak tour", "cruise", "experience",
	"attraction", "exhibit", "activity",
}

// Classify maps a URL plus optional page title to a venue category. It is
// total: any input, however odd, yields one of the four categories.
func Classify(rawURL, title string) string {
	text := strings.ToLower(rawURL + " " + title)

	for _, p := range hotelPatterns {
		if strings.Contains(text, p) {
			return models.CategoryHotel
		}
	}
	for _, p := range foodPatterns {
		if strings.Contains(text, p) {
			return models.CategoryFood
		}
	}
	for _, p := range activityPatterns {
		if strings.Contains(text, p) {
			return models.CategoryActivity
		}
	}
	return models.CategoryOther
}
