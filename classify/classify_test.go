package classify

import (
	"testing"

	"roamly/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		want  string
	}{
		{"hotel host", "https://www.booking.com/hotel/us/the-standard.html", "", models.CategoryHotel},
		{"hotel word in title", "https://example.com/stay", "The Plaza Hotel", models.CategoryHotel},
		{"airbnb listing", "https://www.airbnb.com/rooms/12345", "Sunny loft", models.CategoryHotel},
		{"yelp restaurant", "https://www.yelp.com/biz/carbone-new-york", "Carbone", models.CategoryFood},
		{"tripadvisor goes to food", "https://www.tripadvisor.com/Restaurant_Review-g60763", "", models.CategoryFood},
		{"opentable", "https://www.opentable.com/r/le-bernardin", "", models.CategoryFood},
		{"cuisine word", "https://example.com/places/1", "Midtown Omakase Counter", models.CategoryFood},
		{"activity host", "https://www.viator.com/tours/New-York-City", "", models.CategoryActivity},
		{"museum title", "https://example.org/visit", "Museum of Modern Art", models.CategoryActivity},
		{"plain page", "https://example.com/about", "About us", models.CategoryOther},
		{"empty input", "", "", models.CategoryOther},
		{"garbage input", "::::not a url::::", "\x00\xff", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.url, tt.title); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

// Hotel wins when a string matches several groups.
func TestClassify_PriorityOrder(t *testing.T) {
	got := Classify("https://example.com", "Hotel restaurant tour")
	if got != models.CategoryHotel {
		t.Errorf("expected hotel to win overlapping match, got %q", got)
	}
}
