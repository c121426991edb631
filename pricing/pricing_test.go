package pricing

import (
	"testing"

	"roamly/models"
)

func TestEstimate_FoodDollarMap(t *testing.T) {
	tests := []struct {
		priceRange string
		want       int
	}{
		{"$", 20},
		{"$$", 40},
		{"$$$", 75},
		{"$$$$", 175},
	}
	for _, tt := range tests {
		// Other inputs must not change the mapped value.
		got := Estimate(models.CategoryFood, "Some Tasting Menu Omakase Spot", "michelin starred", tt.priceRange)
		if got.EstimatedCost != tt.want {
			t.Errorf("Estimate(food, %q) = %d, want %d", tt.priceRange, got.EstimatedCost, tt.want)
		}
		if got.Source != "price_range" {
			t.Errorf("source = %q, want price_range", got.Source)
		}
	}
}

func TestHotelTier(t *testing.T) {
	tests := []struct {
		title   string
		tier    string
		nightly int
	}{
		{"The Ritz-Carlton New York", "luxury", 950},
		{"Park Hyatt Tokyo", "luxury", 950},
		{"Kimpton Hotel Eventi", "upscale", 450},
		{"Hampton Inn Times Square", "midrange", 275},
		{"Pod 51", "budget", 175},
		{"Cozy Brooklyn Apartment", "rental", 250},
		{"Hotel Nobody Heard Of", "unknown", 350},
	}
	for _, tt := range tests {
		tier, nightly := HotelTier(tt.title)
		if tier != tt.tier || nightly != tt.nightly {
			t.Errorf("HotelTier(%q) = (%s, %d), want (%s, %d)", tt.title, tier, nightly, tt.tier, tt.nightly)
		}
	}
}

func TestEstimate_HotelConfidence(t *testing.T) {
	got := Estimate(models.CategoryHotel, "Hotel Nobody Heard Of", "", "")
	if got.Confidence != "low" {
		t.Errorf("unknown tier confidence = %q, want low", got.Confidence)
	}
	got = Estimate(models.CategoryHotel, "Hampton Inn Times Square", "", "")
	if got.Confidence != "medium" || got.EstimatedCost != 275 {
		t.Errorf("midrange estimate = %+v", got)
	}
}

func TestEstimate_FineDining(t *testing.T) {
	got := Estimate(models.CategoryFood, "Atomix Tasting Menu", "", "")
	if got.EstimatedCost != 200 || got.Source != "fine_dining_heuristic" {
		t.Errorf("fine dining estimate = %+v", got)
	}
}

func TestEstimate_CategoryDefaults(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{models.CategoryFood, 50},
		{models.CategoryActivity, 35},
		{models.CategoryOther, 25},
		{"bogus", 25},
	}
	for _, tt := range tests {
		got := Estimate(tt.category, "Plain Place", "", "")
		if got.EstimatedCost != tt.want || got.Confidence != "low" {
			t.Errorf("Estimate(%s) = %+v, want cost %d low", tt.category, got, tt.want)
		}
	}
}

func TestIsFineDining(t *testing.T) {
	if !IsFineDining("Sushi Counter", "an omakase experience") {
		t.Error("omakase should read as fine dining")
	}
	if IsFineDining("Joe's Slice Shop", "dollar pizza") {
		t.Error("pizza joint should not read as fine dining")
	}
}

func TestExtractPriceFromText_PerPerson(t *testing.T) {
	got := ExtractPriceFromText("Dinner runs about $185 per person at this spot.", kindRestaurant)
	if got == nil || *got != 185 {
		t.Fatalf("got %v, want 185", got)
	}
}

func TestExtractPriceFromText_NightlyAndFrom(t *testing.T) {
	got := ExtractPriceFromText("Rooms $320/night with taxes.", kindHotel)
	if got == nil || *got != 320 {
		t.Fatalf("nightly: got %v, want 320", got)
	}
	got = ExtractPriceFromText("Rates from $410 in high season.", kindHotel)
	if got == nil || *got != 410 {
		t.Fatalf("from: got %v, want 410", got)
	}
}

func TestExtractPriceFromText_RangeMidpoint(t *testing.T) {
	got := ExtractPriceFromText("Expect $150-$250 for the full menu.", kindRestaurant)
	if got == nil || *got != 200 {
		t.Fatalf("got %v, want 200", got)
	}
}

func TestExtractPriceFromText_MedianOfSurvivors(t *testing.T) {
	// 5 and 9000 fall outside the restaurant window; median of 40/60/95 is 60.
	got := ExtractPriceFromText("menu $5 snack $40 mains $60 pairing $95 wine $9000 bottle", kindRestaurant)
	if got == nil || *got != 60 {
		t.Fatalf("got %v, want 60", got)
	}
}

func TestExtractPriceFromText_NothingPlausible(t *testing.T) {
	if got := ExtractPriceFromText("no prices here at all", kindActivity); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if got := ExtractPriceFromText("a $2 sticker", kindHotel); got != nil {
		t.Fatalf("got %v, want nil for out-of-window value", got)
	}
}

func TestVenueKind(t *testing.T) {
	if VenueKind(models.CategoryFood) != kindRestaurant ||
		VenueKind(models.CategoryHotel) != kindHotel ||
		VenueKind(models.CategoryActivity) != kindActivity ||
		VenueKind(models.CategoryOther) != kindActivity {
		t.Error("category to venue kind mapping is wrong")
	}
}
