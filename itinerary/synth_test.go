package itinerary

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"roamly/models"
)

func confirmedLink(category, title string) models.VenueLink {
	return models.VenueLink{
		LinkID:      title,
		Title:       title,
		Category:    category,
		IsConfirmed: true,
	}
}

func testTrip() models.Trip {
	return models.Trip{
		TripID:      "trip1",
		Name:        "NYC Weekend",
		Destination: "New York",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-04",
	}
}

func findItems(it models.Itinerary, itemType string) []models.ItineraryItem {
	var out []models.ItineraryItem
	for _, day := range it.Days {
		for _, item := range day.Items {
			if item.Type == itemType {
				out = append(out, item)
			}
		}
	}
	return out
}

func TestSynthesize_DayCount(t *testing.T) {
	it, err := Synthesize(testTrip(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(it.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(it.Days))
	}
	if it.Days[0].Date != "2026-03-02" || it.Days[2].Date != "2026-03-04" {
		t.Errorf("day dates = %s .. %s", it.Days[0].Date, it.Days[2].Date)
	}
	if it.Days[0].DayLabel != "Day 1 - Mon, Mar 2" {
		t.Errorf("label = %q", it.Days[0].DayLabel)
	}
}

func TestSynthesize_InvalidRange(t *testing.T) {
	trip := testTrip()
	trip.StartDate, trip.EndDate = trip.EndDate, trip.StartDate
	if _, err := Synthesize(trip, nil); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestSynthesize_HotelBookendsTrip(t *testing.T) {
	links := []models.VenueLink{confirmedLink(models.CategoryHotel, "Hampton Inn Midtown")}
	it, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}

	checkins := findItems(it, models.ItemHotelCheckin)
	checkouts := findItems(it, models.ItemHotelCheckout)
	if len(checkins) != 1 || len(checkouts) != 1 {
		t.Fatalf("checkins=%d checkouts=%d", len(checkins), len(checkouts))
	}
	if checkins[0].Date != "2026-03-02" || checkins[0].Time != "3:00 PM" {
		t.Errorf("check-in at %s %s", checkins[0].Date, checkins[0].Time)
	}
	if checkouts[0].Date != "2026-03-04" || checkouts[0].Time != "11:00 AM" {
		t.Errorf("check-out at %s %s", checkouts[0].Date, checkouts[0].Time)
	}
	// midrange brand, $275/night over a 3-day stay
	if checkins[0].EstimatedCost != 825 {
		t.Errorf("stay cost = %d, want 825", checkins[0].EstimatedCost)
	}
	if checkouts[0].EstimatedCost != 0 {
		t.Errorf("check-out cost = %d, want 0", checkouts[0].EstimatedCost)
	}
}

func TestSynthesize_FineDiningTakesDinner(t *testing.T) {
	atomix := confirmedLink(models.CategoryFood, "Atomix")
	atomix.Description = "12-course tasting menu"

	it, err := Synthesize(testTrip(), []models.VenueLink{atomix})
	if err != nil {
		t.Fatal(err)
	}
	meals := findItems(it, models.ItemMeal)
	if len(meals) != 1 {
		t.Fatalf("meals = %d", len(meals))
	}
	if meals[0].Time != "7:00 PM" || meals[0].TimeSlot != "evening" || meals[0].Date != "2026-03-02" {
		t.Errorf("fine dining scheduled at %s %s on %s", meals[0].Time, meals[0].TimeSlot, meals[0].Date)
	}
	// no known price, fine-dining heuristic applies
	if meals[0].EstimatedCost != 200 {
		t.Errorf("cost = %d, want 200", meals[0].EstimatedCost)
	}
}

func TestSynthesize_CafeTakesBreakfast(t *testing.T) {
	cafe := confirmedLink(models.CategoryFood, "Maman")
	cafe.VenueType = "cafe"

	it, err := Synthesize(testTrip(), []models.VenueLink{cafe})
	if err != nil {
		t.Fatal(err)
	}
	meals := findItems(it, models.ItemMeal)
	if len(meals) != 1 || meals[0].Time != "9:00 AM" {
		t.Fatalf("cafe scheduled at %v", meals)
	}
}

func TestSynthesize_MealOverflowDropped(t *testing.T) {
	// 3 days hold 9 meal slots; the tenth restaurant has nowhere to go.
	var links []models.VenueLink
	for i := 0; i < 10; i++ {
		links = append(links, confirmedLink(models.CategoryFood, "Spot "+string(rune('A'+i))))
	}
	it, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(findItems(it, models.ItemMeal)); got != 9 {
		t.Errorf("meals = %d, want 9", got)
	}
}

func TestSynthesize_UnconfirmedIgnored(t *testing.T) {
	pending := confirmedLink(models.CategoryActivity, "Met Museum")
	pending.IsConfirmed = false

	it, err := Synthesize(testTrip(), []models.VenueLink{pending})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(findItems(it, models.ItemActivity)); got != 0 {
		t.Errorf("activities = %d, want 0", got)
	}
}

func TestSynthesize_DaysAreTimeSorted(t *testing.T) {
	price := 30
	lunch := confirmedLink(models.CategoryFood, "Joe's Shanghai")
	lunch.VenueType = "casual"
	lunch.EstimatedPricePerPerson = &price

	dinner := confirmedLink(models.CategoryFood, "Le Bernardin")
	dinner.Description = "tasting menu"

	links := []models.VenueLink{
		dinner,
		confirmedLink(models.CategoryHotel, "Hampton Inn Midtown"),
		lunch,
		confirmedLink(models.CategoryActivity, "Whitney Museum"),
	}
	it, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}

	layout := "3:04 PM"
	for _, day := range it.Days {
		for i := 1; i < len(day.Items); i++ {
			prev, _ := time.Parse(layout, day.Items[i-1].Time)
			cur, _ := time.Parse(layout, day.Items[i].Time)
			if cur.Before(prev) {
				t.Errorf("%s: %s before %s", day.Date, day.Items[i].Time, day.Items[i-1].Time)
			}
		}
	}
}

func TestSynthesize_TotalCostMatchesItems(t *testing.T) {
	price := 30
	lunch := confirmedLink(models.CategoryFood, "Joe's Shanghai")
	lunch.VenueType = "casual"
	lunch.EstimatedPricePerPerson = &price

	links := []models.VenueLink{
		confirmedLink(models.CategoryHotel, "Hampton Inn Midtown"),
		lunch,
		confirmedLink(models.CategoryActivity, "Whitney Museum"),
	}
	it, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}

	sum := 0
	for _, day := range it.Days {
		for _, item := range day.Items {
			sum += item.EstimatedCost
		}
	}
	if it.TotalCost != sum {
		t.Errorf("TotalCost = %d, items sum to %d", it.TotalCost, sum)
	}
	// 825 hotel + 30 lunch + 35 default activity
	if it.TotalCost != 890 {
		t.Errorf("TotalCost = %d, want 890", it.TotalCost)
	}
}

func TestSynthesize_SummaryCounts(t *testing.T) {
	links := []models.VenueLink{
		confirmedLink(models.CategoryHotel, "Pod 51"),
		confirmedLink(models.CategoryFood, "Katz's Delicatessen"),
		confirmedLink(models.CategoryFood, "Joe's Shanghai"),
		confirmedLink(models.CategoryActivity, "High Line"),
	}
	it, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"3 days in New York", "1 stay", "2 meals", "1 outing"}
	for _, w := range want {
		if !strings.Contains(it.Summary, w) {
			t.Errorf("summary %q missing %q", it.Summary, w)
		}
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	links := []models.VenueLink{
		confirmedLink(models.CategoryHotel, "Pod 51"),
		confirmedLink(models.CategoryFood, "Katz's Delicatessen"),
		confirmedLink(models.CategoryActivity, "High Line"),
		confirmedLink(models.CategoryOther, "SoHo shopping"),
	}
	a, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(testTrip(), links)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different itineraries")
	}
}

func TestSynthesize_SingleDayTrip(t *testing.T) {
	trip := testTrip()
	trip.EndDate = trip.StartDate

	links := []models.VenueLink{confirmedLink(models.CategoryHotel, "The Jane")}
	it, err := Synthesize(trip, links)
	if err != nil {
		t.Fatal(err)
	}
	if len(it.Days) != 1 {
		t.Fatalf("days = %d, want 1", len(it.Days))
	}
	if len(it.Days[0].Items) != 2 {
		t.Errorf("items = %d, want check-in and check-out", len(it.Days[0].Items))
	}
}
