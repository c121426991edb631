package itinerary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"roamly/models"
	"roamly/pricing"
)

const dateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("trip end date precedes start date")

type mealSlot struct {
	name  string
	clock string
	slot  string
}

// Meal slots in canonical day order, with the clock time each meal lands on.
var mealSlots = []mealSlot{
	{"breakfast", "9:00 AM", "morning"},
	{"lunch", "12:30 PM", "afternoon"},
	{"dinner", "7:00 PM", "evening"},
}

// Synthesize derives a day-by-day itinerary from the trip's confirmed links.
// It is pure: same trip and links in, same itinerary out. Unconfirmed links
// are ignored, and food venues beyond the available meal slots are dropped
// rather than double-booked.
func Synthesize(trip models.Trip, links []models.VenueLink) (models.Itinerary, error) {
	start, err := time.Parse(dateLayout, trip.StartDate)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("bad start date %q: %w", trip.StartDate, err)
	}
	end, err := time.Parse(dateLayout, trip.EndDate)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("bad end date %q: %w", trip.EndDate, err)
	}
	if end.Before(start) {
		return models.Itinerary{}, ErrInvalidRange
	}
	tripDays := int(end.Sub(start).Hours()/24) + 1

	days := make([]models.DayPlan, tripDays)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = models.DayPlan{
			Date:      d.Format(dateLayout),
			DayNumber: i + 1,
			DayLabel:  fmt.Sprintf("Day %d - %s", i+1, d.Format("Mon, Jan 2")),
		}
	}

	var hotels, food, activities, others []models.VenueLink
	for _, l := range links {
		if !l.IsConfirmed {
			continue
		}
		switch l.Category {
		case models.CategoryHotel:
			hotels = append(hotels, l)
		case models.CategoryFood:
			food = append(food, l)
		case models.CategoryActivity:
			activities = append(activities, l)
		default:
			others = append(others, l)
		}
	}

	seq := 0
	nextID := func() string {
		seq++
		return fmt.Sprintf("%s-item-%d", trip.TripID, seq)
	}

	// One hotel anchors the whole stay: check-in on day one, check-out on the
	// last day, the full stay's cost carried on the check-in item.
	if len(hotels) > 0 {
		h := hotels[0]
		nightly := costFor(h)
		checkin := models.ItineraryItem{
			ID:            nextID(),
			Date:          days[0].Date,
			Time:          "3:00 PM",
			TimeSlot:      "afternoon",
			Type:          models.ItemHotelCheckin,
			Title:         h.Title,
			Subtitle:      "Check-in",
			Link:          ptr(h),
			EstimatedCost: nightly * tripDays,
		}
		days[0].Items = append(days[0].Items, checkin)

		days[tripDays-1].Items = append(days[tripDays-1].Items, models.ItineraryItem{
			ID:       nextID(),
			Date:     days[tripDays-1].Date,
			Time:     "11:00 AM",
			TimeSlot: "morning",
			Type:     models.ItemHotelCheckout,
			Title:    h.Title,
			Subtitle: "Check-out",
			Link:     ptr(h),
		})
	}

	// Restaurants claim meal slots by preference. Each venue scans its
	// preferred meals in order, taking the first free (day, meal) pairing.
	occupied := make(map[int]map[string]bool, tripDays)
	for d := 0; d < tripDays; d++ {
		occupied[d] = make(map[string]bool, len(mealSlots))
	}
	for _, f := range food {
		day, meal, ok := claimMealSlot(occupied, tripDays, mealPreferences(f))
		if !ok {
			continue
		}
		days[day].Items = append(days[day].Items, models.ItineraryItem{
			ID:            nextID(),
			Date:          days[day].Date,
			Time:          meal.clock,
			TimeSlot:      meal.slot,
			Type:          models.ItemMeal,
			Title:         f.Title,
			Subtitle:      capitalize(meal.name),
			Link:          ptr(f),
			EstimatedCost: costFor(f),
		})
	}

	// Activities spread round-robin across the days, alternating morning and
	// afternoon starts.
	for i, a := range activities {
		day := i % tripDays
		clock, slot := "10:00 AM", "morning"
		if i%2 == 1 {
			clock, slot = "2:00 PM", "afternoon"
		}
		days[day].Items = append(days[day].Items, models.ItineraryItem{
			ID:            nextID(),
			Date:          days[day].Date,
			Time:          clock,
			TimeSlot:      slot,
			Type:          models.ItemActivity,
			Title:         a.Title,
			Link:          ptr(a),
			EstimatedCost: costFor(a),
		})
	}

	for i, o := range others {
		day := i % tripDays
		days[day].Items = append(days[day].Items, models.ItineraryItem{
			ID:            nextID(),
			Date:          days[day].Date,
			Time:          "2:00 PM",
			TimeSlot:      "afternoon",
			Type:          models.ItemOther,
			Title:         o.Title,
			Link:          ptr(o),
			EstimatedCost: costFor(o),
		})
	}

	total := 0
	for d := range days {
		sortByClock(days[d].Items)
		for _, it := range days[d].Items {
			total += it.EstimatedCost
		}
	}

	it := models.Itinerary{
		Days:      days,
		TotalCost: total,
		Summary:   summarize(trip, tripDays, len(hotels), len(food), len(activities)+len(others), total),
	}
	return it, nil
}

// mealPreferences decides which meal a restaurant should land on, most
// preferred first. Fine dining wants dinner; a breakfast-only spot wants
// breakfast; casual places fill lunches before evenings.
func mealPreferences(l models.VenueLink) []string {
	switch {
	case l.VenueType == "fine_dining" || pricing.IsFineDining(l.Title, l.Description):
		return []string{"dinner", "lunch", "breakfast"}
	case l.VenueType == "cafe" || breakfastOnly(l.MealTimes):
		return []string{"breakfast", "lunch", "dinner"}
	case l.VenueType == "casual" || l.VenueType == "fast_casual" || l.VenueType == "bar":
		return []string{"lunch", "dinner", "breakfast"}
	default:
		return []string{"dinner", "lunch", "breakfast"}
	}
}

func breakfastOnly(mealTimes []string) bool {
	hasBreakfast := false
	for _, m := range mealTimes {
		if m == "breakfast" {
			hasBreakfast = true
		}
		if m == "dinner" {
			return false
		}
	}
	return hasBreakfast
}

func claimMealSlot(occupied map[int]map[string]bool, tripDays int, prefs []string) (int, mealSlot, bool) {
	for _, want := range prefs {
		for d := 0; d < tripDays; d++ {
			if occupied[d][want] {
				continue
			}
			occupied[d][want] = true
			for _, ms := range mealSlots {
				if ms.name == want {
					return d, ms, true
				}
			}
		}
	}
	return 0, mealSlots[0], false
}

// costFor prefers the price found during enrichment and falls back to the
// static estimator.
func costFor(l models.VenueLink) int {
	if l.EstimatedPricePerPerson != nil {
		return *l.EstimatedPricePerPerson
	}
	return pricing.Estimate(l.Category, l.Title, l.Description, l.PriceRange).EstimatedCost
}

func sortByClock(items []models.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, erri := time.Parse("3:04 PM", items[i].Time)
		tj, errj := time.Parse("3:04 PM", items[j].Time)
		if erri != nil || errj != nil {
			return false
		}
		return ti.Before(tj)
	})
}

func summarize(trip models.Trip, tripDays, hotels, meals, outings, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s", plural(tripDays, "day"), trip.Destination)
	if hotels > 0 {
		fmt.Fprintf(&b, " with %s", plural(hotels, "stay"))
	}
	fmt.Fprintf(&b, ": %s and %s planned, around $%d per person.",
		plural(meals, "meal"), plural(outings, "outing"), total)
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func ptr(l models.VenueLink) *models.VenueLink { return &l }
