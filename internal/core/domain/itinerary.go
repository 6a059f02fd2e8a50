package domain

import "time"

// Meal is a single meal slot in a day plan.
type Meal struct {
	Time  string `json:"time"`
	Place string `json:"place"`
	Notes string `json:"notes"`
}

// DayMeals groups the three daily meal slots.
type DayMeals struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
}

// Accommodation is the lodging block of a day plan. All fields start empty.
type Accommodation struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Confirmation string `json:"confirmation"`
}

// DayPlan is the synthesized plan for one calendar day of a trip.
type DayPlan struct {
	Activities     []string      `json:"activities"`
	Meals          DayMeals      `json:"meals"`
	Accommodation  Accommodation `json:"accommodation"`
	Transportation []string      `json:"transportation"`
	Notes          string        `json:"notes"`
}

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// DefaultItinerary builds the placeholder itinerary for a trip: one entry per
// calendar day from start through end inclusive, keyed by YYYY-MM-DD, with
// default meal times and otherwise empty blocks.
func DefaultItinerary(start, end time.Time) map[string]DayPlan {
	itinerary := make(map[string]DayPlan)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		itinerary[d.Format(DateLayout)] = DayPlan{
			Activities: []string{},
			Meals: DayMeals{
				Breakfast: Meal{Time: "08:00"},
				Lunch:     Meal{Time: "13:00"},
				Dinner:    Meal{Time: "19:00"},
			},
			Transportation: []string{},
		}
	}
	return itinerary
}
