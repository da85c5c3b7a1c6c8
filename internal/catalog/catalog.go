package catalog

import "errors"

// ErrPlanNotFound is returned when a plan ID has no definition.
var ErrPlanNotFound = errors.New("plan not found")

// Plan is an immutable pricing tier. Credits and price are copied onto
// each transaction at purchase time, so changing a plan here never
// affects a pending purchase.
type Plan struct {
	ID      string `json:"id"`
	Credits int    `json:"credits"`
	Price   int    `json:"price"`
}

var plans = map[string]Plan{
	"Basic":    {ID: "Basic", Credits: 100, Price: 10},
	"Advanced": {ID: "Advanced", Credits: 500, Price: 50},
	"Business": {ID: "Business", Credits: 5000, Price: 250},
}

// Resolve looks up a plan by ID. Unknown IDs are a validation error,
// never a fallback.
func Resolve(planID string) (Plan, error) {
	plan, ok := plans[planID]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return plan, nil
}

// All returns every plan, cheapest first.
func All() []Plan {
	return []Plan{
		plans["Basic"],
		plans["Advanced"],
		plans["Business"],
	}
}
