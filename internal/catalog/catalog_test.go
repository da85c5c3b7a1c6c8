package catalog

import (
	"errors"
	"testing"
)

func TestResolveKnownPlans(t *testing.T) {
	t.Parallel()
	cases := []struct {
		planID  string
		credits int
		price   int
	}{
		{"Basic", 100, 10},
		{"Advanced", 500, 50},
		{"Business", 5000, 250},
	}

	for _, tc := range cases {
		plan, err := Resolve(tc.planID)
		if err != nil {
			t.Fatalf("resolve %s: %v", tc.planID, err)
		}
		if plan.Credits != tc.credits {
			t.Fatalf("plan %s: expected %d credits, got %d", tc.planID, tc.credits, plan.Credits)
		}
		if plan.Price != tc.price {
			t.Fatalf("plan %s: expected price %d, got %d", tc.planID, tc.price, plan.Price)
		}
	}
}

func TestResolveUnknownPlan(t *testing.T) {
	t.Parallel()
	_, err := Resolve("Enterprise")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestAllReturnsEveryPlan(t *testing.T) {
	t.Parallel()
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(all))
	}
	if all[0].ID != "Basic" || all[2].ID != "Business" {
		t.Fatalf("unexpected plan order: %v", all)
	}
}
