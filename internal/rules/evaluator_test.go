package rules

import (
	"testing"
	"time"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// testCustomer returns a customer with one known value per targetable field
func testCustomer() *models.Customer {
	return &models.Customer{
		ID:            "1",
		Name:          "Rahul Sharma",
		Email:         "rahul.sharma@example.com",
		TotalSpend:    15750,
		LastOrderDate: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		VisitCount:    8,
		Tags:          []string{"premium", "loyal"},
		Status:        models.CustomerStatusActive,
	}
}

// TestEvaluateRule ensures each operator behaves per the reference semantics
// across the targetable fields.
func TestEvaluateRule(t *testing.T) {
	customer := testCustomer()

	tests := []struct {
		name     string
		field    models.Field
		operator models.Operator
		value    interface{}
		want     bool
	}{
		{"spend greater than matches", models.FieldTotalSpend, models.OperatorGreaterThan, float64(10000), true},
		{"spend greater than misses", models.FieldTotalSpend, models.OperatorGreaterThan, float64(20000), false},
		{"spend greater than boundary", models.FieldTotalSpend, models.OperatorGreaterThan, float64(15750), false},
		{"spend less than", models.FieldTotalSpend, models.OperatorLessThan, float64(20000), true},
		{"spend equals numeric string", models.FieldTotalSpend, models.OperatorEquals, "15750", true},
		{"spend equals non-numeric string", models.FieldTotalSpend, models.OperatorEquals, "lots", false},
		{"visits less than", models.FieldVisitCount, models.OperatorLessThan, float64(10), true},
		{"visits not equals", models.FieldVisitCount, models.OperatorNotEquals, float64(8), false},
		{"status equals", models.FieldStatus, models.OperatorEquals, "active", true},
		{"status not equals", models.FieldStatus, models.OperatorNotEquals, "inactive", true},
		{"status contains substring", models.FieldStatus, models.OperatorContains, "act", true},
		{"tags contains member", models.FieldTags, models.OperatorContains, "premium", true},
		{"tags contains non-member", models.FieldTags, models.OperatorContains, "new", false},
		{"tags never equal a scalar", models.FieldTags, models.OperatorEquals, "premium", false},
		{"date equals textual form", models.FieldLastOrderDate, models.OperatorEquals, "2023-01-15", true},
		{"date does not coerce to number", models.FieldLastOrderDate, models.OperatorGreaterThan, float64(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &models.Rule{ID: "r", Field: tt.field, Operator: tt.operator, Value: tt.value}
			if got := EvaluateRule(rule, customer); got != tt.want {
				t.Fatalf("EvaluateRule(%s %s %v) = %v, want %v", tt.field, tt.operator, tt.value, got, tt.want)
			}
		})
	}
}

// TestEvaluateRuleFailsClosed ensures unknown fields and operators evaluate
// to false instead of erroring or matching.
func TestEvaluateRuleFailsClosed(t *testing.T) {
	customer := testCustomer()

	unknownOp := &models.Rule{ID: "r", Field: models.FieldTotalSpend, Operator: "between", Value: float64(1)}
	if EvaluateRule(unknownOp, customer) {
		t.Fatal("unknown operator matched, want false")
	}

	unknownField := &models.Rule{ID: "r", Field: "loyaltyTier", Operator: models.OperatorEquals, Value: "gold"}
	if EvaluateRule(unknownField, customer) {
		t.Fatal("unknown field matched, want false")
	}
}

// TestEvaluateGroupCombinators ensures "and" requires every child and "or"
// requires at least one.
func TestEvaluateGroupCombinators(t *testing.T) {
	customer := testCustomer()

	matching := models.RuleNode{Rule: &models.Rule{ID: "a", Field: models.FieldStatus, Operator: models.OperatorEquals, Value: "active"}}
	failing := models.RuleNode{Rule: &models.Rule{ID: "b", Field: models.FieldTotalSpend, Operator: models.OperatorLessThan, Value: float64(100)}}

	and := &models.RuleGroup{ID: "g", Combinator: models.CombinatorAnd, Rules: []models.RuleNode{matching, failing}}
	if EvaluateGroup(and, customer) {
		t.Fatal("and group with a failing child matched, want false")
	}

	or := &models.RuleGroup{ID: "g", Combinator: models.CombinatorOr, Rules: []models.RuleNode{matching, failing}}
	if !EvaluateGroup(or, customer) {
		t.Fatal("or group with a matching child did not match, want true")
	}
}

// TestEvaluateGroupEmpty ensures an empty "and" group matches everyone and
// an empty "or" group matches no one.
func TestEvaluateGroupEmpty(t *testing.T) {
	customer := testCustomer()

	and := &models.RuleGroup{ID: "g", Combinator: models.CombinatorAnd, Rules: []models.RuleNode{}}
	if !EvaluateGroup(and, customer) {
		t.Fatal("empty and group = false, want true")
	}

	or := &models.RuleGroup{ID: "g", Combinator: models.CombinatorOr, Rules: []models.RuleNode{}}
	if EvaluateGroup(or, customer) {
		t.Fatal("empty or group = true, want false")
	}
}

// TestEvaluateGroupNested ensures nested groups evaluate recursively with
// their own combinators.
func TestEvaluateGroupNested(t *testing.T) {
	customer := testCustomer()

	// (status == inactive OR totalSpend > 10000) AND tags contains premium
	inner := &models.RuleGroup{
		ID:         "inner",
		Combinator: models.CombinatorOr,
		Rules: []models.RuleNode{
			{Rule: &models.Rule{ID: "a", Field: models.FieldStatus, Operator: models.OperatorEquals, Value: "inactive"}},
			{Rule: &models.Rule{ID: "b", Field: models.FieldTotalSpend, Operator: models.OperatorGreaterThan, Value: float64(10000)}},
		},
	}
	outer := &models.RuleGroup{
		ID:         "outer",
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			{Group: inner},
			{Rule: &models.Rule{ID: "c", Field: models.FieldTags, Operator: models.OperatorContains, Value: "premium"}},
		},
	}

	if !EvaluateGroup(outer, customer) {
		t.Fatal("nested group did not match, want true")
	}

	// Flip the inner group so neither branch holds
	inner.Rules[1].Rule.Value = float64(100000)
	if EvaluateGroup(outer, customer) {
		t.Fatal("nested group matched after inner branches were invalidated, want false")
	}
}
