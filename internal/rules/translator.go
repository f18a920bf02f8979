package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// Heuristic phrase patterns for the free-text translator. This is a fixed
// set of keyword matches, not a language model: anything outside these
// patterns is ignored.
var (
	spendPattern  = regexp.MustCompile(`(?:spent over|spent more than)\s+(?:₹|rs\.?|inr)?\s*([0-9,]+)`)
	visitsPattern = regexp.MustCompile(`(?:less than|fewer than)\s+(\d+)\s+visits`)
)

var inactivityPhrases = []string{"inactive", "haven't shopped", "not shopped", "no purchase"}

// Translate converts a free-text audience description into a rule group.
// Matching is ordered: spend, inactivity, visit count, then tag hints. The
// combinator becomes "or" when the text contains the literal word "or",
// and a description that matches nothing yields a single default rule for
// active customers so the group is never empty. Generated identifiers are
// fresh on every call and carry no semantics.
func Translate(text string) *models.RuleGroup {
	normalized := strings.ToLower(text)

	group := &models.RuleGroup{
		ID:         uuid.NewString(),
		Combinator: models.CombinatorAnd,
		Rules:      []models.RuleNode{},
	}

	if matches := spendPattern.FindStringSubmatch(normalized); matches != nil {
		amount, err := strconv.Atoi(strings.ReplaceAll(matches[1], ",", ""))
		if err == nil {
			appendRule(group, models.FieldTotalSpend, models.OperatorGreaterThan, float64(amount))
		}
	}

	for _, phrase := range inactivityPhrases {
		if strings.Contains(normalized, phrase) {
			appendRule(group, models.FieldStatus, models.OperatorEquals, string(models.CustomerStatusInactive))
			break
		}
	}

	if matches := visitsPattern.FindStringSubmatch(normalized); matches != nil {
		visits, err := strconv.Atoi(matches[1])
		if err == nil {
			appendRule(group, models.FieldVisitCount, models.OperatorLessThan, float64(visits))
		}
	}

	// Tag hints are mutually exclusive; the premium check wins.
	if strings.Contains(normalized, "premium") || strings.Contains(normalized, "vip") {
		appendRule(group, models.FieldTags, models.OperatorContains, "premium")
	} else if strings.Contains(normalized, "new customer") || strings.Contains(normalized, "new user") {
		appendRule(group, models.FieldTags, models.OperatorContains, "new")
	}

	if strings.Contains(normalized, " or ") {
		group.Combinator = models.CombinatorOr
	}

	if len(group.Rules) == 0 {
		appendRule(group, models.FieldStatus, models.OperatorEquals, string(models.CustomerStatusActive))
	}

	return group
}

// appendRule adds a freshly identified rule to the group.
func appendRule(group *models.RuleGroup, field models.Field, operator models.Operator, value interface{}) {
	group.Rules = append(group.Rules, models.RuleNode{
		Rule: &models.Rule{
			ID:       uuid.NewString(),
			Field:    field,
			Operator: operator,
			Value:    value,
		},
	})
}
