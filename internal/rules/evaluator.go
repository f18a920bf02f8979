// Package rules implements the segmentation rule engine: pure evaluation of
// rule trees against customers and the heuristic free-text translator.
package rules

import (
	"strconv"
	"strings"
	"time"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// dateLayout is the textual form customer dates take in rule comparisons
const dateLayout = "2006-01-02"

// EvaluateRule evaluates a single rule against a customer. Unknown fields
// and unknown or type-mismatched operators evaluate to false rather than
// erroring, so a malformed rule narrows a segment instead of breaking a
// preview run.
func EvaluateRule(rule *models.Rule, customer *models.Customer) bool {
	value, ok := fieldValue(rule.Field, customer)
	if !ok {
		return false
	}

	switch rule.Operator {
	case models.OperatorEquals:
		return valuesEqual(value, rule.Value)
	case models.OperatorNotEquals:
		return !valuesEqual(value, rule.Value)
	case models.OperatorContains:
		if tags, isTags := value.([]string); isTags {
			target := asString(rule.Value)
			for _, tag := range tags {
				if tag == target {
					return true
				}
			}
			return false
		}
		return strings.Contains(asString(value), asString(rule.Value))
	case models.OperatorGreaterThan:
		left, leftOK := asNumber(value)
		right, rightOK := asNumber(rule.Value)
		return leftOK && rightOK && left > right
	case models.OperatorLessThan:
		left, leftOK := asNumber(value)
		right, rightOK := asNumber(rule.Value)
		return leftOK && rightOK && left < right
	default:
		return false
	}
}

// EvaluateGroup recursively evaluates a rule group against a customer.
// An "and" group requires every child to match and an "or" group requires
// at least one; an empty "and" group is therefore true and an empty "or"
// group false.
func EvaluateGroup(group *models.RuleGroup, customer *models.Customer) bool {
	if group.Combinator == models.CombinatorOr {
		for _, node := range group.Rules {
			if evaluateNode(node, customer) {
				return true
			}
		}
		return false
	}

	// "and" is the default combinator for any other value
	for _, node := range group.Rules {
		if !evaluateNode(node, customer) {
			return false
		}
	}
	return true
}

// evaluateNode dispatches on the node variant.
func evaluateNode(node models.RuleNode, customer *models.Customer) bool {
	if node.Group != nil {
		return EvaluateGroup(node.Group, customer)
	}
	if node.Rule != nil {
		return EvaluateRule(node.Rule, customer)
	}
	return false
}

// fieldValue resolves a rule field to the customer's attribute value.
func fieldValue(field models.Field, customer *models.Customer) (interface{}, bool) {
	switch field {
	case models.FieldTotalSpend:
		return customer.TotalSpend, true
	case models.FieldVisitCount:
		return customer.VisitCount, true
	case models.FieldLastOrderDate:
		return customer.LastOrderDate, true
	case models.FieldStatus:
		return string(customer.Status), true
	case models.FieldTags:
		return customer.Tags, true
	default:
		return nil, false
	}
}

// valuesEqual compares a customer attribute against a rule value. Numbers
// compare numerically, everything else compares by its textual form. A tag
// collection never equals a scalar. Numeric strings coerce deliberately:
// the builder UI sends rule values as JSON strings as often as numbers, so
// totalSpend equals "15750" matches a spend of 15750.
func valuesEqual(fieldVal, ruleVal interface{}) bool {
	if _, isTags := fieldVal.([]string); isTags {
		return false
	}
	if left, leftOK := asNumber(fieldVal); leftOK {
		if right, rightOK := asNumber(ruleVal); rightOK {
			return left == right
		}
		return false
	}
	return asString(fieldVal) == asString(ruleVal)
}

// asNumber coerces a value to float64. Dates and non-numeric strings do
// not coerce, so numeric comparisons against them evaluate to false.
func asNumber(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// asString coerces a value to its textual form for substring and equality
// checks. Dates render as yyyy-mm-dd to match the population data.
func asString(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.Format(dateLayout)
	default:
		return ""
	}
}
