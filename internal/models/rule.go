package models

import (
	"encoding/json"
)

// Combinator joins the children of a rule group
type Combinator string

const (
	CombinatorAnd Combinator = "and"
	CombinatorOr  Combinator = "or"
)

// Operator is the comparison applied by a single rule
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "notEquals"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greaterThan"
	OperatorLessThan    Operator = "lessThan"
)

// Field names a targetable customer attribute
type Field string

const (
	FieldTotalSpend    Field = "totalSpend"
	FieldVisitCount    Field = "visitCount"
	FieldLastOrderDate Field = "lastOrderDate"
	FieldStatus        Field = "status"
	FieldTags          Field = "tags"
)

// Rule is a single predicate over one customer field.
// Value holds a string or a number; whether the operator is legal for the
// field's type is checked at evaluation time, not at construction.
type Rule struct {
	ID       string      `bson:"id" json:"id"`
	Field    Field       `bson:"field" json:"field"`
	Operator Operator    `bson:"operator" json:"operator"`
	Value    interface{} `bson:"value" json:"value"`
}

// RuleGroup is a node in a recursive boolean tree. Children are ordered and
// may nest to unbounded depth. The tree is acyclic by construction.
type RuleGroup struct {
	ID         string     `bson:"id" json:"id"`
	Combinator Combinator `bson:"combinator" json:"combinator"`
	Rules      []RuleNode `bson:"rules" json:"rules"`
}

// RuleNode is one child of a RuleGroup: either a single Rule or a nested
// RuleGroup. Exactly one of the two fields is set.
type RuleNode struct {
	Rule  *Rule      `bson:"rule,omitempty"`
	Group *RuleGroup `bson:"group,omitempty"`
}

// IsGroup reports whether the node holds a nested group.
func (n RuleNode) IsGroup() bool {
	return n.Group != nil
}

// MarshalJSON flattens the node so rules and nested groups sit directly in
// the parent's rules array, matching the builder UI's wire shape.
func (n RuleNode) MarshalJSON() ([]byte, error) {
	if n.Group != nil {
		return json.Marshal(n.Group)
	}
	return json.Marshal(n.Rule)
}

// UnmarshalJSON dispatches on the presence of a combinator key: objects with
// one decode as nested groups, everything else decodes as a single rule.
func (n *RuleNode) UnmarshalJSON(data []byte) error {
	var probe struct {
		Combinator *Combinator `json:"combinator"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if probe.Combinator != nil {
		var group RuleGroup
		if err := json.Unmarshal(data, &group); err != nil {
			return err
		}
		n.Group = &group
		n.Rule = nil
		return nil
	}

	var rule Rule
	if err := json.Unmarshal(data, &rule); err != nil {
		return err
	}
	n.Rule = &rule
	n.Group = nil
	return nil
}
