package models

import (
	"time"
)

// Segment represents a named, reusable rule group used to select a
// customer subset. Each segment owns its rule group tree; trees are never
// shared between segments.
type Segment struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	RuleGroup    RuleGroup `bson:"ruleGroup" json:"ruleGroup"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy    string    `bson:"createdBy" json:"createdBy"`
	LastModified time.Time `bson:"lastModified" json:"lastModified"`
}
