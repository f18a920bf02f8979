package models

import (
	"time"
)

// CustomerStatus represents the lifecycle status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusNew      CustomerStatus = "new"
)

// Customer represents one member of the addressable population.
// Records are created by an external data source and are read-only
// from the segmentation engine's perspective.
type Customer struct {
	ID            string         `bson:"_id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	Phone         string         `bson:"phone,omitempty" json:"phone,omitempty"`
	TotalSpend    float64        `bson:"totalSpend" json:"totalSpend"`
	LastOrderDate time.Time      `bson:"lastOrderDate,omitempty" json:"lastOrderDate,omitempty"`
	VisitCount    int            `bson:"visitCount" json:"visitCount"`
	Tags          []string       `bson:"tags" json:"tags"`
	Status        CustomerStatus `bson:"status" json:"status"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}
