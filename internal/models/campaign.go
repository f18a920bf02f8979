package models

import (
	"time"
)

// CampaignStatus represents the delivery state of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft   CampaignStatus = "draft"
	CampaignStatusSending CampaignStatus = "sending"
	CampaignStatusSent    CampaignStatus = "sent"
	CampaignStatusFailed  CampaignStatus = "failed"
)

// CampaignStats holds the aggregate delivery statistics for a campaign.
// Once the campaign is sent, Sent + Failed equals the audience size and
// DeliveryRate is 100 * Sent / audience size (0 for an empty audience).
type CampaignStats struct {
	Sent         int     `bson:"sent" json:"sent"`
	Failed       int     `bson:"failed" json:"failed"`
	DeliveryRate float64 `bson:"deliveryRate" json:"deliveryRate"`
}

// Campaign represents a send of one message to one segment's audience.
// AudienceSize is snapshotted at creation time and never re-evaluated.
type Campaign struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Name         string         `bson:"name" json:"name"`
	SegmentID    string         `bson:"segmentId" json:"segmentId"`
	SegmentName  string         `bson:"segmentName" json:"segmentName"`
	Message      string         `bson:"message" json:"message"`
	Status       CampaignStatus `bson:"status" json:"status"`
	AudienceSize int            `bson:"audienceSize" json:"audienceSize"`
	Stats        CampaignStats  `bson:"stats" json:"stats"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	SentAt       *time.Time     `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
}

// LogStatus represents the outcome of one delivery attempt
type LogStatus string

const (
	LogStatusSent    LogStatus = "sent"
	LogStatusFailed  LogStatus = "failed"
	LogStatusPending LogStatus = "pending"
)

// CommunicationLog records one simulated delivery attempt. Logs are
// generated in bulk at send time and are read-only afterward.
type CommunicationLog struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	CampaignID    string     `bson:"campaignId" json:"campaignId"`
	CustomerID    string     `bson:"customerId" json:"customerId"`
	CustomerName  string     `bson:"customerName" json:"customerName"`
	CustomerEmail string     `bson:"customerEmail" json:"customerEmail"`
	Message       string     `bson:"message" json:"message"`
	Status        LogStatus  `bson:"status" json:"status"`
	SentAt        *time.Time `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	DeliveredAt   *time.Time `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	ErrorMessage  string     `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
}
