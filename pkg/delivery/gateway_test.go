package delivery

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// testCampaign returns a draft campaign with the given audience size
func testCampaign(audience int) *models.Campaign {
	return &models.Campaign{
		ID:           "camp1",
		Name:         "Test Campaign",
		SegmentID:    "seg001",
		SegmentName:  "High Value Customers",
		Message:      "Hi {{name}}, here is an offer for you!",
		Status:       models.CampaignStatusDraft,
		AudienceSize: audience,
	}
}

// TestDeliverSplit ensures the sent/failed split and delivery rate follow
// the fixed 90/10 simulation for a range of audience sizes.
func TestDeliverSplit(t *testing.T) {
	tests := []struct {
		audience int
		sent     int
		failed   int
		rate     float64
	}{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{10, 9, 1, 90},
		{187, 168, 19, 100 * 168.0 / 187.0},
	}

	gateway := NewSimulatedGateway(rand.New(rand.NewSource(1)))
	sentAt := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		stats, logs := gateway.Deliver(testCampaign(tt.audience), sentAt)

		if stats.Sent != tt.sent || stats.Failed != tt.failed {
			t.Fatalf("audience %d: got %d sent / %d failed, want %d / %d",
				tt.audience, stats.Sent, stats.Failed, tt.sent, tt.failed)
		}
		if stats.Sent+stats.Failed != tt.audience {
			t.Fatalf("audience %d: sent + failed = %d, want %d", tt.audience, stats.Sent+stats.Failed, tt.audience)
		}
		diff := stats.DeliveryRate - tt.rate
		if diff < -1e-9 || diff > 1e-9 {
			t.Fatalf("audience %d: delivery rate = %v, want %v", tt.audience, stats.DeliveryRate, tt.rate)
		}
		if len(logs) != tt.audience {
			t.Fatalf("audience %d: got %d logs, want %d", tt.audience, len(logs), tt.audience)
		}
	}
}

// TestDeliverLogOutcomes ensures every log carries the right outcome
// fields: sent logs a delivery timestamp, failed logs the fixed reason.
func TestDeliverLogOutcomes(t *testing.T) {
	gateway := NewSimulatedGateway(rand.New(rand.NewSource(42)))
	sentAt := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	stats, logs := gateway.Deliver(testCampaign(20), sentAt)

	sent, failed := 0, 0
	for _, log := range logs {
		if log.SentAt == nil || !log.SentAt.Equal(sentAt) {
			t.Fatalf("log %s does not share the send timestamp", log.ID)
		}
		switch log.Status {
		case models.LogStatusSent:
			sent++
			if log.DeliveredAt == nil || !log.DeliveredAt.Equal(sentAt) {
				t.Fatalf("sent log %s missing delivery timestamp", log.ID)
			}
			if log.ErrorMessage != "" {
				t.Fatalf("sent log %s carries error %q", log.ID, log.ErrorMessage)
			}
		case models.LogStatusFailed:
			failed++
			if log.ErrorMessage != failedReason {
				t.Fatalf("failed log %s error = %q, want %q", log.ID, log.ErrorMessage, failedReason)
			}
			if log.DeliveredAt != nil {
				t.Fatalf("failed log %s has a delivery timestamp", log.ID)
			}
		default:
			t.Fatalf("log %s has unexpected status %q", log.ID, log.Status)
		}
	}

	if sent != stats.Sent || failed != stats.Failed {
		t.Fatalf("log outcomes %d/%d disagree with stats %d/%d", sent, failed, stats.Sent, stats.Failed)
	}
}

// TestDeliverRecipientIdentity ensures recipients are drawn from the fixed
// name pool with derived emails and rendered messages.
func TestDeliverRecipientIdentity(t *testing.T) {
	gateway := NewSimulatedGateway(rand.New(rand.NewSource(7)))
	sentAt := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	campaign := testCampaign(50)
	_, logs := gateway.Deliver(campaign, sentAt)

	pool := make(map[string]bool, len(recipientNames))
	for _, name := range recipientNames {
		pool[name] = true
	}

	for _, log := range logs {
		if log.CampaignID != campaign.ID {
			t.Fatalf("log %s references campaign %q, want %q", log.ID, log.CampaignID, campaign.ID)
		}
		if !pool[log.CustomerName] {
			t.Fatalf("recipient %q is not in the name pool", log.CustomerName)
		}
		if !strings.HasPrefix(log.CustomerID, "cust") {
			t.Fatalf("customer ID %q lacks the cust prefix", log.CustomerID)
		}

		wantEmail := strings.ToLower(strings.Replace(log.CustomerName, " ", ".", 1)) + "@example.com"
		if log.CustomerEmail != wantEmail {
			t.Fatalf("email = %q, want %q", log.CustomerEmail, wantEmail)
		}

		firstName := strings.SplitN(log.CustomerName, " ", 2)[0]
		wantMessage := strings.ReplaceAll(campaign.Message, "{{name}}", firstName)
		if log.Message != wantMessage {
			t.Fatalf("message = %q, want %q", log.Message, wantMessage)
		}
	}
}

// TestDeliverSeededDeterminism ensures two gateways with the same seed
// produce the same recipient identities.
func TestDeliverSeededDeterminism(t *testing.T) {
	sentAt := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	_, first := NewSimulatedGateway(rand.New(rand.NewSource(99))).Deliver(testCampaign(30), sentAt)
	_, second := NewSimulatedGateway(rand.New(rand.NewSource(99))).Deliver(testCampaign(30), sentAt)

	if len(first) != len(second) {
		t.Fatalf("log counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].CustomerName != second[i].CustomerName || first[i].CustomerID != second[i].CustomerID {
			t.Fatalf("log %d identities differ: %s/%s vs %s/%s",
				i, first[i].CustomerName, first[i].CustomerID, second[i].CustomerName, second[i].CustomerID)
		}
	}
}
