// Package delivery simulates message delivery for campaigns. There is no
// real transport behind it: outcomes are a deterministic 90/10 split over
// the audience size, with randomized recipient identities drawn from a
// fixed name pool.
package delivery

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// Gateway delivers a campaign to its audience and reports per-recipient
// logs plus aggregate statistics.
type Gateway interface {
	Deliver(campaign *models.Campaign, sentAt time.Time) (models.CampaignStats, []models.CommunicationLog)
}

// failedReason is the fixed error recorded on every failed delivery
const failedReason = "User contact information invalid or unreachable"

// recipientNames is the pool simulated recipients are drawn from
var recipientNames = []string{
	"Rahul Sharma", "Priya Patel", "Amit Verma", "Meera Joshi",
	"Vikram Singh", "Neha Kumar", "Raj Malhotra", "Ananya Desai",
}

// SimulatedGateway is the only Gateway implementation. Its sent/failed
// split depends only on the audience size; only the generated recipient
// identities consume randomness.
type SimulatedGateway struct {
	rng *rand.Rand
}

// NewSimulatedGateway creates a simulated delivery gateway. A nil rng gets
// a time-seeded source; tests pass a seeded one to pin log identities.
func NewSimulatedGateway(rng *rand.Rand) *SimulatedGateway {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedGateway{rng: rng}
}

// Deliver simulates sending the campaign message to its whole audience.
// Roughly 90% of the audience receives the message: sent is
// floor(0.9 * audienceSize), the remainder fails, and the delivery rate is
// 100 * sent / audienceSize (0 for an empty audience). Every log shares
// the given sentAt timestamp.
func (g *SimulatedGateway) Deliver(campaign *models.Campaign, sentAt time.Time) (models.CampaignStats, []models.CommunicationLog) {
	audience := campaign.AudienceSize
	sent := int(float64(audience) * 0.9)
	failed := audience - sent

	stats := models.CampaignStats{
		Sent:   sent,
		Failed: failed,
	}
	if audience > 0 {
		stats.DeliveryRate = float64(sent) / float64(audience) * 100
	}

	logs := make([]models.CommunicationLog, 0, audience)
	for i := 0; i < sent; i++ {
		log := g.newLog(campaign, sentAt)
		log.Status = models.LogStatusSent
		log.DeliveredAt = &sentAt
		logs = append(logs, log)
	}
	for i := 0; i < failed; i++ {
		log := g.newLog(campaign, sentAt)
		log.Status = models.LogStatusFailed
		log.ErrorMessage = failedReason
		logs = append(logs, log)
	}

	return stats, logs
}

// newLog generates one delivery log with a randomized recipient identity.
func (g *SimulatedGateway) newLog(campaign *models.Campaign, sentAt time.Time) models.CommunicationLog {
	name := recipientNames[g.rng.Intn(len(recipientNames))]
	firstName := strings.SplitN(name, " ", 2)[0]

	return models.CommunicationLog{
		ID:            uuid.NewString(),
		CampaignID:    campaign.ID,
		CustomerID:    fmt.Sprintf("cust%d", 1000+g.rng.Intn(9000)),
		CustomerName:  name,
		CustomerEmail: strings.ToLower(strings.Replace(name, " ", ".", 1)) + "@example.com",
		Message:       strings.ReplaceAll(campaign.Message, "{{name}}", firstName),
		SentAt:        &sentAt,
	}
}
