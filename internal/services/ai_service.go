package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/rules"
)

// Compile-time check to ensure aiService implements AIService
var _ AIService = (*aiService)(nil)

// messageTemplates maps each campaign objective bucket to its four
// suggestions. Every template carries a {{name}} placeholder.
var messageTemplates = map[string][]string{
	"win-back": {
		"Hi {{name}}, we miss you! It's been a while since your last visit. Here's 15% off your next purchase.",
		"Hello {{name}}! We noticed you haven't shopped with us recently. Come back and enjoy a special 10% discount.",
		"{{name}}, we'd love to see you again! Return today and get free shipping on orders over ₹1,000.",
		"It's not the same without you, {{name}}. Use code COMEBACK10 for an extra discount on your next purchase.",
	},
	"high-value": {
		"{{name}}, as one of our most valued customers, enjoy an exclusive 20% discount on your next premium purchase.",
		"Because you're special to us, {{name}}, here's early access to our new collection plus 15% off.",
		"Hi {{name}}! To thank you for your loyalty, we've added a complimentary gift to your next order.",
		"{{name}}, your VIP status unlocks a special reward - check your account before your next purchase.",
	},
	"engagement": {
		"Hi {{name}}! Noticed you browsing recently? Complete your purchase today and save 10%.",
		"{{name}}, items in your wishlist are now on sale! Don't miss out on these limited-time offers.",
		"Hello {{name}}! Quick reminder about the items in your cart. Checkout now and use code SAVE10.",
		"{{name}}, our new collection just landed! Take a look and enjoy a 10% discount today.",
	},
	"new-customer": {
		"Welcome aboard, {{name}}! Enjoy 10% off your first order with code WELCOME10.",
		"{{name}}, thanks for joining us! Explore our bestsellers with your new member discount of 15%.",
		"Hi {{name}}! Start your journey with us - get free shipping on your first purchase.",
		"Hello {{name}}! Your welcome discount is ready - 10% off everything on your first purchase.",
	},
}

// aiService implements the heuristic "AI" surface. It stands in for an
// LLM integration: fixed keyword classification and string substitution,
// no external calls.
type aiService struct {
	campaigns CampaignService
}

// NewAIService creates a new AIService
func NewAIService(campaigns CampaignService) AIService {
	return &aiService{campaigns: campaigns}
}

// SuggestMessages returns exactly four message templates picked by keyword
// classification of the objective, optionally reworded for a premium
// audience or a product category.
func (s *aiService) SuggestMessages(objective, audienceType, productCategory string) []string {
	normalized := strings.ToLower(objective)

	bucket := "engagement"
	switch {
	case strings.Contains(normalized, "inactive") ||
		strings.Contains(normalized, "win back") ||
		strings.Contains(normalized, "haven't"):
		bucket = "win-back"
	case strings.Contains(normalized, "high value") ||
		strings.Contains(normalized, "premium") ||
		strings.Contains(normalized, "loyal"):
		bucket = "high-value"
	case strings.Contains(normalized, "new") ||
		strings.Contains(normalized, "welcome") ||
		strings.Contains(normalized, "first time"):
		bucket = "new-customer"
	}

	templates := make([]string, len(messageTemplates[bucket]))
	copy(templates, messageTemplates[bucket])

	if strings.Contains(strings.ToLower(audienceType), "premium") {
		for i, msg := range templates {
			msg = strings.Replace(msg, "discount", "exclusive discount", 1)
			msg = strings.Replace(msg, "special", "premium", 1)
			templates[i] = msg
		}
	}

	switch strings.ToLower(productCategory) {
	case "fashion":
		for i, msg := range templates {
			msg = strings.Replace(msg, "purchase", "fashion purchase", 1)
			msg = strings.Replace(msg, "collection", "fashion collection", 1)
			templates[i] = msg
		}
	case "electronics":
		for i, msg := range templates {
			msg = strings.Replace(msg, "purchase", "electronics purchase", 1)
			msg = strings.Replace(msg, "collection", "tech collection", 1)
			templates[i] = msg
		}
	}

	return templates
}

// TranslateRules converts a free-text audience description into a rule
// group via the fixed keyword heuristics in the rules package.
func (s *aiService) TranslateRules(text string) *models.RuleGroup {
	return rules.Translate(text)
}

// CampaignInsights builds a narrative performance summary for a sent
// campaign: a banding of the delivery rate plus remarks keyed off the
// performance level and the segment name.
func (s *aiService) CampaignInsights(ctx context.Context, campaignID string) (string, error) {
	campaign, err := s.campaigns.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return "", err
	}

	performance := "average"
	switch {
	case campaign.Stats.DeliveryRate > 95:
		performance = "excellent"
	case campaign.Stats.DeliveryRate > 90:
		performance = "good"
	case campaign.Stats.DeliveryRate < 80:
		performance = "poor"
	}

	insights := []string{
		fmt.Sprintf("Your campaign %q reached %d customers in the %q segment.",
			campaign.Name, campaign.AudienceSize, campaign.SegmentName),
		fmt.Sprintf("%d messages were successfully delivered, with a %.1f%% delivery rate.",
			campaign.Stats.Sent, campaign.Stats.DeliveryRate),
		fmt.Sprintf("This is considered %s performance compared to industry standards.", performance),
	}

	switch performance {
	case "poor":
		insights = append(insights, "Consider checking your customer contact information for accuracy to improve delivery rates.")
	case "excellent":
		insights = append(insights, "Your high delivery rate indicates a well-maintained customer database.")
	}

	segmentName := strings.ToLower(campaign.SegmentName)
	switch {
	case strings.Contains(segmentName, "high value"):
		insights = append(insights, "Your high-value customers continue to be a reliable audience for your campaigns.")
	case strings.Contains(segmentName, "inactive"):
		insights = append(insights, "Reaching inactive customers can be challenging - your current delivery rate is typical for re-engagement campaigns.")
	case strings.Contains(segmentName, "new"):
		insights = append(insights, "New customers typically have higher engagement rates. Consider following up with additional onboarding messages.")
	}

	return strings.Join(insights, " "), nil
}
