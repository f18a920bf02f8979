package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TargetKart/targetkart-backend/internal/services"
)

// AIHandler handles requests for the heuristic "AI" surface
type AIHandler struct {
	aiService services.AIService
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(aiService services.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// SuggestMessages handles POST /ai/suggest-messages
func (h *AIHandler) SuggestMessages(c *gin.Context) {
	// Parse request body
	var request struct {
		Objective       string `json:"objective" binding:"required"`
		AudienceType    string `json:"audienceType"`
		ProductCategory string `json:"productCategory"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions := h.aiService.SuggestMessages(request.Objective, request.AudienceType, request.ProductCategory)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// TranslateRules handles POST /ai/translate-rules
func (h *AIHandler) TranslateRules(c *gin.Context) {
	// Parse request body
	var request struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.aiService.TranslateRules(request.Text))
}

// CampaignInsights handles GET /ai/campaigns/:id/insights
func (h *AIHandler) CampaignInsights(c *gin.Context) {
	insights, err := h.aiService.CampaignInsights(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
