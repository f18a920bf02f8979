package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/services"
)

// SegmentHandler handles segment-related HTTP requests
type SegmentHandler struct {
	segmentService services.SegmentService
}

// NewSegmentHandler creates a new SegmentHandler
func NewSegmentHandler(segmentService services.SegmentService) *SegmentHandler {
	return &SegmentHandler{
		segmentService: segmentService,
	}
}

// GetSegments handles GET /segments
func (h *SegmentHandler) GetSegments(c *gin.Context) {
	segments, err := h.segmentService.GetSegments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get segments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, segments)
}

// GetSegmentByID handles GET /segments/:id
func (h *SegmentHandler) GetSegmentByID(c *gin.Context) {
	segment, err := h.segmentService.GetSegmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, segment)
}

// CreateSegment handles POST /segments
func (h *SegmentHandler) CreateSegment(c *gin.Context) {
	// Parse request body
	var input services.CreateSegmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	segment, err := h.segmentService.CreateSegment(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create segment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// UpdateSegment handles PUT /segments/:id
func (h *SegmentHandler) UpdateSegment(c *gin.Context) {
	// Parse request body
	var input services.CreateSegmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	segment, err := h.segmentService.UpdateSegment(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrSegmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update segment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, segment)
}

// DeleteSegment handles DELETE /segments/:id
func (h *SegmentHandler) DeleteSegment(c *gin.Context) {
	if err := h.segmentService.DeleteSegment(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Segment deleted successfully"})
}

// PreviewSegment handles POST /segments/preview
func (h *SegmentHandler) PreviewSegment(c *gin.Context) {
	// Parse request body
	var request struct {
		RuleGroup models.RuleGroup `json:"ruleGroup" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.segmentService.PreviewSegment(c.Request.Context(), &request.RuleGroup)
	if err != nil {
		if errors.Is(err, services.ErrDataUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview segment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, preview)
}
