package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/models"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/service"
)

type SummaryController struct {
	linkService service.LinkService
	log         *logrus.Logger
}

func NewSummaryController(linkService service.LinkService, log *logrus.Logger) *SummaryController {
	return &SummaryController{linkService: linkService, log: log}
}

// GetSummary handles GET /api/summary/:shortCode - returns the stored record.
func (sc *SummaryController) GetSummary(c *gin.Context) {
	summary, err := sc.linkService.GetSummary(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CondenseSummary handles POST /api/condensed-summary - rewrites an existing
// summary into a shorter shareable form.
func (sc *SummaryController) CondenseSummary(c *gin.Context) {
	var req models.CondenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Summary is required"})
		return
	}

	condensed, err := sc.linkService.Condense(c.Request.Context(), req.Summary, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CondenseResponse{CondensedSummary: condensed})
}
