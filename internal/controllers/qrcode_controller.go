package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/service"
)

type QRCodeController struct {
	linkService   service.LinkService
	publicBaseURL string
	production    bool
}

func NewQRCodeController(linkService service.LinkService, publicBaseURL string, production bool) *QRCodeController {
	return &QRCodeController{
		linkService:   linkService,
		publicBaseURL: publicBaseURL,
		production:    production,
	}
}

// GenerateQRCode handles GET /api/qrcode/:shortCode - returns a PNG QR code
// pointing at the short URL. Unknown codes are 404 like every other lookup.
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	code := c.Param("shortCode")

	if _, err := qc.linkService.GetSummary(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}

	shortURL := resolveBaseURL(c, qc.publicBaseURL, qc.production) + "/" + code

	png, err := qrcode.Encode(shortURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
