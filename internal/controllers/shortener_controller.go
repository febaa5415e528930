package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/models"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/render"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/service"
)

type ShortenerController struct {
	linkService    service.LinkService
	publicBaseURL  string
	clientBuildDir string
	production     bool
	log            *logrus.Logger
}

func NewShortenerController(linkService service.LinkService, publicBaseURL, clientBuildDir string, production bool, log *logrus.Logger) *ShortenerController {
	return &ShortenerController{
		linkService:    linkService,
		publicBaseURL:  publicBaseURL,
		clientBuildDir: clientBuildDir,
		production:     production,
		log:            log,
	}
}

// CreateShortURL handles POST /api/shorten - shortens a URL and generates its summary.
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	baseURL := resolveBaseURL(c, sc.publicBaseURL, sc.production)

	response, created, err := sc.linkService.Shorten(c.Request.Context(), req.URL, baseURL)
	if err != nil {
		sc.log.WithError(err).WithField("url", req.URL).Error("shorten failed")
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response)
}

// DisplaySummary handles GET /:shortCode - serves the summary display surface,
// or 301-redirects to the original article when ?redirect=true is present.
func (sc *ShortenerController) DisplaySummary(c *gin.Context) {
	code := c.Param("shortCode")

	if c.Query("redirect") == "true" {
		sc.redirect(c, code)
		return
	}

	summary, err := sc.linkService.GetSummary(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	// With a frontend build available the SPA renders the summary itself;
	// otherwise return the record with its parsed points and share text.
	if sc.clientBuildDir != "" {
		c.File(filepath.Join(sc.clientBuildDir, "index.html"))
		return
	}

	shortURL := resolveBaseURL(c, sc.publicBaseURL, sc.production) + "/" + summary.ShortCode
	c.JSON(http.StatusOK, gin.H{
		"shortCode":   summary.ShortCode,
		"originalUrl": summary.OriginalURL,
		"title":       summary.Title,
		"summary":     summary.Summary,
		"createdAt":   summary.CreatedAt,
		"points":      render.ParseSummary(summary.Summary),
		"shareText":   render.ShareText(summary.Title, summary.Summary, shortURL, summary.OriginalURL, false),
	})
}

// RedirectToOriginal handles GET /redirect/:shortCode - always 301s to the
// original article URL.
func (sc *ShortenerController) RedirectToOriginal(c *gin.Context) {
	sc.redirect(c, c.Param("shortCode"))
}

func (sc *ShortenerController) redirect(c *gin.Context, code string) {
	originalURL, err := sc.linkService.GetOriginalURL(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	sc.log.WithFields(logrus.Fields{"short_code": code, "url": originalURL}).Info("redirecting")
	c.Redirect(http.StatusMovedPermanently, originalURL)
}
