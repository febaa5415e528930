package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/apperrs"
)

// respondError translates an application error into an HTTP response. Anything
// without a known kind is a plain 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var appErr *apperrs.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch appErr.Kind {
	case apperrs.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	case apperrs.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
	default:
		body := gin.H{"error": appErr.Message}
		if appErr.Err != nil {
			body["details"] = appErr.Err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// resolveBaseURL decides the public base address used to compose short URLs.
// A configured PUBLIC_BASE_URL wins; otherwise the base is deduced from the
// request, honoring X-Forwarded-Proto behind proxies.
func resolveBaseURL(c *gin.Context, configured string, production bool) string {
	proto := forwardedProto(c)
	if proto == "" {
		if production {
			proto = "https"
		} else {
			proto = "http"
		}
	}

	if base := strings.TrimSpace(configured); base != "" {
		if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
			return strings.TrimSuffix(base, "/")
		}
		// Bare host configured, infer the protocol
		return proto + "://" + strings.TrimSuffix(base, "/")
	}

	return proto + "://" + c.Request.Host
}

func forwardedProto(c *gin.Context) string {
	header := c.GetHeader("X-Forwarded-Proto")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.Split(header, ",")[0])
}
