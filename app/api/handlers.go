package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techriver/tech-river/app/cfg"
	"github.com/techriver/tech-river/app/river"
)

const (
	defaultSource = "reddit"
	defaultName   = "technology"
	defaultLimit  = 50
)

func NewHandler(service RiverServiceInterface, cache CacheStatsInterface) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
	}
}

func (h *Handler) GetRiver(c *gin.Context) {
	source := c.DefaultQuery("source", defaultSource)
	name := c.DefaultQuery("name", defaultName)

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter: " + raw})
			return
		}
		limit = parsed
	}

	resp, err := h.service.GetRiver(c.Request.Context(), source, name, limit)
	if err != nil {
		switch {
		case errors.Is(err, river.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, river.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, river.ErrUpstreamUnavailable):
			slog.Error("Upstream unavailable", "source", source, "name", name, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upstream source is unavailable, try again later"})
		default:
			slog.Error("River request failed", "source", source, "name", name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"version":        cfg.GetVersion(),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"cached_entries": h.cache.Len(),
	})
}
