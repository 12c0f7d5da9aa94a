package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/SanaUllah13/youtools-go/internal/middleware"
	"github.com/SanaUllah13/youtools-go/internal/repository"
)

type StatsHandler struct {
	repo *repository.AnalysisRepo
}

func NewStatsHandler(repo *repository.AnalysisRepo) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.repo.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
	}
	return c.JSON(stats)
}

// Recent handles GET /api/analyses/recent?limit=N
func (h *StatsHandler) Recent(c fiber.Ctx) error {
	limit := middleware.ValidateLimit(fiber.Query[string](c, "limit"), 20, 100)

	records, err := h.repo.Recent(c.Context(), limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch recent analyses")
	}
	return c.JSON(records)
}
