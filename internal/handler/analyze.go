package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/SanaUllah13/youtools-go/internal/middleware"
	"github.com/SanaUllah13/youtools-go/internal/model"
	"github.com/SanaUllah13/youtools-go/internal/service"
)

type AnalyzeHandler struct {
	svc *service.AnalyzeService
}

func NewAnalyzeHandler(svc *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Analyze handles POST /api/niche-analyzer.
//
// This route keeps the flat error shapes its form page expects:
// 400 -> {error, message}, 500 -> {error, detail, suggestion}.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req model.AnalyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": "Expected JSON body with an \"input\" field",
		})
	}

	input, errMsg := middleware.ValidateAnalysisInput(req.Input)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid input",
			"message": errMsg,
		})
	}

	start := time.Now()
	resp, err := h.svc.Analyze(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrNoCompetitorData) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":      "No competitor data found",
				"detail":     err.Error(),
				"suggestion": "Try a broader or different niche, or check your connectivity.",
			})
		}
		middleware.Logger.Error().Err(err).Msg("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Analysis failed",
			"detail":     "An unexpected error occurred while analyzing this niche",
			"suggestion": "Please try again in a moment.",
		})
	}

	if resp.Cached {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
		Metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	}
	Metrics.AnalysesTotal.WithLabelValues(resp.NicheHierarchy.MainNiche).Inc()

	return c.JSON(resp)
}
