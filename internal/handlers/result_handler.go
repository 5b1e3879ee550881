package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-matcher/internal/models"
	"resume-matcher/internal/repositories"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.ResultResponse{
		ID:     analysis.ID.String(),
		Status: string(analysis.Status),
	}

	// A completed analysis always carries the score; the two completion
	// steps report independently, each with either text or an error
	if analysis.Status == models.StatusCompleted {
		data := &models.AnalysisData{}

		if analysis.MatchScore != nil {
			data.MatchScore = *analysis.MatchScore
		}
		if analysis.Suggestions != nil {
			data.Suggestions = *analysis.Suggestions
		}
		if analysis.SuggestionsError != nil {
			data.SuggestionsError = *analysis.SuggestionsError
		}
		if analysis.Rewrite != nil {
			data.Rewrite = *analysis.Rewrite
			data.Downloadable = true
		}
		if analysis.RewriteError != nil {
			data.RewriteError = *analysis.RewriteError
		}

		response.Result = data
	}

	if analysis.Status == models.StatusFailed && analysis.ErrorMessage != nil {
		response.ErrorMessage = analysis.ErrorMessage
	}

	return c.JSON(response)
}
