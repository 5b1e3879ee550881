package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-matcher/internal/models"
	"resume-matcher/internal/repositories"
	"resume-matcher/internal/services"
)

type DownloadHandler struct {
	analysisRepo repositories.AnalysisRepository
	renderer     services.DocumentRenderer
}

func NewDownloadHandler(
	analysisRepo repositories.AnalysisRepository,
	renderer services.DocumentRenderer,
) *DownloadHandler {
	return &DownloadHandler{
		analysisRepo: analysisRepo,
		renderer:     renderer,
	}
}

// HandleDownload handles GET /download/:id. Rendering happens on demand
// from the stored rewrite; the renderer is deterministic, so repeated
// downloads produce byte-identical files.
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
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

	if analysis.Status != models.StatusCompleted || analysis.Rewrite == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No usable rewrite available for download",
		})
	}

	doc, err := h.renderer.Render(*analysis.Rewrite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to render resume: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, doc.MediaType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ATS_Optimized_Resume.pdf"`)
	return c.Send(doc.Data)
}
