package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"resume-matcher/internal/models"
	"resume-matcher/internal/repositories"
)

// AnalyzerService runs one queued analysis end to end and persists the
// outcome. Each run gets a fresh Pipeline instance.
type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	gemini       GeminiService
	exemplars    ExemplarStore
	extractor    TextExtractor
	renderer     DocumentRenderer
	pipelineCfg  PipelineConfig
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	gemini GeminiService,
	exemplars ExemplarStore,
	extractor TextExtractor,
	renderer DocumentRenderer,
	pipelineCfg PipelineConfig,
) AnalyzerService {
	return &analyzerService{
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		gemini:       gemini,
		exemplars:    exemplars,
		extractor:    extractor,
		renderer:     renderer,
		pipelineCfg:  pipelineCfg,
	}
}

func (a *analyzerService) AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	doc, err := a.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("failed to read resume file: %v", err))
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	pipeline := NewPipeline(
		a.extractor,
		a.gemini,
		a.gemini,
		a.renderer,
		a.exemplars,
		a.pipelineCfg,
	)

	outcome, err := pipeline.Run(ctx, data, analysis.JobDescription)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("analysis run failed: %w", err)
	}

	update := &repositories.AnalysisUpdateData{
		MatchScore: &outcome.MatchScore,
	}

	if outcome.Suggestions.OK() {
		update.Suggestions = &outcome.Suggestions.Text
	} else {
		msg := outcome.Suggestions.ErrorMessage()
		update.SuggestionsError = &msg
	}

	if outcome.Rewrite.OK() {
		update.Rewrite = &outcome.Rewrite.Text
	} else {
		msg := outcome.Rewrite.ErrorMessage()
		update.RewriteError = &msg
	}

	if err := a.analysisRepo.UpdateResult(analysisID, update); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Analysis %s completed (score %.2f)\n", analysisID, outcome.MatchScore)
	return nil
}
