package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-matcher/internal/models"
	"resume-matcher/internal/repositories"
)

type stubDocRepo struct {
	docs map[uuid.UUID]*models.Document
}

func (s *stubDocRepo) Create(doc *models.Document) error {
	s.docs[doc.ID] = doc
	return nil
}

func (s *stubDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("document not found")
	}
	return doc, nil
}

type stubAnalysisRepo struct {
	created []*models.Analysis
}

func (s *stubAnalysisRepo) Create(a *models.Analysis) error {
	s.created = append(s.created, a)
	return nil
}

func (s *stubAnalysisRepo) FindByID(id uuid.UUID) (*models.Analysis, error) {
	for _, a := range s.created {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("analysis not found")
}

func (s *stubAnalysisRepo) UpdateStatus(uuid.UUID, models.AnalysisStatus) error { return nil }
func (s *stubAnalysisRepo) UpdateResult(uuid.UUID, *repositories.AnalysisUpdateData) error {
	return nil
}
func (s *stubAnalysisRepo) UpdateError(uuid.UUID, string) error { return nil }
func (s *stubAnalysisRepo) FindPendingJobs(int) ([]models.Analysis, error) {
	return nil, nil
}

type stubWorker struct {
	enqueued []uuid.UUID
}

func (s *stubWorker) Start(_ context.Context) {}
func (s *stubWorker) Stop()                   {}
func (s *stubWorker) EnqueueJob(id uuid.UUID) { s.enqueued = append(s.enqueued, id) }

func newAnalyzeApp(docRepo *stubDocRepo, analysisRepo *stubAnalysisRepo, worker *stubWorker) *fiber.App {
	app := fiber.New()
	handler := NewAnalyzeHandler(analysisRepo, docRepo, worker)
	app.Post("/analyze", handler.HandleAnalyze)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

func TestHandleAnalyze_EmptyJobDescription(t *testing.T) {
	docRepo := &stubDocRepo{docs: map[uuid.UUID]*models.Document{}}
	analysisRepo := &stubAnalysisRepo{}
	worker := &stubWorker{}
	app := newAnalyzeApp(docRepo, analysisRepo, worker)

	status, body := postJSON(t, app, "/analyze", models.AnalyzeRequest{
		ResumeDocumentID: uuid.New().String(),
		JobDescription:   "   ",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "warning", "missing job description is a warning, not an error")
	assert.Empty(t, analysisRepo.created, "nothing is queued")
	assert.Empty(t, worker.enqueued)
}

func TestHandleAnalyze_UnknownDocument(t *testing.T) {
	docRepo := &stubDocRepo{docs: map[uuid.UUID]*models.Document{}}
	analysisRepo := &stubAnalysisRepo{}
	worker := &stubWorker{}
	app := newAnalyzeApp(docRepo, analysisRepo, worker)

	status, _ := postJSON(t, app, "/analyze", models.AnalyzeRequest{
		ResumeDocumentID: uuid.New().String(),
		JobDescription:   "Looking for Python Developer",
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Empty(t, worker.enqueued)
}

func TestHandleAnalyze_QueuesJob(t *testing.T) {
	docID := uuid.New()
	docRepo := &stubDocRepo{docs: map[uuid.UUID]*models.Document{
		docID: {ID: docID, Filename: "resume_x.pdf"},
	}}
	analysisRepo := &stubAnalysisRepo{}
	worker := &stubWorker{}
	app := newAnalyzeApp(docRepo, analysisRepo, worker)

	status, body := postJSON(t, app, "/analyze", models.AnalyzeRequest{
		ResumeDocumentID: docID.String(),
		JobDescription:   "Looking for Python Developer",
	})

	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Equal(t, string(models.StatusQueued), body["status"])
	require.Len(t, analysisRepo.created, 1)
	require.Len(t, worker.enqueued, 1)
	assert.Equal(t, analysisRepo.created[0].ID, worker.enqueued[0])
}
