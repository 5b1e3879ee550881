package services

import (
	"context"
	"fmt"
	"math"
)

// MatchScorer computes a 0-100 compatibility score between a resume and a
// job description from their embeddings.
type MatchScorer struct {
	embedder Embedder
}

func NewMatchScorer(embedder Embedder) *MatchScorer {
	return &MatchScorer{embedder: embedder}
}

// Score embeds both texts and returns cosine similarity scaled to a
// percentage, clamped to [0,100]. Deterministic for a fixed embedder.
func (m *MatchScorer) Score(ctx context.Context, resumeText, jobText string) (float64, error) {
	resumeVec, err := m.embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume: %w", err)
	}

	jobVec, err := m.embedder.Embed(ctx, jobText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job description: %w", err)
	}

	if len(resumeVec) != len(jobVec) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(resumeVec), len(jobVec))
	}

	score := CosineSimilarity(resumeVec, jobVec) * 100

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, nil
}

// CosineSimilarity returns dot(a,b) / (||a|| * ||b||). A zero-magnitude
// vector yields 0 rather than a division by zero.
func CosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64

	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
