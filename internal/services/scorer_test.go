package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns canned vectors per input text.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	vec, ok := s.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no stub vector for %q", text)
	}
	return vec, nil
}

func TestMatchScorer_IdenticalTexts(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"same text": {0.5, 0.3, 0.8},
	}}
	scorer := NewMatchScorer(embedder)

	score, err := scorer.Score(context.Background(), "same text", "same text")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 1e-6)
}

func TestMatchScorer_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		resumeVec []float32
		jobVec    []float32
	}{
		{"orthogonal", []float32{1, 0}, []float32{0, 1}},
		{"opposite", []float32{1, 0}, []float32{-1, 0}},
		{"aligned", []float32{2, 2}, []float32{1, 1}},
		{"arbitrary", []float32{0.1, -0.4, 0.9}, []float32{-0.7, 0.2, 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder := &stubEmbedder{vectors: map[string][]float32{
				"resume": tt.resumeVec,
				"job":    tt.jobVec,
			}}
			scorer := NewMatchScorer(embedder)

			score, err := scorer.Score(context.Background(), "resume", "job")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestMatchScorer_Symmetric(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"a": {0.2, 0.9, 0.1},
		"b": {0.7, 0.3, 0.5},
	}}
	scorer := NewMatchScorer(embedder)

	ab, err := scorer.Score(context.Background(), "a", "b")
	require.NoError(t, err)
	ba, err := scorer.Score(context.Background(), "b", "a")
	require.NoError(t, err)

	assert.InDelta(t, ab, ba, 1e-9)
}

func TestMatchScorer_ZeroVector(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"empty":  {0, 0, 0},
		"normal": {0.4, 0.6, 0.2},
	}}
	scorer := NewMatchScorer(embedder)

	score, err := scorer.Score(context.Background(), "empty", "normal")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestMatchScorer_DimensionMismatch(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"short": {1, 2},
		"long":  {1, 2, 3},
	}}
	scorer := NewMatchScorer(embedder)

	_, err := scorer.Score(context.Background(), "short", "long")
	assert.Error(t, err)
}

func TestMatchScorer_EmbedFailure(t *testing.T) {
	embedder := &stubEmbedder{err: fmt.Errorf("embedding service down")}
	scorer := NewMatchScorer(embedder)

	_, err := scorer.Score(context.Background(), "a", "b")
	assert.Error(t, err)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 1}, []float32{2, 2}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
