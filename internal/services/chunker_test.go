package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkText_Empty(t *testing.T) {
	chunker := NewTextChunker()
	assert.Empty(t, chunker.ChunkText("", 1000, 200))
	assert.Empty(t, chunker.ChunkText("\n\n  \n\n", 1000, 200))
}

func TestChunkText_SmallTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short job posting.", 1000, 200)
	assert.Len(t, chunks, 1)
	assert.Equal(t, "A short job posting.", chunks[0])
}

func TestChunkText_SplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	para := strings.Repeat("word ", 30) // ~150 chars
	text := strings.TrimSpace(strings.Repeat(para+"\n\n", 5))

	chunks := chunker.ChunkText(text, 200, 0)
	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 220, "chunks stay near the size cap")
	}
}

func TestChunkText_OverlapCarriedForward(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("alpha beta gamma delta. ", 40)
	chunks := chunker.ChunkText(text, 120, 30)

	assert.Greater(t, len(chunks), 1)
	for i := 1; i < len(chunks); i++ {
		tail := lastNRunes(chunks[i-1], 30)
		assert.True(t, strings.HasPrefix(chunks[i], tail),
			"chunk %d must start with the previous chunk's tail", i)
	}
}

func TestChunkText_DefaultsOnBadArgs(t *testing.T) {
	chunker := NewTextChunker()

	// Nonsense sizes fall back to sane defaults instead of looping
	chunks := chunker.ChunkText("some text", -1, -5)
	assert.Len(t, chunks, 1)

	chunks = chunker.ChunkText("some text", 100, 500)
	assert.Len(t, chunks, 1)
}
