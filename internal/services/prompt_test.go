package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_InputsVerbatim(t *testing.T) {
	pb := NewPromptBuilder(0)

	resume := "Python Developer with 5 years experience"
	job := "Looking for Python Developer"

	suggestions := pb.BuildSuggestionsPrompt(resume, job, "")
	assert.Contains(t, suggestions, resume)
	assert.Contains(t, suggestions, job)
	assert.Contains(t, suggestions, "ATS-friendly")

	rewrite := pb.BuildRewritePrompt(resume, job)
	assert.Contains(t, rewrite, resume)
	assert.Contains(t, rewrite, job)
	assert.Contains(t, rewrite, "Rewrite the resume")
}

func TestPromptBuilder_HeadTruncation(t *testing.T) {
	pb := NewPromptBuilder(10)

	long := strings.Repeat("abcde", 10) // 50 chars
	prompt := pb.BuildRewritePrompt(long, "job")

	assert.Contains(t, prompt, long[:10])
	assert.NotContains(t, prompt, long[:11])
}

func TestPromptBuilder_TruncationDisabled(t *testing.T) {
	pb := NewPromptBuilder(0)

	long := strings.Repeat("x", 20000)
	prompt := pb.BuildRewritePrompt(long, "job")

	assert.Contains(t, prompt, long)
}

func TestPromptBuilder_ShortInputUntouched(t *testing.T) {
	pb := NewPromptBuilder(100)

	prompt := pb.BuildSuggestionsPrompt("short resume", "short job", "")
	assert.Contains(t, prompt, "short resume")
	assert.Contains(t, prompt, "short job")
}

func TestPromptBuilder_ExemplarContext(t *testing.T) {
	pb := NewPromptBuilder(0)

	withContext := pb.BuildSuggestionsPrompt("resume", "job", "--- Posting 1 ---\nBackend role")
	assert.Contains(t, withContext, "SIMILAR JOB POSTINGS FOR REFERENCE")
	assert.Contains(t, withContext, "Backend role")

	withoutContext := pb.BuildSuggestionsPrompt("resume", "job", "")
	assert.NotContains(t, withoutContext, "SIMILAR JOB POSTINGS FOR REFERENCE")
}
