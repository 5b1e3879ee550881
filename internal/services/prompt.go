package services

import (
	"fmt"
	"strings"
)

// PromptBuilder assembles the two completion prompts. Pure string
// templating, no state, no network access.
type PromptBuilder struct {
	// MaxInputChars caps resume and job text before templating. Head
	// truncation only: the first N characters are kept. 0 disables.
	MaxInputChars int
}

func NewPromptBuilder(maxInputChars int) *PromptBuilder {
	return &PromptBuilder{MaxInputChars: maxInputChars}
}

// BuildSuggestionsPrompt creates the ATS-friendliness critique prompt.
// Context holds retrieved job-description exemplars and may be empty.
func (pb *PromptBuilder) BuildSuggestionsPrompt(resumeText, jobText, context string) string {
	var contextSection string
	if strings.TrimSpace(context) != "" {
		contextSection = fmt.Sprintf("\nSIMILAR JOB POSTINGS FOR REFERENCE:\n%s\n", context)
	}

	return fmt.Sprintf(`Here is a candidate's resume:
%s

The candidate is applying for the following job:
%s
%s
Please suggest improvements to make the resume ATS-friendly. Highlight missing skills, weak points, and best formatting practices.`,
		pb.truncate(resumeText), pb.truncate(jobText), contextSection)
}

// BuildRewritePrompt creates the full-rewrite prompt.
func (pb *PromptBuilder) BuildRewritePrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`Here is a candidate's resume:
%s

The candidate is applying for the following job:
%s

Rewrite the resume in an ATS-friendly format. Use proper headings (Work Experience, Skills, Education, etc.), bullet points, and clear formatting for easy parsing.`,
		pb.truncate(resumeText), pb.truncate(jobText))
}

func (pb *PromptBuilder) truncate(text string) string {
	if pb.MaxInputChars <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= pb.MaxInputChars {
		return text
	}

	return string(runes[:pb.MaxInputChars])
}
