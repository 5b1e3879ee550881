package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

type PipelineState string

const (
	StateIdle             PipelineState = "idle"
	StateExtracted        PipelineState = "extracted"
	StateScored           PipelineState = "scored"
	StateSuggestionsReady PipelineState = "suggestions_ready"
	StateRewriteReady     PipelineState = "rewrite_ready"
	StateRendered         PipelineState = "rendered"
	StateErrored          PipelineState = "errored"
)

type PipelineConfig struct {
	ModelID          string
	MaxInputChars    int
	RewriteCacheSize int
	ExemplarLimit    int
}

// Pipeline drives one analysis session through the fixed order
// extract -> score -> suggest -> rewrite -> render. Each session owns its
// pipeline; there is no shared mutable state between sessions.
//
// Extraction and scoring failures are fatal to the run. Completion
// failures are not: the failed step carries its error inline and the next
// step still executes, so an already computed score is never lost.
// Rendering happens only on explicit request and only when the rewrite
// step produced usable text.
type Pipeline struct {
	extractor TextExtractor
	scorer    *MatchScorer
	prompts   *PromptBuilder
	completer CompletionClient
	renderer  DocumentRenderer
	embedder  Embedder
	exemplars ExemplarStore // optional, may be nil
	cfg       PipelineConfig

	state       PipelineState
	resumeText  string
	pageCount   int
	jobText     string
	score       float64
	suggestions CompletionResult
	rewrite     CompletionResult
	rendered    *RenderedDocument

	// Most recent rewrites keyed by input pair, so re-running the rewrite
	// step for identical inputs skips the completion call.
	rewriteCache *lru.Cache[string, string]
}

func NewPipeline(
	extractor TextExtractor,
	embedder Embedder,
	completer CompletionClient,
	renderer DocumentRenderer,
	exemplars ExemplarStore,
	cfg PipelineConfig,
) *Pipeline {
	if cfg.RewriteCacheSize <= 0 {
		cfg.RewriteCacheSize = 32
	}
	if cfg.ExemplarLimit <= 0 {
		cfg.ExemplarLimit = 3
	}

	cache, _ := lru.New[string, string](cfg.RewriteCacheSize)

	return &Pipeline{
		extractor:    extractor,
		scorer:       NewMatchScorer(embedder),
		prompts:      NewPromptBuilder(cfg.MaxInputChars),
		completer:    completer,
		renderer:     renderer,
		embedder:     embedder,
		exemplars:    exemplars,
		cfg:          cfg,
		state:        StateIdle,
		rewriteCache: cache,
	}
}

func (p *Pipeline) State() PipelineState { return p.state }

func (p *Pipeline) ResumeText() string { return p.resumeText }

func (p *Pipeline) PageCount() int { return p.pageCount }

func (p *Pipeline) MatchScore() float64 { return p.score }

func (p *Pipeline) Suggestions() CompletionResult { return p.suggestions }

func (p *Pipeline) Rewrite() CompletionResult { return p.rewrite }

// Extract pulls the resume text out of the uploaded bytes.
// Idle -> Extracted, or Errored on a malformed document.
func (p *Pipeline) Extract(data []byte) error {
	if p.state != StateIdle {
		return fmt.Errorf("extract: invalid transition from state %s", p.state)
	}

	content, err := p.extractor.Extract(data)
	if err != nil {
		p.state = StateErrored
		return err
	}

	p.resumeText = content.Text
	p.pageCount = content.PageCount
	p.state = StateExtracted
	return nil
}

// Score computes the match percentage against the job description.
// Extracted -> Scored. An empty job description is a validation warning:
// the pipeline halts where it is and no remote call is made.
func (p *Pipeline) Score(ctx context.Context, jobText string) (float64, error) {
	if p.state != StateExtracted {
		return 0, fmt.Errorf("score: invalid transition from state %s", p.state)
	}

	if strings.TrimSpace(jobText) == "" {
		return 0, &ValidationError{Msg: "job description is required"}
	}

	score, err := p.scorer.Score(ctx, p.resumeText, jobText)
	if err != nil {
		p.state = StateErrored
		return 0, err
	}

	p.jobText = jobText
	p.score = score
	p.state = StateScored
	return score, nil
}

// Suggest asks the model for ATS-friendliness critique.
// Scored -> SuggestionsReady. A failed completion call is carried in the
// result and does not block the rewrite step.
func (p *Pipeline) Suggest(ctx context.Context) (CompletionResult, error) {
	if p.state != StateScored {
		return CompletionResult{}, fmt.Errorf("suggest: invalid transition from state %s", p.state)
	}

	prompt := p.prompts.BuildSuggestionsPrompt(p.resumeText, p.jobText, p.exemplarContext(ctx))
	p.suggestions = p.completer.Complete(ctx, prompt, p.cfg.ModelID)
	p.state = StateSuggestionsReady
	return p.suggestions, nil
}

// RewriteResume asks the model for a full ATS-friendly rewrite.
// SuggestionsReady -> RewriteReady. The step may be invoked again for the
// same inputs (a UI re-click); the cached rewrite is served without a
// second completion call.
func (p *Pipeline) RewriteResume(ctx context.Context) (CompletionResult, error) {
	if p.state != StateSuggestionsReady && p.state != StateRewriteReady && p.state != StateRendered {
		return CompletionResult{}, fmt.Errorf("rewrite: invalid transition from state %s", p.state)
	}

	key := rewriteCacheKey(p.resumeText, p.jobText)
	if cached, ok := p.rewriteCache.Get(key); ok {
		p.rewrite = CompletionResult{Text: cached}
		p.state = StateRewriteReady
		return p.rewrite, nil
	}

	prompt := p.prompts.BuildRewritePrompt(p.resumeText, p.jobText)
	p.rewrite = p.completer.Complete(ctx, prompt, p.cfg.ModelID)
	if p.rewrite.OK() {
		p.rewriteCache.Add(key, p.rewrite.Text)
	}

	p.state = StateRewriteReady
	return p.rewrite, nil
}

// Render produces the downloadable PDF. Only reachable once the rewrite
// step holds usable text; repeated calls return the same bytes.
func (p *Pipeline) Render() (*RenderedDocument, error) {
	if p.state == StateRendered {
		return p.rendered, nil
	}

	if p.state != StateRewriteReady {
		return nil, fmt.Errorf("render: invalid transition from state %s", p.state)
	}

	if !p.rewrite.OK() {
		return nil, &ValidationError{Msg: "no usable rewrite to render"}
	}

	doc, err := p.renderer.Render(p.rewrite.Text)
	if err != nil {
		return nil, err
	}

	p.rendered = doc
	p.state = StateRendered
	return doc, nil
}

// InvalidateCache drops all cached rewrites.
func (p *Pipeline) InvalidateCache() {
	p.rewriteCache.Purge()
}

// Outcome is the result of a full run up to (not including) rendering.
type Outcome struct {
	ResumeText  string
	MatchScore  float64
	Suggestions CompletionResult
	Rewrite     CompletionResult
}

// Run executes extract, score, suggest and rewrite in order. The returned
// error is non-nil only for fatal failures (extraction, validation,
// scoring); completion failures ride inside the outcome.
func (p *Pipeline) Run(ctx context.Context, document []byte, jobText string) (*Outcome, error) {
	if err := p.Extract(document); err != nil {
		return nil, err
	}

	if _, err := p.Score(ctx, jobText); err != nil {
		return nil, err
	}

	if _, err := p.Suggest(ctx); err != nil {
		return nil, err
	}

	if _, err := p.RewriteResume(ctx); err != nil {
		return nil, err
	}

	return &Outcome{
		ResumeText:  p.resumeText,
		MatchScore:  p.score,
		Suggestions: p.suggestions,
		Rewrite:     p.rewrite,
	}, nil
}

// exemplarContext retrieves similar job postings for the suggestions
// prompt. Best effort: any failure degrades to an empty context.
func (p *Pipeline) exemplarContext(ctx context.Context) string {
	if p.exemplars == nil {
		return ""
	}

	embedding, err := p.embedder.Embed(ctx, p.jobText)
	if err != nil {
		log.Printf("⚠️  Failed to embed job text for exemplar search: %v\n", err)
		return ""
	}

	results, err := p.exemplars.SearchSimilar(ctx, embedding, p.cfg.ExemplarLimit)
	if err != nil {
		log.Printf("⚠️  Failed to search exemplars: %v\n", err)
		return ""
	}

	return FormatExemplarContext(results)
}

func rewriteCacheKey(resumeText, jobText string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jobText))
	return hex.EncodeToString(h.Sum(nil))
}
