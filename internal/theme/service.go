package theme

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"theme_ai_server/internal/ai"
	"theme_ai_server/internal/ai/prompts"
	"theme_ai_server/internal/catalog"
	"theme_ai_server/internal/types"
)

// Analyzer is the single outbound dependency of the pipeline: one
// chat-completion exchange returning the model's raw reply text.
type Analyzer interface {
	AnalyzeTheme(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Result is the only shape the HTTP layer ever sees: a theme document or a
// human-readable error message, never a raw error value.
type Result struct {
	Success bool                 `json:"success"`
	Data    *types.ThemeDocument `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// Service sequences prompt building, the completion call, response parsing
// and theme assembly for one request. It holds no per-request state; the
// catalog behind it is read-only, so a single Service serves concurrent
// requests safely.
type Service struct {
	analyzer      Analyzer
	store         *catalog.Store
	assembler     *Assembler
	credentialSet bool
}

// NewService wires the pipeline. credentialSet reports whether the completion
// service API key is configured; when false every request short-circuits to a
// configuration failure without touching the network.
func NewService(analyzer Analyzer, store *catalog.Store, credentialSet bool) *Service {
	return &Service{
		analyzer:      analyzer,
		store:         store,
		assembler:     NewAssembler(store),
		credentialSet: credentialSet,
	}
}

// GenerateTheme runs the full pipeline for one user request. Validation and
// configuration problems are rejected before any outbound call; completion
// failures become failure envelopes; unparsable model text degrades to the
// default analysis and still succeeds.
func (s *Service) GenerateTheme(ctx context.Context, message, plan string) Result {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(plan) == "" {
		return failure("Message and plan are required")
	}
	tier, err := types.ParsePlanTier(plan)
	if err != nil {
		return failure(err.Error())
	}
	if !s.credentialSet {
		return failure("Completion service API key not configured. Set GROQ_API_KEY in the environment or .env file.")
	}

	requestID := uuid.New().String()
	log.Printf("Analyzing theme request %s (plan %s): %.80s", requestID, tier, message)

	systemPrompt, userPrompt := prompts.BuildThemeAnalysisPrompt(message, tier, s.store.TypeVocabulary(tier))
	reply, err := s.analyzer.AnalyzeTheme(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("ERROR: Theme request %s failed at completion call: %v", requestID, err)
		return failure(userFacingError(err))
	}

	analysis := ParseAnalysis(reply)
	doc := s.assembler.Assemble(analysis, tier, message)

	log.Printf("Theme request %s generated: %d components across %d pages, %d layouts (%d free / %d pro)",
		requestID, doc.Summary.TotalComponents, doc.Summary.TotalComponentPages,
		doc.Summary.TotalLayouts, doc.Summary.FreeLayouts, doc.Summary.ProLayouts)

	return Result{Success: true, Data: &doc}
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

// userFacingError renders an outbound failure for the envelope without
// leaking transport internals or stack traces.
func userFacingError(err error) string {
	switch {
	case errors.Is(err, ai.ErrAuth):
		return "Completion service rejected the configured API key"
	case errors.Is(err, ai.ErrRateLimit):
		return "Completion service is throttling requests, try again shortly"
	case errors.Is(err, ai.ErrMalformedResponse):
		return "Completion service returned an unusable response"
	default:
		return "Failed to reach the completion service"
	}
}
