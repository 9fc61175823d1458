package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theme_ai_server/internal/ai"
	"theme_ai_server/internal/types"
)

// mockAnalyzer counts outbound calls and returns a canned reply or error.
type mockAnalyzer struct {
	calls      int
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (m *mockAnalyzer) AnalyzeTheme(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func newTestService(analyzer Analyzer, credentialSet bool) *Service {
	return NewService(analyzer, fixtureStore(), credentialSet)
}

func TestGenerateTheme_EndToEnd(t *testing.T) {
	mock := &mockAnalyzer{reply: `{
		"home": ["heroimageslider"],
		"shop_layout": 1,
		"theme_style": "modern",
		"color_scheme": "earth tones",
		"user_intent": "shoe shop"
	}`}
	svc := newTestService(mock, true)

	result := svc.GenerateTheme(context.Background(), "Build me a shop for selling shoes", "free")

	require.True(t, result.Success, "error: %s", result.Error)
	require.NotNil(t, result.Data)
	assert.Equal(t, 1, mock.calls)

	doc := result.Data
	assert.Equal(t, types.PlanFree, doc.Plan)
	assert.Equal(t, "Build me a shop for selling shoes", doc.UserMessage)

	home := doc.ComponentPages["home"]
	require.Len(t, home.Components, 1)
	assert.Equal(t, "heroimageslider", home.Components[0].Type)

	shop := doc.LayoutPages["shop"]
	assert.Equal(t, 1, shop.LayoutNumber)
	assert.Equal(t, types.PlanFree, shop.Plan)

	// Result shape invariants.
	assert.Len(t, doc.ComponentPages, 7)
	assert.Len(t, doc.LayoutPages, 5)
	for page, bundle := range doc.ComponentPages {
		assert.NotEmpty(t, bundle.Components, "page %s", page)
	}
}

func TestGenerateTheme_PromptCarriesRequestAndVocabulary(t *testing.T) {
	mock := &mockAnalyzer{reply: "{}"}
	svc := newTestService(mock, true)

	result := svc.GenerateTheme(context.Background(), "a bakery site", "pro")

	require.True(t, result.Success)
	assert.Contains(t, mock.lastUser, `"a bakery site"`)
	assert.Contains(t, mock.lastUser, "User Plan: pro")
	// Pro tier vocabulary includes pro-only components.
	assert.Contains(t, mock.lastUser, "productslider")
	assert.Contains(t, mock.lastSystem, "ONLY a valid JSON object")
}

func TestGenerateTheme_MissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		message string
		plan    string
	}{
		{"empty message", "", "free"},
		{"blank message", "   ", "free"},
		{"empty plan", "hello", ""},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAnalyzer{reply: "{}"}
			svc := newTestService(mock, true)

			result := svc.GenerateTheme(context.Background(), tt.message, tt.plan)

			assert.False(t, result.Success)
			assert.Contains(t, result.Error, "required")
			assert.Zero(t, mock.calls, "validation failures must not call the model")
		})
	}
}

func TestGenerateTheme_UnknownPlan(t *testing.T) {
	mock := &mockAnalyzer{reply: "{}"}
	svc := newTestService(mock, true)

	result := svc.GenerateTheme(context.Background(), "hello", "enterprise")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown plan")
	assert.Zero(t, mock.calls)
}

func TestGenerateTheme_PaidIsProSynonym(t *testing.T) {
	mock := &mockAnalyzer{reply: `{"home":["productslider"]}`}
	svc := newTestService(mock, true)

	result := svc.GenerateTheme(context.Background(), "hello", "paid")

	require.True(t, result.Success)
	assert.Equal(t, types.PlanPro, result.Data.Plan)
	require.NotEmpty(t, result.Data.ComponentPages["home"].Components)
	assert.Equal(t, "productslider", result.Data.ComponentPages["home"].Components[0].Type)
}

func TestGenerateTheme_MissingCredential(t *testing.T) {
	mock := &mockAnalyzer{reply: "{}"}
	svc := newTestService(mock, false)

	result := svc.GenerateTheme(context.Background(), "hello", "free")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "API key not configured")
	assert.Zero(t, mock.calls, "configuration failures must not call the model")
}

func TestGenerateTheme_GarbageModelTextStillSucceeds(t *testing.T) {
	mock := &mockAnalyzer{reply: "I'm sorry, I cannot produce JSON today."}
	svc := newTestService(mock, true)

	result := svc.GenerateTheme(context.Background(), "hello", "free")

	require.True(t, result.Success, "unparsable model text must degrade, not fail")
	for page, bundle := range result.Data.ComponentPages {
		assert.NotEmpty(t, bundle.Components, "page %s", page)
	}
	for _, layout := range result.Data.LayoutPages {
		assert.Equal(t, 1, layout.LayoutNumber)
	}
}

func TestGenerateTheme_CompletionFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth", fmt.Errorf("%w: 401", ai.ErrAuth), "rejected the configured API key"},
		{"rate limit", fmt.Errorf("%w: 429", ai.ErrRateLimit), "throttling"},
		{"malformed", fmt.Errorf("%w: empty choices", ai.ErrMalformedResponse), "unusable response"},
		{"transport", fmt.Errorf("%w: connection refused", ai.ErrTransport), "Failed to reach"},
		{"unclassified", errors.New("boom"), "Failed to reach"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAnalyzer{err: tt.err}
			svc := newTestService(mock, true)

			result := svc.GenerateTheme(context.Background(), "hello", "free")

			assert.False(t, result.Success)
			assert.Nil(t, result.Data)
			assert.Contains(t, result.Error, tt.want)
			// The envelope carries a human-readable message, not internals.
			assert.False(t, strings.Contains(result.Error, "boom"))
			assert.Equal(t, 1, mock.calls)
		})
	}
}

func TestGenerateTheme_FreePlanEntitlement(t *testing.T) {
	// The model ignores the plan and requests pro everything.
	mock := &mockAnalyzer{reply: `{
		"home": ["productslider", "testimonials"],
		"shop_layout": 5,
		"category_layout": 4,
		"product_layout": 3,
		"cart_layout": 5,
		"checkout_layout": 3
	}`}
	svc := newTestService(mock, true)

	result := svc.GenerateTheme(context.Background(), "fancy shop please", "free")

	require.True(t, result.Success)
	for page, layout := range result.Data.LayoutPages {
		assert.LessOrEqual(t, layout.LayoutNumber, 2, "page %s", page)
		assert.Equal(t, types.PlanFree, layout.Plan, "page %s", page)
	}
	for page, bundle := range result.Data.ComponentPages {
		require.NotEmpty(t, bundle.Components, "page %s", page)
		for _, comp := range bundle.Components {
			assert.NotContains(t, []string{"productslider", "testimonials"}, comp.Type,
				"pro component leaked on page %s", page)
		}
	}
}
