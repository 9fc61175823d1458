package prompts

import (
	"fmt"
	"strings"

	"theme_ai_server/internal/types"
)

// themeAnalysisSystemPrompt sets the model's role and output discipline for
// the single analysis call.
const themeAnalysisSystemPrompt = `You are a theme generator expert for a static website builder. You analyze a user's request and select page components and layout templates for them. You respond with ONLY a valid JSON object - no markdown, no code fences, no extra text.`

// themeAnalysisUserTemplate is the user turn. Placeholders: user request,
// plan, permitted component-type vocabulary.
const themeAnalysisUserTemplate = `Analyze this theme request and respond with a JSON object.

User Request: "%s"
User Plan: %s

Respond with ONLY a valid JSON object (no markdown, no extra text) with this structure:
{
  "home": ["component_type1", "component_type2"],
  "about": ["component_type"],
  "contact": ["component_type"],
  "signup": ["component_type"],
  "login": ["component_type"],
  "privacy": ["component_type"],
  "terms": ["component_type"],
  "shop_layout": 1-5,
  "category_layout": 1-5,
  "product_layout": 1-5,
  "cart_layout": 1-5,
  "checkout_layout": 1-5,
  "theme_style": "modern/minimal/bold/professional",
  "color_scheme": "description",
  "user_intent": "brief description"
}

Use component types from: %s
For layouts, select numbers 1-5 where 1-2 are free and 3-5 are pro. A free plan user may only receive layouts 1-2.`

// BuildThemeAnalysisPrompt constructs the system and user turns sent to the
// completion service. Pure function of its inputs: the same request, plan and
// vocabulary always yield the same prompt pair.
func BuildThemeAnalysisPrompt(userMessage string, plan types.PlanTier, vocabulary []string) (system string, user string) {
	return themeAnalysisSystemPrompt,
		fmt.Sprintf(themeAnalysisUserTemplate, userMessage, plan, strings.Join(vocabulary, ", "))
}
