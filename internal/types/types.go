package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PlanTier is the entitlement level controlling which components and layouts
// a request may use.
type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPro  PlanTier = "pro"
)

// ParsePlanTier canonicalizes a plan string taken from the API boundary.
// "paid" is a legacy synonym for "pro" kept for frontend compatibility.
func ParsePlanTier(s string) (PlanTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return PlanFree, nil
	case "pro", "paid":
		return PlanPro, nil
	default:
		return "", fmt.Errorf("unknown plan %q (expected \"free\" or \"pro\")", s)
	}
}

// ComponentPages lists the seven pages whose content is assembled from
// catalog components.
var ComponentPages = []string{"home", "about", "contact", "signup", "login", "privacy", "terms"}

// LayoutPages lists the five pages driven by a numbered layout template.
var LayoutPages = []string{"shop", "category", "product", "cart", "checkout"}

// ComponentDefinition is one catalog entry: a named page building block with
// its template/style/script file identifiers and an optional opaque payload.
type ComponentDefinition struct {
	Type         string            `json:"type"`
	Title        string            `json:"title"`
	Visibility   string            `json:"visibility"`
	Plans        string            `json:"plans"`
	Category     string            `json:"category"`
	EJSFile      string            `json:"ejs_file"`
	CSSFile      string            `json:"css_file"`
	JSFile       string            `json:"js_file"`
	Description  string            `json:"description"`
	Keyword      string            `json:"keyword"`
	PreviewImage string            `json:"preview_image"`
	Data         []json.RawMessage `json:"data"`
}

// LayoutDefinition is the layout assignment for one layout-driven page.
// Layout numbers 1-2 belong to the free tier, 3-5 to pro.
type LayoutDefinition struct {
	PageName     string   `json:"page_name"`
	PageTitle    string   `json:"page_title"`
	LayoutNumber int      `json:"layout_number"`
	LayoutName   string   `json:"layout_name"`
	Plan         PlanTier `json:"plan"`
	EJSFile      string   `json:"ejs_file"`
	CSSFile      string   `json:"css_file"`
	JSFile       string   `json:"js_file"`
	Description  string   `json:"description"`
	PreviewImage string   `json:"preview_image"`
}

// ThemeAnalysis is the normalized interpretation of the model's reply. It is
// fully populated before assembly: every component page has a (possibly
// empty) slice and every layout page a number in [1,5].
type ThemeAnalysis struct {
	PageComponents map[string][]string
	PageLayouts    map[string]int
	Style          string
	ColorScheme    string
	Intent         string
}

// PageBundle is one assembled component-driven page.
type PageBundle struct {
	PageName    string                `json:"page_name"`
	PageTitle   string                `json:"page_title"`
	Components  []ComponentDefinition `json:"components"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Summary holds the counts reported alongside a generated theme.
type Summary struct {
	TotalComponentPages int `json:"total_component_pages"`
	TotalLayoutPages    int `json:"total_layout_pages"`
	TotalComponents     int `json:"total_components"`
	TotalLayouts        int `json:"total_layouts"`
	FreeLayouts         int `json:"free_layouts"`
	ProLayouts          int `json:"pro_layouts"`
}

// ThemeDocument is the complete generated output for one request.
type ThemeDocument struct {
	Title          string                      `json:"title"`
	Plan           PlanTier                    `json:"plan"`
	UserMessage    string                      `json:"user_message"`
	UserIntent     string                      `json:"user_intent"`
	ThemeStyle     string                      `json:"theme_style"`
	ColorScheme    string                      `json:"color_scheme"`
	GeneratedAt    time.Time                   `json:"generated_at"`
	ComponentPages map[string]PageBundle       `json:"component_pages"`
	LayoutPages    map[string]LayoutDefinition `json:"layout_pages"`
	Summary        Summary                     `json:"summary"`
}
