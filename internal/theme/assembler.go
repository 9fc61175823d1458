package theme

import (
	"fmt"
	"log"
	"strings"
	"time"

	"theme_ai_server/internal/catalog"
	"theme_ai_server/internal/types"
)

// freeLayoutMax is the highest layout number the free tier may use. The 2/3
// split between free and pro layouts is a fixed design rule, not data-driven.
const freeLayoutMax = 2

// layoutNames maps each layout page to its five template names, indexed by
// layoutNumber-1.
var layoutNames = map[string][maxLayoutNumber]string{
	"shop":     {"grid", "list", "masonry", "hero_grid", "sidebar_main"},
	"category": {"grid", "list", "masonry", "hero_grid", "sidebar_main"},
	"product":  {"hero_slider", "list", "detailed", "comparison", "featured"},
	"cart":     {"simple", "detailed", "mini", "fullpage", "checkout_preview"},
	"checkout": {"steps", "single_page", "multi_step", "express", "full_flow"},
}

// Assembler turns a ThemeAnalysis into the final ThemeDocument: it resolves
// component requests against the catalog and is the single enforcement point
// for plan entitlement, regardless of what the model or parser produced.
type Assembler struct {
	store *catalog.Store
}

func NewAssembler(store *catalog.Store) *Assembler {
	return &Assembler{store: store}
}

// Assemble is a pure transformation of (analysis, plan, message) plus the
// read-only catalog. No network or parsing logic lives here.
func (a *Assembler) Assemble(analysis types.ThemeAnalysis, plan types.PlanTier, userMessage string) types.ThemeDocument {
	now := time.Now().UTC()

	pages := make(map[string]types.PageBundle, len(types.ComponentPages))
	totalComponents := 0
	for _, pageName := range types.ComponentPages {
		components := a.resolveComponents(pageName, analysis.PageComponents[pageName], plan)
		totalComponents += len(components)
		pages[pageName] = types.PageBundle{
			PageName:    pageName,
			PageTitle:   pageTitle(pageName),
			Components:  components,
			GeneratedAt: now,
		}
	}

	layouts := make(map[string]types.LayoutDefinition, len(types.LayoutPages))
	freeLayouts, proLayouts := 0, 0
	for _, pageName := range types.LayoutPages {
		layout := buildLayout(pageName, analysis.PageLayouts[pageName], plan)
		if layout.Plan == types.PlanPro {
			proLayouts++
		} else {
			freeLayouts++
		}
		layouts[pageName] = layout
	}

	return types.ThemeDocument{
		Title:          "Generated Theme",
		Plan:           plan,
		UserMessage:    userMessage,
		UserIntent:     analysis.Intent,
		ThemeStyle:     analysis.Style,
		ColorScheme:    analysis.ColorScheme,
		GeneratedAt:    now,
		ComponentPages: pages,
		LayoutPages:    layouts,
		Summary: types.Summary{
			TotalComponentPages: len(types.ComponentPages),
			TotalLayoutPages:    len(types.LayoutPages),
			TotalComponents:     totalComponents,
			TotalLayouts:        len(types.LayoutPages),
			FreeLayouts:         freeLayouts,
			ProLayouts:          proLayouts,
		},
	}
}

// resolveComponents looks up each requested type for the tier in order,
// dropping anything the catalog cannot resolve. A page is never left empty:
// when nothing resolves, the first available definition for the tier stands
// in, because a page with zero visual elements is a broken theme.
func (a *Assembler) resolveComponents(pageName string, requested []string, plan types.PlanTier) []types.ComponentDefinition {
	components := make([]types.ComponentDefinition, 0, len(requested))
	for _, typ := range requested {
		def := a.store.FindComponent(typ, plan)
		if def == nil {
			log.Printf("Page %s: requested component %q not in %s catalog, skipping", pageName, typ, plan)
			continue
		}
		components = append(components, *def)
	}

	if len(components) == 0 {
		if available := a.store.ListAvailable(plan); len(available) > 0 {
			log.Printf("Page %s: no requested component resolved, falling back to %q", pageName, available[0].Type)
			components = append(components, available[0])
		}
	}
	return components
}

// buildLayout synthesizes the layout assignment for one page. A layout above
// 2 under a free plan is replaced by the default layout rather than honored.
func buildLayout(pageName string, layoutNum int, plan types.PlanTier) types.LayoutDefinition {
	if layoutNum < 1 || layoutNum > maxLayoutNumber {
		layoutNum = defaultLayoutNumber
	}
	if plan == types.PlanFree && layoutNum > freeLayoutMax {
		log.Printf("Page %s: layout %d requires the pro plan, using layout %d", pageName, layoutNum, defaultLayoutNumber)
		layoutNum = defaultLayoutNumber
	}

	layoutPlan := types.PlanFree
	planWord := "Free"
	if layoutNum > freeLayoutMax {
		layoutPlan = types.PlanPro
		planWord = "Pro"
	}

	assetPath := layoutAssetPath(pageName, layoutNum)
	return types.LayoutDefinition{
		PageName:     pageName,
		PageTitle:    pageTitle(pageName),
		LayoutNumber: layoutNum,
		LayoutName:   layoutName(pageName, layoutNum),
		Plan:         layoutPlan,
		EJSFile:      assetPath,
		CSSFile:      assetPath,
		JSFile:       assetPath,
		Description:  fmt.Sprintf("%s page with %s layout #%d", pageTitle(pageName), planWord, layoutNum),
		PreviewImage: layoutPreviewImage(pageName, layoutNum),
	}
}

// layoutAssetPath is the single place the {page}/layout_{n} file convention
// is defined.
func layoutAssetPath(pageName string, layoutNum int) string {
	return fmt.Sprintf("%s/layout_%d", pageName, layoutNum)
}

func layoutPreviewImage(pageName string, layoutNum int) string {
	return fmt.Sprintf("https://imagedelivery.net/placeholder-%s-layout-%d.jpg", pageName, layoutNum)
}

func layoutName(pageName string, layoutNum int) string {
	if names, ok := layoutNames[pageName]; ok {
		return names[layoutNum-1]
	}
	return fmt.Sprintf("Layout %d", layoutNum)
}

// pageTitle derives the display title from a page name.
func pageTitle(pageName string) string {
	if pageName == "" {
		return ""
	}
	return strings.ToUpper(pageName[:1]) + pageName[1:]
}
