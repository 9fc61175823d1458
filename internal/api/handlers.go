package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"theme_ai_server/internal/catalog"
	"theme_ai_server/internal/theme"
	"theme_ai_server/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	themeService *theme.Service
	store        *catalog.Store
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(themeService *theme.Service, store *catalog.Store) *APIHandler {
	return &APIHandler{
		themeService: themeService,
		store:        store,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateThemeRequest struct {
	Message string `json:"message" binding:"required"`
	Plan    string `json:"plan" binding:"required"`
}

// GenerateThemeResponse is the wire envelope: the theme document on success,
// a message on failure, never both.
type GenerateThemeResponse struct {
	Success bool                 `json:"success"`
	Theme   *types.ThemeDocument `json:"theme,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// --- API Handlers ---

// POST /api/theme/generate
func (h *APIHandler) GenerateTheme(c *gin.Context) {
	var req GenerateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenerateThemeResponse{
			Success: false,
			Error:   "Message and plan are required",
		})
		return
	}

	result := h.themeService.GenerateTheme(c.Request.Context(), req.Message, req.Plan)
	if !result.Success {
		log.Printf("Theme generation failed: %s", result.Error)
		c.JSON(http.StatusInternalServerError, GenerateThemeResponse{
			Success: false,
			Error:   result.Error,
		})
		return
	}

	c.JSON(http.StatusOK, GenerateThemeResponse{Success: true, Theme: result.Data})
}

// GET /api/theme/components?plan=free
func (h *APIHandler) ListComponents(c *gin.Context) {
	tier, err := types.ParsePlanTier(c.DefaultQuery("plan", string(types.PlanFree)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	components := h.store.ListAvailable(tier)
	c.JSON(http.StatusOK, gin.H{
		"plan":       tier,
		"count":      len(components),
		"components": components,
	})
}
