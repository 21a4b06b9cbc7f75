package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service/ai"
)

type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type generateRequest struct {
	MainKeywords        string   `json:"mainKeywords"`
	SecondaryKeywords   string   `json:"secondaryKeywords"`
	Questions           string   `json:"questions"`
	Components          []string `json:"components"`
	Language            string   `json:"language"`
	ConversationContext string   `json:"conversationContext"`
}

type generateResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    generateData `json:"data"`
}

type generateData struct {
	Generated any            `json:"generated"`
	Usage     ai.Usage       `json:"usage"`
	Timestamp time.Time      `json:"timestamp"`
	Params    generateParams `json:"params"`
}

type generateParams struct {
	MainKeywords      string   `json:"mainKeywords"`
	SecondaryKeywords string   `json:"secondaryKeywords"`
	Questions         string   `json:"questions,omitempty"`
	ContentTypes      []string `json:"contentTypes"`
	Language          string   `json:"language"`
}

// RegisterRoutes registers the generation route on an authenticated group.
func (h *ContentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/generate", h.Generate)
}

// Generate produces landing-page content from keywords.
// @Summary Generate content
// @Description Build the generation prompt, call the AI endpoint and return the (best-effort parsed) result
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateRequest true "Generation parameters"
// @Success 200 {object} generateResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /generate [post]
func (h *ContentHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.service.Generate(c.Request().Context(), service.GenerateInput{
		MainKeywords:        req.MainKeywords,
		SecondaryKeywords:   req.SecondaryKeywords,
		Questions:           req.Questions,
		Language:            req.Language,
		Components:          req.Components,
		ConversationContext: req.ConversationContext,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMainKeywordsRequired), errors.Is(err, service.ErrSecondaryKeywordsRequired):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "mainKeywords and secondaryKeywords are required"})
		case errors.Is(err, service.ErrAIUnavailable):
			return c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "AI service unavailable",
				Message: "Could not connect to Blacklane AI endpoint",
			})
		default:
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "Content generation failed",
				Message: err.Error(),
			})
		}
	}

	language := req.Language
	if language == "" {
		language = service.DefaultLanguage
	}

	return c.JSON(http.StatusOK, generateResponse{
		Success: true,
		Message: "Content generated successfully",
		Data: generateData{
			Generated: result.Content.Value(),
			Usage:     result.Usage,
			Timestamp: result.Timestamp,
			Params: generateParams{
				MainKeywords:      req.MainKeywords,
				SecondaryKeywords: req.SecondaryKeywords,
				Questions:         req.Questions,
				ContentTypes:      result.ContentTypes,
				Language:          language,
			},
		},
	})
}
