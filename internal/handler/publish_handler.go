package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
)

type PublishHandler struct {
	service service.PublishService
}

func NewPublishHandler(service service.PublishService) *PublishHandler {
	return &PublishHandler{service: service}
}

type publishRequest struct {
	GeneratedContent map[string]any `json:"generatedContent"`
	ReleaseTitle     string         `json:"releaseTitle"`
}

type publishResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    publishData `json:"data"`
}

type publishData struct {
	ReleaseID       string    `json:"releaseId"`
	ReleaseTitle    string    `json:"releaseTitle"`
	PageID          string    `json:"pageId"`
	TotalComponents int       `json:"totalComponents"`
	ContentfulURL   string    `json:"contentfulUrl,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// RegisterRoutes registers the publish route on an authenticated group.
func (h *PublishHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/publish", h.Publish)
}

// Publish pushes reviewed content into Contentful as a draft release.
// @Summary Publish content
// @Description Create draft entries and a release in Contentful for the reviewed generated content
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body publishRequest true "Content and release title"
// @Success 200 {object} publishResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /publish [post]
func (h *PublishHandler) Publish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.service.Publish(c.Request().Context(), service.PublishInput{
		GeneratedContent: req.GeneratedContent,
		ReleaseTitle:     req.ReleaseTitle,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentRequired), errors.Is(err, service.ErrReleaseTitleRequired):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "generatedContent and releaseTitle are required"})
		case errors.Is(err, service.ErrCMSNotConfigured):
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Contentful not configured"})
		case errors.Is(err, service.ErrPublishFailed):
			return c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "Publishing failed",
				Message: "Failed to create page or release in Contentful",
			})
		default:
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "Publishing failed",
				Message: err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, publishResponse{
		Success: true,
		Message: "Content published successfully to Contentful",
		Data: publishData{
			ReleaseID:       result.ReleaseID,
			ReleaseTitle:    result.ReleaseTitle,
			PageID:          result.PageID,
			TotalComponents: result.TotalComponents,
			ContentfulURL:   result.ContentfulURL,
			Timestamp:       result.Timestamp,
		},
	})
}
