package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/blacklane/ai-content-generator-for-contentful/docs"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/handler"
	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
)

func NewRouter(
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	contentHandler *handler.ContentHandler,
	publishHandler *handler.PublishHandler,
	healthHandler *handler.HealthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	authHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)

	// Routes requiring a bearer token
	protected := api.Group("", JWTAuthMiddleware(authService))
	contentHandler.RegisterRoutes(protected)
	publishHandler.RegisterRoutes(protected)

	return e
}
