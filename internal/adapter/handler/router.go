package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avamus/visionboard/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	dashboardHandler *Dashboard
	chartsHandler    *Charts
	sessionHandler   *Session
	recordingHandler *Recording
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, dashboard *Dashboard, charts *Charts, session *Session, recording *Recording) *Router {
	return &Router{
		cfg:              cfg,
		dashboardHandler: dashboard,
		chartsHandler:    charts,
		sessionHandler:   session,
		recordingHandler: recording,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	rt.setupDashboardRoutes(api)
}

// setupDashboardRoutes configures the dashboard routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	dash := g.Group("/dashboard")

	dash.GET("", rt.dashboardHandler.ListCalls)
	dash.POST("", rt.dashboardHandler.AddCall)
	dash.PUT("", rt.dashboardHandler.UpdateCall)
	dash.DELETE("", rt.dashboardHandler.DeleteCall)

	dash.GET("/charts", rt.chartsHandler.GetCharts)
	dash.GET("/page", rt.chartsHandler.GetPage)
	dash.GET("/transcript", rt.chartsHandler.GetTranscript)

	if rt.recordingHandler != nil {
		dash.POST("/recordings", rt.recordingHandler.Upload)
	}

	sessions := dash.Group("/sessions")
	sessions.POST("", rt.sessionHandler.CreateSession)
	sessions.GET("/:id", rt.sessionHandler.GetState)
	sessions.DELETE("/:id", rt.sessionHandler.CloseSession)
	sessions.POST("/:id/open", rt.sessionHandler.OpenCall)
	sessions.POST("/:id/records/:recordId/toggle", rt.sessionHandler.ToggleExpanded)
	sessions.PUT("/:id/records/:recordId/notes", rt.sessionHandler.SetDraft)
	sessions.POST("/:id/records/:recordId/notes/save", rt.sessionHandler.SaveNotes)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
