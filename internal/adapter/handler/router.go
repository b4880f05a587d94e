package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/live"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	sessionHandler    *Session
	feedbackHandler   *Feedback
	transcriptHandler *Transcript
	liveHandler       *Live
	liveRegistry      *live.Registry
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	sessionHandler *Session,
	feedbackHandler *Feedback,
	transcriptHandler *Transcript,
	liveHandler *Live,
	liveRegistry *live.Registry,
) *Router {
	return &Router{
		cfg:               cfg,
		sessionHandler:    sessionHandler,
		feedbackHandler:   feedbackHandler,
		transcriptHandler: transcriptHandler,
		liveHandler:       liveHandler,
		liveRegistry:      liveRegistry,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupSessionRoutes(api)
	rt.setupFeedbackRoutes(api)
	rt.setupTranscriptRoutes(api)
	rt.setupLiveRoutes(api)
}

func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessionGroup := g.Group("/session")
	sessionGroup.POST("/ephemeral-key", rt.sessionHandler.CreateEphemeralKey)
}

func (rt *Router) setupFeedbackRoutes(g *echo.Group) {
	feedbackGroup := g.Group("/feedback")
	feedbackGroup.POST("/analyze", rt.feedbackHandler.Analyze)
}

func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcriptGroup := g.Group("/transcript")
	transcriptGroup.POST("/group", rt.transcriptHandler.Group)
	transcriptGroup.POST("/render", rt.transcriptHandler.Render)
}

func (rt *Router) setupLiveRoutes(g *echo.Group) {
	liveGroup := g.Group("/live")
	requireSession := middleware.RequireLiveSession(rt.liveRegistry)

	liveGroup.POST("", rt.liveHandler.Create)
	liveGroup.GET("/:id", rt.liveHandler.Stream)
	liveGroup.GET("/:id/blocks", rt.liveHandler.Blocks, requireSession)
	liveGroup.DELETE("/:id", rt.liveHandler.End)
}
