package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/sponsorship-backend/internal/config"
	"github.com/ignatzorin/sponsorship-backend/internal/http/middleware"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/handler"
)

func SetupRouter(
	cfg *config.Config,
	proposalHandler *handler.ProposalHandler,
	sponsorHandler *handler.SponsorHandler,
	trackingHandler *handler.TrackingHandler,
	dashboardHandler *handler.DashboardHandler,
	outreachHandler *handler.OutreachHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))

	proposals := api.Group("/proposals")
	{
		proposals.POST("/generate", proposalHandler.GenerateProposal)
		proposals.POST("/export/pdf", proposalHandler.ExportProposal)
		proposals.GET("/:id", proposalHandler.GetProposal)
	}

	sponsors := api.Group("/sponsors")
	{
		sponsors.POST("/find", sponsorHandler.FindSponsors)
		sponsors.POST("/create", sponsorHandler.CreateSponsor)
		sponsors.GET("", sponsorHandler.ListSponsors)
		sponsors.GET("/:id", sponsorHandler.GetSponsor)
		sponsors.POST("/status", sponsorHandler.UpdateStatus)
		sponsors.POST("/note", sponsorHandler.AddNote)

		sponsors.POST("/interaction", trackingHandler.LogInteraction)
		sponsors.GET("/:id/interactions", trackingHandler.ListInteractions)
		sponsors.POST("/followup", trackingHandler.ScheduleFollowUp)
	}

	api.GET("/dashboard", dashboardHandler.Overview)
	api.POST("/outreach/email", outreachHandler.ComposeEmail)

	return r
}
