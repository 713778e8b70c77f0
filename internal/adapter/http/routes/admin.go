package routes

import (
	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/handlers"
	"gestorpro/internal/adapter/http/middleware"
	"gestorpro/internal/domain/rbac"
)

const (
	PathAI           = "/ai"
	PathDashboard    = "/dashboard"
	PathReports      = "/reports"
	PathLogs         = "/logs"
	PathTeam         = "/team"
	PathSettings     = "/settings"
	PathIntegrations = "/integrations"
)

func addAIRoutes(rg *gin.RouterGroup, h *handlers.AIHandler) {
	ai := rg.Group(PathAI, middleware.Require(rbac.ActionAI))
	{
		ai.POST("/insights", h.Insights)
		ai.POST("/maintenance-triage", h.TriageMaintenance)
		ai.POST("/copilot", h.Copilot)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := middleware.Require(rbac.ActionReports)
	rg.GET(PathDashboard, reports, h.Dashboard)
	rg.GET(PathReports+"/financial", reports, h.Financial)
	rg.GET(PathLogs, middleware.Require(rbac.ActionAudit), h.ActivityLog)
}

func addTeamRoutes(rg *gin.RouterGroup, h *handlers.TeamHandler) {
	team := rg.Group(PathTeam, middleware.Require(rbac.ActionTeam))
	{
		team.GET("", h.List)
		team.POST("", h.Create)
		team.PATCH("/:uid/role", h.UpdateRole)
		team.DELETE("/:uid", h.Delete)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings, middleware.Require(rbac.ActionSettings))
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

func addIntegrationRoutes(rg *gin.RouterGroup, h *handlers.IntegrationHandler) {
	integrations := rg.Group(PathIntegrations, middleware.Require(rbac.ActionWrite))
	{
		integrations.POST("/dni", h.LookupDNI)
		integrations.POST("/whatsapp", h.SendWhatsApp)
	}
}
