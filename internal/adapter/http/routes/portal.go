package routes

import (
	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/handlers"
	"gestorpro/internal/adapter/http/middleware"
	"gestorpro/internal/domain/rbac"
)

const PathPortal = "/portal"

func addPortalRoutes(rg *gin.RouterGroup, portal *handlers.PortalHandler, docs *handlers.DocumentHandler, ai *handlers.AIHandler) {
	p := rg.Group(PathPortal, middleware.Require(rbac.ActionPortal))
	{
		p.GET("", portal.Overview)
		p.POST("/maintenance", portal.ReportMaintenance)
		p.POST("/chat", ai.TenantChat)
		p.POST("/receipts", docs.UploadOwnReceipt)
		p.POST("/payments/:id/checkout", portal.Checkout)
	}
}
