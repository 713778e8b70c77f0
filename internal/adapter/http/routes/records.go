package routes

import (
	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/handlers"
	"gestorpro/internal/adapter/http/middleware"
	"gestorpro/internal/domain/rbac"
)

const (
	PathAuth          = "/auth"
	PathSession       = "/session"
	PathConfirmations = "/confirmations"
	PathRecords       = "/records"
	PathTenants       = "/tenants"
	PathPayments      = "/payments"
	PathExpenses      = "/expenses"
	PathTemplates     = "/templates"
	PathRentals       = "/rentals"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sess := rg.Group(PathSession)
	{
		sess.GET("/view", h.View)
		sess.GET("/toasts", h.Toasts)
		sess.GET("/events", h.Events)
	}
	rg.POST(PathConfirmations+"/:id", h.Answer)
}

func addRecordRoutes(rg *gin.RouterGroup, records *handlers.RecordHandler, docs *handlers.DocumentHandler) {
	read := middleware.Require(rbac.ActionRead)
	write := middleware.Require(rbac.ActionWrite)

	rec := rg.Group(PathRecords)
	{
		rec.GET("/:collection", read, records.List)
		rec.GET("/:collection/form", read, records.Form)
		rec.GET("/:collection/table", read, records.Table)
		rec.GET("/:collection/:id", read, records.Get)
		rec.POST("/:collection", write, records.Create)
		rec.PUT("/:collection/:id", write, records.Update)
		rec.DELETE("/:collection/:id", write, records.Delete)

		rec.GET("/:collection/:id/documents", read, docs.ListDocuments)
		rec.POST("/:collection/:id/documents", write, docs.UploadDocument)
		rec.DELETE("/:collection/:id/documents/:docId", write, docs.DeleteDocument)
	}

	tenants := rg.Group(PathTenants)
	{
		tenants.POST("/:id/access", write, records.CreateTenantAccess)
		tenants.GET("/:id/receipts", read, docs.ListReceipts)
		tenants.POST("/:id/receipts", write, docs.UploadReceipt)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, status *handlers.StatusHandler, docs *handlers.DocumentHandler, ai *handlers.AIHandler) {
	// Gestor marks payments as paid, Verificador verifies; the use case checks the step.
	advance := middleware.Require(rbac.ActionWrite, rbac.ActionVerify)
	rg.PATCH(PathPayments+"/:id/status", advance, status.AdvancePayment)
	rg.PATCH(PathExpenses+"/:id/status", advance, status.AdvanceExpense)

	rg.POST(PathTemplates+"/:id/draft", middleware.Require(rbac.ActionAI), ai.DraftContract)

	rentals := rg.Group(PathRentals)
	{
		rentals.GET("/:id/contracts", middleware.Require(rbac.ActionRead), docs.ListContracts)
		rentals.POST("/:id/contracts", middleware.Require(rbac.ActionWrite), docs.SaveContract)
		rentals.DELETE("/:id/contracts/:contractId", middleware.Require(rbac.ActionWrite), docs.DeleteContract)
	}
}
