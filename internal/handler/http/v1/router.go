package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/election_monitoring/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	auth := protected.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.session)
	}

	users := protected.Group("/users", h.requireRole(models.RoleAdmin))
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}

	incidents := protected.Group("/incidents")
	{
		writers := h.requireRole(models.RoleObserver, models.RoleAdmin)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("", writers, h.createIncident)
		incidents.PUT("/:id", writers, h.updateIncident)
		incidents.DELETE("/:id", writers, h.deleteIncident)
	}

	fraud := protected.Group("/fraud-reports")
	{
		reviewers := h.requireRole(models.RoleCitizen, models.RoleAdmin)
		fraud.GET("", h.listFraudReports)
		fraud.GET("/:id", h.getFraudReport)
		fraud.POST("", h.requireRole(models.RoleCitizen), h.createFraudReport)
		fraud.PUT("/:id", reviewers, h.updateFraudReport)
		fraud.DELETE("/:id", reviewers, h.deleteFraudReport)
	}

	analyst := protected.Group("/analyst-reports")
	{
		writers := h.requireRole(models.RoleAnalyst)
		analyst.GET("", h.listAnalystReports)
		analyst.GET("/:id", h.getAnalystReport)
		analyst.POST("", writers, h.createAnalystReport)
		analyst.PUT("/:id", writers, h.updateAnalystReport)
		analyst.DELETE("/:id", writers, h.deleteAnalystReport)
	}

	results := protected.Group("/election-results")
	{
		admin := h.requireRole(models.RoleAdmin)
		results.GET("", h.listElectionResults)
		results.GET("/:id", h.getElectionResult)
		results.POST("", admin, h.createElectionResult)
		results.PUT("/:id", admin, h.updateElectionResult)
		results.DELETE("/:id", admin, h.deleteElectionResult)
	}

	protected.GET("/stats", h.getStats)

	board := protected.Group("/dashboard")
	{
		board.GET("/votes", h.voteSummary)
		board.GET("/constituencies", h.constituencies)
		board.GET("/booths", h.booths)
		board.GET("/incidents", h.incidentStats)
		board.GET("/fraud", h.fraudStats)
	}
}

func (h *Handler) requireRole(roles ...models.Role) gin.HandlerFunc {
	return RequireRole(h.store, h.logger, roles...)
}
