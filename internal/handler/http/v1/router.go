package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
	api.GET("/system/health", h.healthCheck)

	// Все остальные маршруты требуют токен
	authed := api.Group("", JWTAuthMiddleware(h.cfg, h.logger))

	// Подача и просмотр заявок жителями
	authed.POST("/institutions/:id/incidents", RequireRole(models.RoleResident), h.reportIncident)
	authed.GET("/incidents/residents", RequireRole(models.RoleResident), h.listResidentIncidents)

	// Управление парком машин учреждения
	vehicles := authed.Group("/institutions/vehicles", RequireRole(models.RoleInstitution))
	{
		vehicles.GET("", h.listVehicles)
		vehicles.POST("", h.registerVehicle)
	}

	// Жизненный цикл инцидента со стороны учреждения
	institutionIncidents := authed.Group("/incidents/institutions", RequireRole(models.RoleInstitution))
	{
		institutionIncidents.GET("", h.listInstitutionIncidents)
		institutionIncidents.GET("/:id", h.getInstitutionIncident)
		institutionIncidents.PUT("/:id/handle", h.dispatchIncident)
		institutionIncidents.PUT("/:id/reject", h.rejectIncident)
		institutionIncidents.PUT("/:id/complete", h.finalizeIncident)
	}

	// Действия водителя над назначением
	driverIncidents := authed.Group("/incidents/vehicles", RequireRole(models.RoleDriver))
	{
		driverIncidents.GET("", h.listDriverIncidents)
		driverIncidents.GET("/:id", h.getDriverIncident)
		driverIncidents.PUT("/:id/arrive", h.arriveAssignment)
		driverIncidents.PUT("/:id/complete", h.completeAssignment)
	}
}
