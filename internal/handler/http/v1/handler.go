package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/config"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

type Handler struct {
	authService       service.AuthService
	incidentService   service.IncidentService
	assignmentService service.AssignmentService
	vehicleService    service.VehicleService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	authService service.AuthService,
	incidentService service.IncidentService,
	assignmentService service.AssignmentService,
	vehicleService service.VehicleService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:       authService,
		incidentService:   incidentService,
		assignmentService: assignmentService,
		vehicleService:    vehicleService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// bindAndValidate разбирает тело запроса и проверяет его валидатором.
// Возвращает false, если ответ об ошибке уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: err.Error()})
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} Envelope "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	respond(c, http.StatusOK, "ok", nil)
}
