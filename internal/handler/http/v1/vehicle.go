package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

// @Summary Register a new vehicle
// @Description Register a vehicle in the caller institution's fleet. The vehicle starts available. Requires institution role.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body RegisterVehicleRequest true "Vehicle registration request"
// @Success 201 {object} Envelope{data=VehicleResponse}
// @Failure 400 {object} Envelope "Invalid request body or validation error"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 409 {object} Envelope "Driver already has a vehicle"
// @Router /institutions/vehicles [post]
func (h *Handler) registerVehicle(c *gin.Context) {
	var input RegisterVehicleRequest
	log := h.logger.WithField("method", "registerVehicle")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	vehicle, err := h.vehicleService.Register(c.Request.Context(), callerID(c), &service.RegisterVehicleInput{
		DriverID:    input.DriverID,
		Name:        input.Name,
		Description: input.Description,
		Picture:     input.Picture,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusCreated, "vehicle registered", ModelToVehicleResponse(vehicle))
}

// @Summary List institution vehicles
// @Description List vehicles of the caller's institution, optionally filtered by availability. Requires institution role.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ready query bool false "Availability filter"
// @Success 200 {object} Envelope{data=[]VehicleResponse}
// @Failure 400 {object} Envelope "Invalid availability filter"
// @Failure 401 {object} Envelope "Unauthorized"
// @Router /institutions/vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	log := h.logger.WithField("method", "listVehicles")

	var ready *bool
	if raw := c.Query("ready"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: "invalid ready filter"})
			return
		}
		ready = &value
	}

	vehicles, err := h.vehicleService.ListForInstitution(c.Request.Context(), callerID(c), ready)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "vehicles listed", ModelsToVehicleResponses(vehicles))
}
