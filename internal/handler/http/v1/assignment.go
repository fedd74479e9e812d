package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

// @Summary List incidents assigned to the driver's vehicle
// @Description List incidents with an assignment on the caller's vehicle, optionally filtered by assignment status. Requires driver role.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Assignment status filter" Enums(ON_ROUTE, ARRIVED, COMPLETED)
// @Success 200 {object} Envelope{data=[]IncidentResponse}
// @Failure 400 {object} Envelope "Unknown status"
// @Failure 401 {object} Envelope "Unauthorized"
// @Router /incidents/vehicles [get]
func (h *Handler) listDriverIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listDriverIncidents")
	status := models.AssignmentStatus(c.Query("status"))

	incidents, err := h.assignmentService.ListForDriver(c.Request.Context(), callerID(c), status)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incidents listed", ModelsToIncidentResponses(incidents))
}

// @Summary Get assigned incident detail
// @Description Get a single incident with an assignment on the caller's vehicle, including the reporting resident and all vehicle assignments. Requires driver role.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} Envelope{data=IncidentDetailResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "No assignment for this driver on the incident"
// @Router /incidents/vehicles/{id} [get]
func (h *Handler) getDriverIncident(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getDriverIncident").WithField("incident_id", incidentID)

	detail, err := h.assignmentService.GetForDriver(c.Request.Context(), callerID(c), incidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incident fetched", ModelToIncidentDetailResponse(detail))
}

// @Summary Mark arrival at the incident scene
// @Description Mark the caller's vehicle as arrived: ON_ROUTE -> ARRIVED. Requires driver role.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} Envelope{data=AssignmentResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "No ON_ROUTE assignment for this driver on the incident"
// @Router /incidents/vehicles/{id}/arrive [put]
func (h *Handler) arriveAssignment(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "arriveAssignment").WithField("incident_id", incidentID)

	assignment, err := h.assignmentService.Arrive(c.Request.Context(), callerID(c), incidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "vehicle arrived", ModelToAssignmentResponse(assignment))
}

// @Summary Mark the vehicle's work as completed
// @Description Mark the caller's vehicle assignment as completed: ARRIVED -> COMPLETED. Does not finalize the incident itself. Requires driver role.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} Envelope{data=AssignmentResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "No ARRIVED assignment for this driver on the incident"
// @Router /incidents/vehicles/{id}/complete [put]
func (h *Handler) completeAssignment(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "completeAssignment").WithField("incident_id", incidentID)

	assignment, err := h.assignmentService.Complete(c.Request.Context(), callerID(c), incidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "vehicle work completed", ModelToAssignmentResponse(assignment))
}
