package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: "invalid id"})
		return 0, false
	}
	return id, true
}

// @Summary Report a new incident
// @Description Report a new incident to an institution. The incident starts in status REPORTED. Requires resident role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} Envelope{data=IncidentResponse}
// @Failure 400 {object} Envelope "Invalid request body or validation error"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Institution not found"
// @Router /institutions/{id}/incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	institutionID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "reportIncident").WithField("institution_id", institutionID)

	var input ReportIncidentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, err := h.incidentService.Report(c.Request.Context(), callerID(c), institutionID, &service.ReportIncidentInput{
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Picture:     input.Picture,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusCreated, "incident reported", ModelToIncidentResponse(incident))
}

// @Summary List resident incidents
// @Description List incidents reported by the caller, optionally filtered by status. Requires resident role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Incident status filter" Enums(REPORTED, HANDLED, COMPLETED, REJECTED)
// @Success 200 {object} Envelope{data=[]IncidentResponse}
// @Failure 400 {object} Envelope "Unknown status"
// @Failure 401 {object} Envelope "Unauthorized"
// @Router /incidents/residents [get]
func (h *Handler) listResidentIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listResidentIncidents")
	status := models.IncidentStatus(c.Query("status"))

	incidents, err := h.incidentService.ListForResident(c.Request.Context(), callerID(c), status)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incidents listed", ModelsToIncidentResponses(incidents))
}

// @Summary List institution incidents
// @Description List incidents reported to the caller's institution, optionally filtered by status. Requires institution role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Incident status filter" Enums(REPORTED, HANDLED, COMPLETED, REJECTED)
// @Success 200 {object} Envelope{data=[]IncidentResponse}
// @Failure 400 {object} Envelope "Unknown status"
// @Failure 401 {object} Envelope "Unauthorized"
// @Router /incidents/institutions [get]
func (h *Handler) listInstitutionIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listInstitutionIncidents")
	status := models.IncidentStatus(c.Query("status"))

	incidents, err := h.incidentService.ListForInstitution(c.Request.Context(), callerID(c), status)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incidents listed", ModelsToIncidentResponses(incidents))
}

// @Summary Get incident detail
// @Description Get a single incident of the caller's institution with the reporting resident and vehicle assignments. Requires institution role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} Envelope{data=IncidentDetailResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Incident not found"
// @Router /incidents/institutions/{id} [get]
func (h *Handler) getInstitutionIncident(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getInstitutionIncident").WithField("incident_id", incidentID)

	detail, err := h.incidentService.GetForInstitution(c.Request.Context(), callerID(c), incidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incident fetched", ModelToIncidentDetailResponse(detail))
}

// @Summary Dispatch vehicles to an incident
// @Description Accept an incident and dispatch the listed vehicles: REPORTED -> HANDLED, one ON_ROUTE assignment per vehicle. Requires institution role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param dispatch body DispatchRequest true "Vehicle IDs to dispatch"
// @Success 200 {object} Envelope{data=DispatchResponse}
// @Failure 400 {object} Envelope "Empty or duplicate vehicle list"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Incident or vehicle not found"
// @Failure 409 {object} Envelope "Incident not in REPORTED status or vehicle already dispatched"
// @Router /incidents/institutions/{id}/handle [put]
func (h *Handler) dispatchIncident(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "dispatchIncident").WithField("incident_id", incidentID)

	var input DispatchRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, assignments, err := h.incidentService.Dispatch(c.Request.Context(), callerID(c), incidentID, input.VehicleIDs)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incident handled", DispatchResponse{
		Incident:    ModelToIncidentResponse(incident),
		Assignments: ModelsToAssignmentResponses(assignments),
	})
}

// @Summary Reject an incident
// @Description Reject a reported incident: REPORTED -> REJECTED (terminal). Requires institution role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} Envelope{data=IncidentResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Incident not found"
// @Failure 409 {object} Envelope "Incident not in REPORTED status"
// @Router /incidents/institutions/{id}/reject [put]
func (h *Handler) rejectIncident(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "rejectIncident").WithField("incident_id", incidentID)

	incident, err := h.incidentService.Reject(c.Request.Context(), callerID(c), incidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incident rejected", ModelToIncidentResponse(incident))
}

// @Summary Finalize an incident
// @Description Close an incident after all dispatched vehicles completed: HANDLED -> COMPLETED, vehicles become available again. Requires institution role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} Envelope{data=IncidentResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Incident not found"
// @Failure 409 {object} Envelope "Incident not in HANDLED status or vehicles still out"
// @Router /incidents/institutions/{id}/complete [put]
func (h *Handler) finalizeIncident(c *gin.Context) {
	incidentID, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "finalizeIncident").WithField("incident_id", incidentID)

	incident, err := h.incidentService.Finalize(c.Request.Context(), callerID(c), incidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "incident completed", ModelToIncidentResponse(incident))
}
