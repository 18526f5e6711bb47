package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/election_monitoring/internal/dashboard"
)

// @Summary List incidents
// @Description Newest first. mine=true limits to the session user's incidents.
// @Tags Incidents
// @Produce json
// @Param q query string false "Search in title, location, details"
// @Param status query string false "Status filter" default(all)
// @Param mine query bool false "Only incidents of the session user"
// @Success 200 {object} Response{data=[]models.Incident}
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	items := h.store.Incidents()
	if c.Query("mine") == "true" {
		items = dashboard.IncidentsOwnedBy(items, h.sessionID())
	}
	items = dashboard.SearchIncidents(items, c.Query("q"), c.DefaultQuery("status", dashboard.StatusAll))
	c.JSON(http.StatusOK, Response{Success: true, Data: items})
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} Response{data=models.Incident}
// @Failure 404 {object} Response
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	item, ok := h.store.Incident(c.Param("id"))
	if !ok {
		notFound(c, "incident")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: item})
}

// @Summary Log an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body IncidentRequest true "Incident"
// @Success 201 {object} Response{data=models.Incident}
// @Failure 400 {object} Response
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input IncidentRequest
	log := h.logger.WithField("method", "createIncident")
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.CreateIncident(c.Request.Context(), incidentToInput(input))
	respond(c, http.StatusCreated, res, item)
}

// @Summary Update an incident
// @Description Partial update; omitted fields keep their values.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body IncidentPatchRequest true "Changed fields"
// @Success 200 {object} Response{data=models.Incident}
// @Failure 400 {object} Response
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	var input IncidentPatchRequest
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.UpdateIncident(c.Request.Context(), id, incidentPatchToInput(input))
	respond(c, http.StatusOK, res, item)
}

// @Summary Delete an incident
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} Response
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	respond(c, http.StatusOK, h.store.DeleteIncident(c.Request.Context(), c.Param("id")), nil)
}

// @Summary List fraud reports
// @Tags FraudReports
// @Produce json
// @Param q query string false "Search in title, location, category, author"
// @Param status query string false "Status filter" default(all)
// @Param mine query bool false "Only reports of the session user"
// @Success 200 {object} Response{data=[]models.FraudReport}
// @Router /fraud-reports [get]
func (h *Handler) listFraudReports(c *gin.Context) {
	items := h.store.FraudReports()
	if c.Query("mine") == "true" {
		items = dashboard.FraudReportsOwnedBy(items, h.sessionID())
	}
	items = dashboard.SearchFraudReports(items, c.Query("q"), c.DefaultQuery("status", dashboard.StatusAll))
	c.JSON(http.StatusOK, Response{Success: true, Data: items})
}

// @Summary Get fraud report by ID
// @Tags FraudReports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=models.FraudReport}
// @Failure 404 {object} Response
// @Router /fraud-reports/{id} [get]
func (h *Handler) getFraudReport(c *gin.Context) {
	item, ok := h.store.FraudReport(c.Param("id"))
	if !ok {
		notFound(c, "fraud report")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: item})
}

// @Summary Submit a fraud report
// @Tags FraudReports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body FraudReportRequest true "Fraud report"
// @Success 201 {object} Response{data=models.FraudReport}
// @Failure 400 {object} Response
// @Router /fraud-reports [post]
func (h *Handler) createFraudReport(c *gin.Context) {
	var input FraudReportRequest
	log := h.logger.WithField("method", "createFraudReport")
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.CreateFraudReport(c.Request.Context(), fraudReportToInput(input))
	respond(c, http.StatusCreated, res, item)
}

// @Summary Update a fraud report
// @Description Partial update, e.g. a review status change.
// @Tags FraudReports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param report body FraudReportPatchRequest true "Changed fields"
// @Success 200 {object} Response{data=models.FraudReport}
// @Failure 400 {object} Response
// @Router /fraud-reports/{id} [put]
func (h *Handler) updateFraudReport(c *gin.Context) {
	id := c.Param("id")
	var input FraudReportPatchRequest
	log := h.logger.WithField("method", "updateFraudReport").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.UpdateFraudReport(c.Request.Context(), id, fraudPatchToInput(input))
	respond(c, http.StatusOK, res, item)
}

// @Summary Delete a fraud report
// @Tags FraudReports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} Response
// @Router /fraud-reports/{id} [delete]
func (h *Handler) deleteFraudReport(c *gin.Context) {
	respond(c, http.StatusOK, h.store.DeleteFraudReport(c.Request.Context(), c.Param("id")), nil)
}

// @Summary List analyst reports
// @Tags AnalystReports
// @Produce json
// @Param mine query bool false "Only reports of the session user"
// @Success 200 {object} Response{data=[]models.AnalystReport}
// @Router /analyst-reports [get]
func (h *Handler) listAnalystReports(c *gin.Context) {
	items := h.store.AnalystReports()
	if c.Query("mine") == "true" {
		items = dashboard.AnalystReportsOwnedBy(items, h.sessionID())
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: items})
}

// @Summary Get analyst report by ID
// @Tags AnalystReports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=models.AnalystReport}
// @Failure 404 {object} Response
// @Router /analyst-reports/{id} [get]
func (h *Handler) getAnalystReport(c *gin.Context) {
	item, ok := h.store.AnalystReport(c.Param("id"))
	if !ok {
		notFound(c, "analyst report")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: item})
}

// @Summary Create an analyst report
// @Tags AnalystReports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body AnalystReportRequest true "Analyst report"
// @Success 201 {object} Response{data=models.AnalystReport}
// @Failure 400 {object} Response
// @Router /analyst-reports [post]
func (h *Handler) createAnalystReport(c *gin.Context) {
	var input AnalystReportRequest
	log := h.logger.WithField("method", "createAnalystReport")
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.CreateAnalystReport(c.Request.Context(), analystReportToInput(input))
	respond(c, http.StatusCreated, res, item)
}

// @Summary Update an analyst report
// @Description All fields are required again, as on create.
// @Tags AnalystReports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param report body AnalystReportRequest true "Analyst report"
// @Success 200 {object} Response{data=models.AnalystReport}
// @Failure 400 {object} Response
// @Router /analyst-reports/{id} [put]
func (h *Handler) updateAnalystReport(c *gin.Context) {
	id := c.Param("id")
	var input AnalystReportRequest
	log := h.logger.WithField("method", "updateAnalystReport").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.UpdateAnalystReport(c.Request.Context(), id, analystReportToInput(input))
	respond(c, http.StatusOK, res, item)
}

// @Summary Delete an analyst report
// @Tags AnalystReports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} Response
// @Router /analyst-reports/{id} [delete]
func (h *Handler) deleteAnalystReport(c *gin.Context) {
	respond(c, http.StatusOK, h.store.DeleteAnalystReport(c.Request.Context(), c.Param("id")), nil)
}

func (h *Handler) sessionID() string {
	if user := h.store.CurrentUser(); user != nil {
		return user.ID
	}
	return ""
}
