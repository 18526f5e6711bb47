package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/election_monitoring/internal/dashboard"
)

// @Summary List election results
// @Tags ElectionResults
// @Produce json
// @Success 200 {object} Response{data=[]models.ElectionResult}
// @Router /election-results [get]
func (h *Handler) listElectionResults(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.store.ElectionResults()})
}

// @Summary Get election result by ID
// @Tags ElectionResults
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} Response{data=models.ElectionResult}
// @Failure 404 {object} Response
// @Router /election-results/{id} [get]
func (h *Handler) getElectionResult(c *gin.Context) {
	item, ok := h.store.ElectionResult(c.Param("id"))
	if !ok {
		notFound(c, "election result")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: item})
}

// @Summary Add a booth result
// @Description votes and totalVotes accept numbers or numeric strings.
// @Tags ElectionResults
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param result body ElectionResultRequest true "Booth result"
// @Success 201 {object} Response{data=models.ElectionResult}
// @Failure 400 {object} Response
// @Router /election-results [post]
func (h *Handler) createElectionResult(c *gin.Context) {
	var input ElectionResultRequest
	log := h.logger.WithField("method", "createElectionResult")
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.CreateElectionResult(c.Request.Context(), electionResultToInput(input))
	respond(c, http.StatusCreated, res, item)
}

// @Summary Update a booth result
// @Tags ElectionResults
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Result ID"
// @Param result body ElectionResultRequest true "Booth result"
// @Success 200 {object} Response{data=models.ElectionResult}
// @Failure 400 {object} Response
// @Router /election-results/{id} [put]
func (h *Handler) updateElectionResult(c *gin.Context) {
	id := c.Param("id")
	var input ElectionResultRequest
	log := h.logger.WithField("method", "updateElectionResult").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	item, res := h.store.UpdateElectionResult(c.Request.Context(), id, electionResultToInput(input))
	respond(c, http.StatusOK, res, item)
}

// @Summary Delete a booth result
// @Tags ElectionResults
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Result ID"
// @Success 200 {object} Response
// @Router /election-results/{id} [delete]
func (h *Handler) deleteElectionResult(c *gin.Context) {
	respond(c, http.StatusOK, h.store.DeleteElectionResult(c.Request.Context(), c.Param("id")), nil)
}

// @Summary Vote counting summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Response{data=dashboard.VoteSummary}
// @Router /dashboard/votes [get]
func (h *Handler) voteSummary(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: dashboard.SummarizeVotes(h.store.ElectionResults())})
}

// @Summary Constituency breakdown
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Response{data=[]dashboard.ConstituencyBar}
// @Router /dashboard/constituencies [get]
func (h *Handler) constituencies(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: dashboard.ConstituencyBreakdown(h.store.ElectionResults())})
}

// @Summary Booth breakdown
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Response{data=[]dashboard.BoothBar}
// @Router /dashboard/booths [get]
func (h *Handler) booths(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: dashboard.BoothBreakdown(h.store.ElectionResults())})
}

// @Summary Incident tallies
// @Tags Dashboard
// @Produce json
// @Param mine query bool false "Only incidents of the session user"
// @Success 200 {object} Response{data=IncidentStatsResponse}
// @Router /dashboard/incidents [get]
func (h *Handler) incidentStats(c *gin.Context) {
	items := h.store.Incidents()
	if c.Query("mine") == "true" {
		items = dashboard.IncidentsOwnedBy(items, h.sessionID())
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: IncidentStatsResponse{
		Status:   dashboard.CountIncidentStatuses(items),
		Severity: dashboard.CountSeverities(items),
		HighRisk: dashboard.HighSeverityCount(items),
		Total:    len(items),
	}})
}

// @Summary Fraud report tallies
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Response{data=dashboard.FraudStatusCounts}
// @Router /dashboard/fraud [get]
func (h *Handler) fraudStats(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: dashboard.CountFraudStatuses(h.store.FraudReports())})
}
