package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/election_monitoring/internal/config"
	"github.com/shenikar/election_monitoring/internal/dashboard"
	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/shenikar/election_monitoring/internal/store"
	"github.com/sirupsen/logrus"
)

// Store определяет операции хранилища, которые использует API
type Store interface {
	SessionReader
	Register(ctx context.Context, in store.UserInput) (*models.User, store.Result)
	Login(ctx context.Context, email, password string) (*models.User, store.Result)
	Logout(ctx context.Context) store.Result

	Users() []models.User
	User(id string) (*models.User, bool)
	CreateUser(ctx context.Context, in store.UserInput) (*models.User, store.Result)
	UpdateUser(ctx context.Context, id string, in store.UserUpdate) (*models.User, store.Result)
	DeleteUser(ctx context.Context, id string) store.Result

	Incidents() []models.Incident
	Incident(id string) (*models.Incident, bool)
	CreateIncident(ctx context.Context, in store.IncidentInput) (*models.Incident, store.Result)
	UpdateIncident(ctx context.Context, id string, patch store.IncidentPatch) (*models.Incident, store.Result)
	DeleteIncident(ctx context.Context, id string) store.Result

	FraudReports() []models.FraudReport
	FraudReport(id string) (*models.FraudReport, bool)
	CreateFraudReport(ctx context.Context, in store.FraudReportInput) (*models.FraudReport, store.Result)
	UpdateFraudReport(ctx context.Context, id string, patch store.FraudReportPatch) (*models.FraudReport, store.Result)
	DeleteFraudReport(ctx context.Context, id string) store.Result

	AnalystReports() []models.AnalystReport
	AnalystReport(id string) (*models.AnalystReport, bool)
	CreateAnalystReport(ctx context.Context, in store.AnalystReportInput) (*models.AnalystReport, store.Result)
	UpdateAnalystReport(ctx context.Context, id string, in store.AnalystReportInput) (*models.AnalystReport, store.Result)
	DeleteAnalystReport(ctx context.Context, id string) store.Result

	ElectionResults() []models.ElectionResult
	ElectionResult(id string) (*models.ElectionResult, bool)
	CreateElectionResult(ctx context.Context, in store.ElectionResultInput) (*models.ElectionResult, store.Result)
	UpdateElectionResult(ctx context.Context, id string, in store.ElectionResultInput) (*models.ElectionResult, store.Result)
	DeleteElectionResult(ctx context.Context, id string) store.Result

	Summary() models.Summary
}

type Handler struct {
	store    Store
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(s Store, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		store:    s,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bind разбирает JSON и проверяет ограничения DTO; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, Response{Message: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, Response{Message: err.Error()})
		return false
	}
	return true
}

// respond переводит результат хранилища в HTTP-ответ
func respond(c *gin.Context, okStatus int, res store.Result, data any) {
	if !res.Success {
		c.JSON(statusFor(res.Err), Response{Success: false, Message: res.Message})
		return
	}
	c.JSON(okStatus, Response{Success: true, Message: res.Message, Data: data})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrSelfDelete):
		return http.StatusForbidden
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, Response{Message: what + " not found"})
}

// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} Response{data=UserResponse}
// @Failure 400 {object} Response "Missing fields"
// @Failure 409 {object} Response "Email already registered"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")
	if !h.bind(c, log, &input) {
		return
	}

	user, res := h.store.Register(c.Request.Context(), registerToInput(input))
	respond(c, http.StatusCreated, res, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Opens the portal session for the matching user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=UserResponse}
// @Failure 401 {object} Response "Invalid email or password"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")
	if !h.bind(c, log, &input) {
		return
	}

	user, res := h.store.Login(c.Request.Context(), input.Email, input.Password)
	respond(c, http.StatusOK, res, ModelToUserResponse(user))
}

// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} Response
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	respond(c, http.StatusOK, h.store.Logout(c.Request.Context()), nil)
}

// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} Response{data=UserResponse}
// @Failure 404 {object} Response "No active session"
// @Router /auth/session [get]
func (h *Handler) session(c *gin.Context) {
	user := h.store.CurrentUser()
	if user == nil {
		notFound(c, "session")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: ModelToUserResponse(user)})
}

// @Summary List users
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search in name, email, role"
// @Param role query string false "Role filter" default(all)
// @Success 200 {object} Response{data=[]UserResponse}
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users := dashboard.SearchUsers(h.store.Users(), c.Query("q"), c.DefaultQuery("role", dashboard.StatusAll))
	c.JSON(http.StatusOK, Response{Success: true, Data: ModelsToUserResponses(users)})
}

// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=UserResponse}
// @Failure 404 {object} Response
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	user, ok := h.store.User(c.Param("id"))
	if !ok {
		notFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: ModelToUserResponse(user)})
}

// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body RegisterRequest true "User"
// @Success 201 {object} Response{data=UserResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "createUser")
	if !h.bind(c, log, &input) {
		return
	}

	user, res := h.store.CreateUser(c.Request.Context(), registerToInput(input))
	respond(c, http.StatusCreated, res, ModelToUserResponse(user))
}

// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update"
// @Success 200 {object} Response{data=UserResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id := c.Param("id")
	var input UpdateUserRequest
	log := h.logger.WithField("method", "updateUser").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	user, res := h.store.UpdateUser(c.Request.Context(), id, updateUserToInput(input))
	respond(c, http.StatusOK, res, ModelToUserResponse(user))
}

// @Summary Delete a user
// @Description The active session's own account cannot be deleted.
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response "Cannot delete the active user"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	respond(c, http.StatusOK, h.store.DeleteUser(c.Request.Context(), c.Param("id")), nil)
}

// @Summary Collection counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Response{data=models.Summary}
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: h.store.Summary()})
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", CheckedAt: time.Now().UTC()})
}
