package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlyfix/admin/internal/domain/car"
	"github.com/onlyfix/admin/internal/domain/problem"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/interfaces/http/middleware"
	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/utils"
	"github.com/onlyfix/admin/internal/shared/validation"
)

type Handler struct {
	store  *Store
	logger logger.Interface
}

func NewHandler(store *Store, logger logger.Interface) *Handler {
	return &Handler{store: store, logger: logger}
}

// bind decodes the JSON body and runs the request's validate tags.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Malformed JSON body.")
		return false
	}
	if err := validation.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}

// --- auth ---

func (h *Handler) Login(c *gin.Context) {
	var req user.LoginRequest
	if !bind(c, &req) {
		return
	}

	u, token, ok := h.store.Authenticate(req.Email, req.Password)
	if !ok {
		h.logger.Infow("login rejected", "email", req.Email)
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}
	utils.BareResponse(c, http.StatusOK, user.LoginResponse{Message: "Login successful", User: u, Token: token})
}

func (h *Handler) Logout(c *gin.Context) {
	h.store.RevokeToken(c.GetString(middleware.ContextKeyToken))
	utils.MessageResponse(c, http.StatusOK, "Logged out successfully")
}

func (h *Handler) CurrentUser(c *gin.Context) {
	u, err := h.store.GetUser(c.GetInt(middleware.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.BareResponse(c, http.StatusOK, u)
}

func (h *Handler) Health(c *gin.Context) {
	utils.BareResponse(c, http.StatusOK, gin.H{"status": "ok", "version": APIVersion})
}

// --- users ---

func (h *Handler) ListUsers(c *gin.Context) {
	filter := user.Filter{Role: c.Query("role"), Search: c.Query("search")}
	utils.ListResponse(c, h.store.ListUsers(utils.ParsePage(c), filter))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	u, err := h.store.GetUser(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req user.CreateRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.store.CreateUser(req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusCreated, u)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req user.UpdateRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.store.UpdateUser(id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, u)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.store.DeleteUser(id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "User deleted successfully")
}

// --- cars ---

func (h *Handler) ListCars(c *gin.Context) {
	filter := car.Filter{UserID: utils.QueryIntPtr(c, "user_id"), Search: c.Query("search")}
	utils.ListResponse(c, h.store.ListCars(utils.ParsePage(c), filter))
}

func (h *Handler) GetCar(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Car")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	found, err := h.store.GetCar(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, found)
}

// CreateCar answers with the bare car, unlike users and tickets.
func (h *Handler) CreateCar(c *gin.Context) {
	var req car.CreateRequest
	if !bind(c, &req) {
		return
	}
	created, err := h.store.CreateCar(req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.BareResponse(c, http.StatusCreated, created)
}

func (h *Handler) UpdateCar(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Car")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req car.UpdateRequest
	if !bind(c, &req) {
		return
	}
	updated, err := h.store.UpdateCar(id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, updated)
}

func (h *Handler) DeleteCar(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Car")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.store.DeleteCar(id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Car deleted successfully")
}

// --- problems ---

func (h *Handler) ListProblems(c *gin.Context) {
	filter := problem.Filter{
		Category: c.Query("category"),
		IsActive: utils.QueryBoolPtr(c, "is_active"),
		Search:   c.Query("search"),
	}
	utils.ListResponse(c, h.store.ListProblems(utils.ParsePage(c), filter))
}

func (h *Handler) GetProblem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p, err := h.store.GetProblem(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, p)
}

func (h *Handler) CreateProblem(c *gin.Context) {
	var req problem.CreateRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.store.CreateProblem(req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.BareResponse(c, http.StatusCreated, p)
}

func (h *Handler) UpdateProblem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req problem.UpdateRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.store.UpdateProblem(id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, p)
}

func (h *Handler) DeleteProblem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.store.DeleteProblem(id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Problem deleted successfully")
}

func (h *Handler) ProblemStatistics(c *gin.Context) {
	utils.DataResponse(c, http.StatusOK, h.store.ProblemStatistics())
}

// --- tickets ---

func (h *Handler) ListTickets(c *gin.Context) {
	filter := ticket.Filter{
		Status:     vo.TicketStatus(c.Query("status")),
		Priority:   vo.Priority(c.Query("priority")),
		MechanicID: utils.QueryIntPtr(c, "mechanic_id"),
		UserID:     utils.QueryIntPtr(c, "user_id"),
		CarID:      utils.QueryIntPtr(c, "car_id"),
	}
	utils.ListResponse(c, h.store.ListTickets(utils.ParsePage(c), filter))
}

func (h *Handler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	t, err := h.store.GetTicket(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, t)
}

func (h *Handler) CreateTicket(c *gin.Context) {
	var req ticket.CreateRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.store.CreateTicket(req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusCreated, t)
}

func (h *Handler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req ticket.UpdateRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.store.UpdateTicket(id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DataResponse(c, http.StatusOK, t)
}

func (h *Handler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.store.DeleteTicket(id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Ticket deleted successfully")
}

func (h *Handler) TicketStatistics(c *gin.Context) {
	utils.DataResponse(c, http.StatusOK, h.store.TicketStatistics())
}

// Transition returns a handler for one workflow action.
func (h *Handler) Transition(action vo.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", "Ticket")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		t, err := h.store.Transition(id, action, c.GetInt(middleware.ContextKeyUserID))
		if err != nil {
			h.logger.Infow("ticket transition rejected", "ticket_id", id, "action", action, "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.DataResponse(c, http.StatusOK, t)
	}
}
