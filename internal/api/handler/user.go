package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mrodgar/gymrat/internal/api/middleware"
	"github.com/mrodgar/gymrat/internal/api/request"
	"github.com/mrodgar/gymrat/internal/api/response"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/services/gym"
)

// UserHandler handles user progression endpoints: profile reads,
// training, resting, the accessory purchase, and the session log
type UserHandler struct {
	gymService *gym.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(gymService *gym.Service) *UserHandler {
	return &UserHandler{
		gymService: gymService,
	}
}

// pathUserID extracts the target user id from the route
func pathUserID(r *http.Request) model.UserID {
	return model.UserID(mux.Vars(r)["id"])
}

// requireOwner ensures the authenticated user is the target user.
// Admins do not bypass this: progression is always first-person.
func requireOwner(w http.ResponseWriter, r *http.Request) (model.UserID, bool) {
	id := pathUserID(r)
	user := middleware.MustGetUser(r.Context())
	if user.ID != id {
		WriteError(w, NewForbiddenError())
		return "", false
	}
	return id, true
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathUserID(r)
	caller := middleware.MustGetUser(r.Context())
	if caller.ID != id && caller.Role != model.RoleAdmin {
		WriteError(w, NewForbiddenError())
		return
	}

	user, err := h.gymService.GetUser(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Train handles POST /api/v1/users/{id}/train
func (h *UserHandler) Train(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req request.TrainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	stat, err := model.ParseStat(req.Stat)
	if err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.gymService.Train(r.Context(), id, stat, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Rest handles POST /api/v1/users/{id}/rest
func (h *UserHandler) Rest(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req request.RestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	user, err := h.gymService.Rest(r.Context(), id, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Purchase handles POST /api/v1/users/{id}/purchase
func (h *UserHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.AccessoryName == "" {
		WriteError(w, NewInvalidRequestError("accessory_name is required"))
		return
	}

	_, accessory, err := h.gymService.Purchase(r.Context(), id, req.AccessoryName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccessoryFromModel(accessory))
}

// ListSessions handles GET /api/v1/users/{id}/sessions
func (h *UserHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwner(w, r)
	if !ok {
		return
	}

	sessions, err := h.gymService.Sessions(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TrainingSessionsFromModel(sessions))
}

// CreateSession handles POST /api/v1/users/{id}/sessions
func (h *UserHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Description == "" {
		WriteError(w, NewInvalidRequestError("description is required"))
		return
	}

	session, err := h.gymService.Record(r.Context(), id, req.Description)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TrainingSessionFromModel(session))
}
