package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mrodgar/gymrat/internal/api/middleware"
	"github.com/mrodgar/gymrat/internal/api/request"
	"github.com/mrodgar/gymrat/internal/api/response"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/services/catalog"
)

// RoutineHandler handles routine endpoints. Every operation is scoped
// to the authenticated user's own routines.
type RoutineHandler struct {
	catalogService *catalog.Service
}

// NewRoutineHandler creates a new routine handler
func NewRoutineHandler(catalogService *catalog.Service) *RoutineHandler {
	return &RoutineHandler{
		catalogService: catalogService,
	}
}

func decodeRoutineParams(w http.ResponseWriter, r *http.Request) (catalog.RoutineParams, bool) {
	var req request.RoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return catalog.RoutineParams{}, false
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return catalog.RoutineParams{}, false
	}

	exerciseIDs := make([]model.ExerciseID, len(req.ExerciseIDs))
	for i, id := range req.ExerciseIDs {
		exerciseIDs[i] = model.ExerciseID(id)
	}

	return catalog.RoutineParams{
		Name:        req.Name,
		ExerciseIDs: exerciseIDs,
	}, true
}

// List handles GET /api/v1/routines
func (h *RoutineHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	routines, err := h.catalogService.ListRoutines(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoutinesFromModel(routines))
}

// Get handles GET /api/v1/routines/{id}
func (h *RoutineHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.RoutineID(mux.Vars(r)["id"])

	routine, err := h.catalogService.GetRoutine(r.Context(), id, user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoutineFromModel(routine))
}

// Create handles POST /api/v1/routines
func (h *RoutineHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	params, ok := decodeRoutineParams(w, r)
	if !ok {
		return
	}

	routine, err := h.catalogService.CreateRoutine(r.Context(), user.ID, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoutineFromModel(routine))
}

// Update handles PUT /api/v1/routines/{id}
func (h *RoutineHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.RoutineID(mux.Vars(r)["id"])

	params, ok := decodeRoutineParams(w, r)
	if !ok {
		return
	}

	routine, err := h.catalogService.UpdateRoutine(r.Context(), id, user.ID, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoutineFromModel(routine))
}

// Delete handles DELETE /api/v1/routines/{id}
func (h *RoutineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.RoutineID(mux.Vars(r)["id"])

	if err := h.catalogService.DeleteRoutine(r.Context(), id, user.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
