package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mrodgar/gymrat/internal/api/request"
	"github.com/mrodgar/gymrat/internal/api/response"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/services/catalog"
)

// ExerciseHandler handles exercise catalog endpoints. Listing is
// public; mutation routes are mounted behind the admin middleware.
type ExerciseHandler struct {
	catalogService *catalog.Service
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(catalogService *catalog.Service) *ExerciseHandler {
	return &ExerciseHandler{
		catalogService: catalogService,
	}
}

func decodeExerciseParams(w http.ResponseWriter, r *http.Request) (catalog.ExerciseParams, bool) {
	var req request.ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return catalog.ExerciseParams{}, false
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return catalog.ExerciseParams{}, false
	}

	return catalog.ExerciseParams{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		StrengthImpact:    req.StrengthImpact,
		EnduranceImpact:   req.EnduranceImpact,
		FlexibilityImpact: req.FlexibilityImpact,
	}, true
}

// List handles GET /api/v1/exercises
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.catalogService.ListExercises(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExercisesFromModel(exercises))
}

// Get handles GET /api/v1/exercises/{id}
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.ExerciseID(mux.Vars(r)["id"])

	exercise, err := h.catalogService.GetExercise(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExerciseFromModel(exercise))
}

// Create handles POST /api/v1/exercises
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeExerciseParams(w, r)
	if !ok {
		return
	}

	exercise, err := h.catalogService.CreateExercise(r.Context(), params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExerciseFromModel(exercise))
}

// Update handles PUT /api/v1/exercises/{id}
func (h *ExerciseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.ExerciseID(mux.Vars(r)["id"])

	params, ok := decodeExerciseParams(w, r)
	if !ok {
		return
	}

	exercise, err := h.catalogService.UpdateExercise(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExerciseFromModel(exercise))
}

// Delete handles DELETE /api/v1/exercises/{id}
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ExerciseID(mux.Vars(r)["id"])

	if err := h.catalogService.DeleteExercise(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
