package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lunchday/backend/internal/models"
	"go.uber.org/zap"
)

// MealService is the interface that wraps methods for meal catalog business logic
type MealService interface {
	// Method ListAvailable returns the available meals, optionally filtered by
	// calendar date, newest date first.
	ListAvailable(ctx context.Context, date string) ([]models.Meal, error)
	// Method GetByID returns one meal by ID.
	GetByID(ctx context.Context, id int) (*models.Meal, error)
	// Method Create adds a meal to the catalog and returns its generated ID.
	Create(ctx context.Context, req *models.CreateMealRequest) (int, error)
	// Method Update overwrites a meal row.
	Update(ctx context.Context, id int, req *models.UpdateMealRequest) error
	// Method Delete removes a meal from the catalog.
	Delete(ctx context.Context, id int) error
}

// MealHandler handles meal catalog HTTP requests
type MealHandler struct {
	BaseHandler
	mealService MealService
}

// NewMealHandler creates a new meal handler
func NewMealHandler(mealService MealService, logger *zap.Logger) *MealHandler {
	return &MealHandler{
		BaseHandler: BaseHandler{Logger: logger},
		mealService: mealService,
	}
}

// RegisterRoutes registers all meal handler routes. Listing and lookup are
// public; mutations are admin-only.
// Note: This assumes the router is already scoped to /api
func (h *MealHandler) RegisterRoutes(r chi.Router, authenticate, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/meals", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireAdmin)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List handles GET /meals
// @Summary List available meals
// @Description List available meals ordered by date descending, optionally filtered by date. A filter matching no meals yields an empty list.
// @Tags meals
// @Produce json
// @Param date query string false "Calendar date filter (YYYY-MM-DD)"
// @Success 200 {array} models.Meal "List of meals"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /meals [get]
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	meals, err := h.mealService.ListAvailable(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	if meals == nil {
		meals = []models.Meal{}
	}
	h.RespondJSON(w, http.StatusOK, meals)
}

// GetByID handles GET /meals/{id}
// @Summary Get meal by ID
// @Description Get one meal by its ID, regardless of availability
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} models.Meal "Meal"
// @Failure 400 {object} map[string]string "Invalid meal ID"
// @Failure 404 {object} map[string]string "Meal not found"
// @Router /meals/{id} [get]
func (h *MealHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid meal ID")
		return
	}

	meal, err := h.mealService.GetByID(r.Context(), id)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, meal)
}

// Create handles POST /meals
// @Summary Create a meal
// @Description Create a new daily meal (admin only)
// @Tags meals
// @Accept json
// @Produce json
// @Param request body models.CreateMealRequest true "Meal fields"
// @Success 201 {object} map[string]any "Meal created successfully"
// @Failure 400 {object} map[string]string "Missing name, price or date"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Router /meals [post]
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mealID, err := h.mealService.Create(r.Context(), &req)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "meal created successfully",
		"mealId":  mealID,
	})
}

// Update handles PUT /meals/{id}
// @Summary Update a meal
// @Description Overwrite a meal's fields (admin only). An omitted "available" field re-enables the meal.
// @Tags meals
// @Accept json
// @Produce json
// @Param id path int true "Meal ID"
// @Param request body models.UpdateMealRequest true "Meal fields"
// @Success 200 {object} map[string]string "Meal updated successfully"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 404 {object} map[string]string "Meal not found"
// @Router /meals/{id} [put]
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid meal ID")
		return
	}

	var req models.UpdateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.mealService.Update(r.Context(), id, &req); err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "meal updated successfully"})
}

// Delete handles DELETE /meals/{id}
// @Summary Delete a meal
// @Description Remove a meal from the catalog (admin only). Orders and ratings referencing it are kept.
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]string "Meal deleted successfully"
// @Failure 404 {object} map[string]string "Meal not found"
// @Router /meals/{id} [delete]
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid meal ID")
		return
	}

	if err := h.mealService.Delete(r.Context(), id); err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "meal deleted successfully"})
}
