package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lunchday/backend/internal/auth"
	"github.com/lunchday/backend/internal/models"
	"go.uber.org/zap"
)

// RatingService is the interface that wraps methods for the rating ledger
type RatingService interface {
	// Method Add records a rating in the 1..5 range for a meal.
	Add(ctx context.Context, callerID int, req *models.AddRatingRequest) (int, error)
	// Method ListForMeal returns the ratings for one meal, newest first.
	ListForMeal(ctx context.Context, mealID int) ([]models.RatingView, error)
}

// RatingHandler handles rating HTTP requests
type RatingHandler struct {
	BaseHandler
	ratingService RatingService
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		ratingService: ratingService,
	}
}

// RegisterRoutes registers all rating handler routes. Adding a rating requires
// authentication; listing is public.
// Note: This assumes the router is already scoped to /api
func (h *RatingHandler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Route("/ratings", func(r chi.Router) {
		r.Get("/meal/{meal_id}", h.ListForMeal)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Add)
		})
	})
}

// Add handles POST /ratings
// @Summary Rate a meal
// @Description Record a rating between 1 and 5 with an optional comment
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body models.AddRatingRequest true "Rating request"
// @Success 201 {object} map[string]any "Rating added successfully"
// @Failure 400 {object} map[string]string "Missing fields or rating out of range"
// @Security ApiKeyAuth
// @Router /ratings [post]
func (h *RatingHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.AddRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ratingID, err := h.ratingService.Add(r.Context(), identity.ID, &req)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":  "rating added successfully",
		"ratingId": ratingID,
	})
}

// ListForMeal handles GET /ratings/meal/{meal_id}
// @Summary List ratings for a meal
// @Description List the ratings for one meal joined with usernames, newest first
// @Tags ratings
// @Produce json
// @Param meal_id path int true "Meal ID"
// @Success 200 {array} models.RatingView "List of ratings"
// @Failure 400 {object} map[string]string "Invalid meal ID"
// @Router /ratings/meal/{meal_id} [get]
func (h *RatingHandler) ListForMeal(w http.ResponseWriter, r *http.Request) {
	mealID, err := strconv.Atoi(chi.URLParam(r, "meal_id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid meal ID")
		return
	}

	ratings, err := h.ratingService.ListForMeal(r.Context(), mealID)
	if err != nil {
		h.RespondAppError(w, err)
		return
	}

	if ratings == nil {
		ratings = []models.RatingView{}
	}
	h.RespondJSON(w, http.StatusOK, ratings)
}
