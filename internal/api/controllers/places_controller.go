package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"astrasafe/internal/models/request_models"
	"astrasafe/internal/services"
	"astrasafe/pkg/utils"
)

type PlacesController struct {
	placeService  services.PlaceServiceInterface
	reviewService services.ReviewServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface, reviewService services.ReviewServiceInterface) *PlacesController {
	return &PlacesController{
		placeService:  placeService,
		reviewService: reviewService,
	}
}

// ListPlaces godoc
// @Summary Search the place directory
// @Tags Places
// @Produce json
// @Param q query string false "Free text over name, description and tags"
// @Param city query string false "City substring"
// @Param id query string false "Exact place id"
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 50)"
// @Success 200 {array} response_models.Place
// @Failure 400 {object} utils.APIResponse
// @Router /places [get]
func (p *PlacesController) ListPlaces(c *gin.Context) {
	var query request_models.ListPlacesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, places)
}

func (p *PlacesController) GetPlace(c *gin.Context) {
	place, err := p.placeService.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, place)
}

// ListReviews returns a place's reviews, newest first.
func (p *PlacesController) ListReviews(c *gin.Context) {
	reviews, err := p.reviewService.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Add a safety review to a place
// @Tags Places
// @Accept json
// @Produce json
// @Param id path string true "Place id"
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} response_models.Review
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/{id}/reviews [post]
func (p *PlacesController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := p.reviewService.AddReview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, review)
}
