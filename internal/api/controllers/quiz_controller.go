package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"astrasafe/internal/models/request_models"
	"astrasafe/internal/services"
	"astrasafe/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// Classify godoc
// @Summary Classify quiz answers into a safety persona
// @Description Returns the persona and up to five recommended cities
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizRequest true "Quiz answers"
// @Success 200 {object} response_models.QuizResultResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz [post]
func (q *QuizController) Classify(c *gin.Context) {
	var req request_models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := q.quizService.Classify(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, result)
}

func (q *QuizController) Options(c *gin.Context) {
	utils.RespondData(c, http.StatusOK, q.quizService.Options())
}
