package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/application/exercise/usecases"
	"coachdesk/internal/interfaces/http/middleware"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

type ExerciseHandler struct {
	createUseCase *usecases.CreateExerciseUseCase
	updateUseCase *usecases.UpdateExerciseUseCase
	listUseCase   *usecases.ListExercisesUseCase
	deleteUseCase *usecases.DeleteExerciseUseCase
	logger        logger.Interface
}

func NewExerciseHandler(
	createUC *usecases.CreateExerciseUseCase,
	updateUC *usecases.UpdateExerciseUseCase,
	listUC *usecases.ListExercisesUseCase,
	deleteUC *usecases.DeleteExerciseUseCase,
	logger logger.Interface,
) *ExerciseHandler {
	return &ExerciseHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	MuscleGroup string `json:"muscle_group" binding:"max=50"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url" binding:"omitempty,url"`
}

type UpdateExerciseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	MuscleGroup *string `json:"muscle_group" binding:"omitempty,max=50"`
	Description *string `json:"description"`
	VideoURL    *string `json:"video_url" binding:"omitempty,url"`
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateExerciseCommand{
		TrainerID:   trainerID,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Exercise created successfully")
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	exerciseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateExerciseCommand{
		TrainerID:   trainerID,
		ExerciseID:  exerciseID,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Exercise updated successfully", result)
}

func (h *ExerciseHandler) List(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListExercisesCommand{
		TrainerID: trainerID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Exercises, result.Total, result.Page, result.PageSize)
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	exerciseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteExerciseCommand{
		TrainerID:  trainerID,
		ExerciseID: exerciseID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
