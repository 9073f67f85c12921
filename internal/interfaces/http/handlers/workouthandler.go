package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/application/workout/dto"
	"coachdesk/internal/application/workout/usecases"
	"coachdesk/internal/interfaces/http/middleware"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

type WorkoutHandler struct {
	createUseCase        *usecases.CreateWorkoutUseCase
	updateUseCase        *usecases.UpdateWorkoutUseCase
	getUseCase           *usecases.GetWorkoutUseCase
	listUseCase          *usecases.ListWorkoutsUseCase
	deleteUseCase        *usecases.DeleteWorkoutUseCase
	sharePasswordUseCase *usecases.SetSharePasswordUseCase
	logger               logger.Interface
}

func NewWorkoutHandler(
	createUC *usecases.CreateWorkoutUseCase,
	updateUC *usecases.UpdateWorkoutUseCase,
	getUC *usecases.GetWorkoutUseCase,
	listUC *usecases.ListWorkoutsUseCase,
	deleteUC *usecases.DeleteWorkoutUseCase,
	sharePasswordUC *usecases.SetSharePasswordUseCase,
	logger logger.Interface,
) *WorkoutHandler {
	return &WorkoutHandler{
		createUseCase:        createUC,
		updateUseCase:        updateUC,
		getUseCase:           getUC,
		listUseCase:          listUC,
		deleteUseCase:        deleteUC,
		sharePasswordUseCase: sharePasswordUC,
		logger:               logger,
	}
}

type WorkoutItemRequest struct {
	ExerciseID  uint    `json:"exercise_id" binding:"required"`
	Sets        int     `json:"sets" binding:"required,min=1"`
	Reps        int     `json:"reps" binding:"required,min=1"`
	LoadKg      float64 `json:"load_kg" binding:"min=0"`
	RestSeconds int     `json:"rest_seconds" binding:"min=0"`
	Notes       string  `json:"notes"`
}

type CreateWorkoutRequest struct {
	StudentID     uint                 `json:"student_id" binding:"required"`
	Name          string               `json:"name" binding:"required,min=1,max=100"`
	Notes         string               `json:"notes"`
	Items         []WorkoutItemRequest `json:"items" binding:"required,min=1,dive"`
	SharePassword string               `json:"share_password"`
}

type UpdateWorkoutRequest struct {
	Name  *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Notes *string              `json:"notes"`
	Items []WorkoutItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

type SharePasswordRequest struct {
	// Password empty removes the gate from the share link.
	Password string `json:"password"`
}

func toItemDTOs(items []WorkoutItemRequest) []dto.WorkoutItemDTO {
	if items == nil {
		return nil
	}
	out := make([]dto.WorkoutItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.WorkoutItemDTO{
			ExerciseID:  item.ExerciseID,
			Sets:        item.Sets,
			Reps:        item.Reps,
			LoadKg:      item.LoadKg,
			RestSeconds: item.RestSeconds,
			Notes:       item.Notes,
		})
	}
	return out
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateWorkoutCommand{
		TrainerID:     trainerID,
		StudentID:     req.StudentID,
		Name:          req.Name,
		Notes:         req.Notes,
		Items:         toItemDTOs(req.Items),
		SharePassword: req.SharePassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Workout created successfully")
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateWorkoutCommand{
		TrainerID: trainerID,
		WorkoutID: workoutID,
		Name:      req.Name,
		Notes:     req.Notes,
		Items:     toItemDTOs(req.Items),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workout updated successfully", result)
}

func (h *WorkoutHandler) Get(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetWorkoutCommand{
		TrainerID: trainerID,
		WorkoutID: workoutID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *WorkoutHandler) List(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListWorkoutsCommand{
		TrainerID: trainerID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Workouts, result.Total, result.Page, result.PageSize)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteWorkoutCommand{
		TrainerID: trainerID,
		WorkoutID: workoutID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *WorkoutHandler) SetSharePassword(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var req SharePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.sharePasswordUseCase.Execute(c.Request.Context(), usecases.SetSharePasswordCommand{
		TrainerID: trainerID,
		WorkoutID: workoutID,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Share password updated", result)
}
