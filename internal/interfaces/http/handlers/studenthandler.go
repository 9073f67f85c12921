package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/application/student/usecases"
	"coachdesk/internal/interfaces/http/middleware"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

type StudentHandler struct {
	createUseCase *usecases.CreateStudentUseCase
	updateUseCase *usecases.UpdateStudentUseCase
	getUseCase    *usecases.GetStudentUseCase
	listUseCase   *usecases.ListStudentsUseCase
	deleteUseCase *usecases.DeleteStudentUseCase
	logger        logger.Interface
}

func NewStudentHandler(
	createUC *usecases.CreateStudentUseCase,
	updateUC *usecases.UpdateStudentUseCase,
	getUC *usecases.GetStudentUseCase,
	listUC *usecases.ListStudentsUseCase,
	deleteUC *usecases.DeleteStudentUseCase,
	logger logger.Interface,
) *StudentHandler {
	return &StudentHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Email          string `json:"email" binding:"omitempty,email"`
	Notes          string `json:"notes"`
	PortalPassword string `json:"portal_password"`
}

type UpdateStudentRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive"`
	PortalPassword *string `json:"portal_password"`
}

func (h *StudentHandler) Create(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateStudentCommand{
		TrainerID:      trainerID,
		Name:           req.Name,
		Email:          req.Email,
		Notes:          req.Notes,
		PortalPassword: req.PortalPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Student created successfully")
}

func (h *StudentHandler) Update(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateStudentCommand{
		TrainerID:      trainerID,
		StudentID:      studentID,
		Name:           req.Name,
		Email:          req.Email,
		Notes:          req.Notes,
		Status:         req.Status,
		PortalPassword: req.PortalPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Student updated successfully", result)
}

func (h *StudentHandler) Get(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetStudentCommand{
		TrainerID: trainerID,
		StudentID: studentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StudentHandler) List(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListStudentsCommand{
		TrainerID: trainerID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Students, result.Total, result.Page, result.PageSize)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteStudentCommand{
		TrainerID: trainerID,
		StudentID: studentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
