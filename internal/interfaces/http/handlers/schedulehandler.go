package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	scheduledto "coachdesk/internal/application/schedule/dto"
	"coachdesk/internal/application/schedule/usecases"
	"coachdesk/internal/interfaces/http/middleware"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

type ScheduleHandler struct {
	bookUseCase   *usecases.BookAppointmentUseCase
	listUseCase   *usecases.ListAppointmentsUseCase
	changeUseCase *usecases.ChangeAppointmentUseCase
	logger        logger.Interface
}

func NewScheduleHandler(
	bookUC *usecases.BookAppointmentUseCase,
	listUC *usecases.ListAppointmentsUseCase,
	changeUC *usecases.ChangeAppointmentUseCase,
	logger logger.Interface,
) *ScheduleHandler {
	return &ScheduleHandler{
		bookUseCase:   bookUC,
		listUseCase:   listUC,
		changeUseCase: changeUC,
		logger:        logger,
	}
}

type BookAppointmentRequest struct {
	StudentID       uint      `json:"student_id" binding:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1,max=480"`
	Notes           string    `json:"notes"`
}

func (h *ScheduleHandler) Book(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.bookUseCase.Execute(c.Request.Context(), usecases.BookAppointmentCommand{
		TrainerID:       trainerID,
		StudentID:       req.StudentID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Appointment booked successfully")
}

func (h *ScheduleHandler) List(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		to = parsed
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListAppointmentsCommand{
		TrainerID: trainerID,
		From:      from,
		To:        to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	h.transition(c, h.changeUseCase.Complete, "Appointment completed")
}

func (h *ScheduleHandler) Cancel(c *gin.Context) {
	h.transition(c, h.changeUseCase.Cancel, "Appointment cancelled")
}

func (h *ScheduleHandler) transition(c *gin.Context,
	fn func(ctx context.Context, cmd usecases.ChangeAppointmentCommand) (*scheduledto.AppointmentDTO, error),
	message string) {

	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid appointment id")
		return
	}

	result, err := fn(c.Request.Context(), usecases.ChangeAppointmentCommand{
		TrainerID:     trainerID,
		AppointmentID: appointmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}
