package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/application/portal/usecases"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/config"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

// PortalHandler serves the public read-only portal: student pages and shared
// workout pages, both optionally gated by an access password. The signed
// resource-scoped grant cookie is the only credential the portal accepts.
type PortalHandler struct {
	checkAccessUseCase *usecases.CheckAccessUseCase
	resolveUseCase     *usecases.ResolvePortalUseCase
	sessionResolver    *auth.SessionResolver
	grantService       *auth.GrantService
	logger             logger.Interface
	cookieConfig       config.CookieConfig
}

func NewPortalHandler(
	checkAccessUC *usecases.CheckAccessUseCase,
	resolveUC *usecases.ResolvePortalUseCase,
	sessionResolver *auth.SessionResolver,
	grantService *auth.GrantService,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
) *PortalHandler {
	return &PortalHandler{
		checkAccessUseCase: checkAccessUC,
		resolveUseCase:     resolveUC,
		sessionResolver:    sessionResolver,
		grantService:       grantService,
		logger:             logger,
		cookieConfig:       cookieConfig,
	}
}

type GateRequest struct {
	Password string `json:"password"`
}

// StudentPortal serves a student's portal page, or redirects to the password
// gate when the page is gated and no valid grant accompanies the request.
func (h *PortalHandler) StudentPortal(c *gin.Context) {
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student id")
		return
	}

	grantToken := utils.GetTokenFromCookie(c, utils.StudentGrantCookie(studentID))

	result, err := h.resolveUseCase.ResolveStudent(c.Request.Context(), studentID, grantToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Outcome == usecases.RouteRedirectToGate {
		c.Redirect(http.StatusFound, fmt.Sprintf("/portal/students/%d/gate", studentID))
		return
	}

	if result.IssuedGrant != "" {
		h.setGrantCookie(c, utils.StudentGrantCookie(studentID), result.IssuedGrant)
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.View)
}

// SharedWorkout serves a workout's public share page, with the same gate
// semantics as the student portal.
func (h *PortalHandler) SharedWorkout(c *gin.Context) {
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	grantToken := utils.GetTokenFromCookie(c, utils.WorkoutGrantCookie(workoutID))

	result, err := h.resolveUseCase.ResolveWorkout(c.Request.Context(), workoutID, grantToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Outcome == usecases.RouteRedirectToGate {
		c.Redirect(http.StatusFound, fmt.Sprintf("/portal/workouts/%d/gate", workoutID))
		return
	}

	if result.IssuedGrant != "" {
		h.setGrantCookie(c, utils.WorkoutGrantCookie(workoutID), result.IssuedGrant)
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.View)
}

// StudentGate verifies a submitted portal password for a student and sets the
// grant cookie on success.
func (h *PortalHandler) StudentGate(c *gin.Context) {
	h.gate(c, auth.GrantResourceStudent, utils.StudentGrantCookie)
}

// WorkoutGate verifies a submitted share password for a workout.
func (h *PortalHandler) WorkoutGate(c *gin.Context) {
	h.gate(c, auth.GrantResourceWorkout, utils.WorkoutGrantCookie)
}

func (h *PortalHandler) gate(c *gin.Context, resource auth.GrantResource, cookieName func(uint) string) {
	resourceID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid resource id")
		return
	}

	var req GateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.checkAccessUseCase.Execute(c.Request.Context(), usecases.CheckAccessCommand{
		Resource:   resource,
		ResourceID: resourceID,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch result.Result {
	case usecases.AccessDenied:
		utils.ErrorResponse(c, http.StatusUnauthorized, "incorrect password")
	case usecases.AccessGranted, usecases.AccessNotRequired:
		h.setGrantCookie(c, cookieName(resourceID), result.GrantToken)
		utils.SuccessResponse(c, http.StatusOK, "Access granted", gin.H{
			"result": string(result.Result),
		})
	}
}

// Session reports the acting identity behind the request, for the portal
// frontend to decide which navigation to show.
func (h *PortalHandler) Session(c *gin.Context) {
	accessToken := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

	var studentID uint
	var grantToken string
	if id, err := parseIDParam(c, "id"); err == nil {
		studentID = id
		grantToken = utils.GetTokenFromCookie(c, utils.StudentGrantCookie(id))
	}

	session := h.sessionResolver.Resolve(accessToken, grantToken, studentID)
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"kind":       string(session.Kind),
		"trainer_id": session.TrainerID,
		"student_id": session.StudentID,
	})
}

func (h *PortalHandler) setGrantCookie(c *gin.Context, name, token string) {
	maxAge := int(h.grantService.Expiry().Seconds())
	utils.SetGrantCookie(c, h.cookieConfig, name, token, maxAge)
}
