package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/portal/dto"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/logger"
)

// RouteOutcome is the portal routing decision for a resource.
type RouteOutcome string

const (
	RouteServePortal    RouteOutcome = "serve_portal"
	RouteRedirectToGate RouteOutcome = "redirect_to_gate"
)

// ResolvePortalUseCase decides, per resource, whether to serve the read-only
// portal view or send the visitor to the password gate:
//
//	password set  grant valid  outcome
//	no            -            serve (grant auto-issued)
//	yes           yes          serve
//	yes           no           redirect to gate
//
// A signed resource-scoped grant is the only credential accepted here.
type ResolvePortalUseCase struct {
	studentRepo  student.Repository
	workoutRepo  workout.Repository
	exerciseRepo exercise.Repository
	scheduleRepo schedule.Repository
	grantService *auth.GrantService
	logger       logger.Interface
}

func NewResolvePortalUseCase(
	studentRepo student.Repository,
	workoutRepo workout.Repository,
	exerciseRepo exercise.Repository,
	scheduleRepo schedule.Repository,
	grantService *auth.GrantService,
	logger logger.Interface,
) *ResolvePortalUseCase {
	return &ResolvePortalUseCase{
		studentRepo:  studentRepo,
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		scheduleRepo: scheduleRepo,
		grantService: grantService,
		logger:       logger,
	}
}

type StudentPortalResult struct {
	Outcome RouteOutcome
	View    *dto.StudentPortalView
	// IssuedGrant is set when an ungated resource auto-issued a grant.
	IssuedGrant string
}

type WorkoutPortalResult struct {
	Outcome     RouteOutcome
	View        *dto.WorkoutPortalView
	IssuedGrant string
}

// ResolveStudent routes a student-portal request.
func (uc *ResolvePortalUseCase) ResolveStudent(ctx context.Context, studentID uint, grantToken string) (*StudentPortalResult, error) {
	s, err := uc.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	issued := ""
	if s.RequiresPassword() {
		if grantToken == "" || uc.grantService.Verify(grantToken, auth.GrantResourceStudent, studentID) != nil {
			return &StudentPortalResult{Outcome: RouteRedirectToGate}, nil
		}
	} else {
		issued, err = uc.grantService.Issue(auth.GrantResourceStudent, studentID)
		if err != nil {
			return nil, fmt.Errorf("failed to issue access grant: %w", err)
		}
	}

	workouts, err := uc.workoutRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workouts: %w", err)
	}
	appointments, err := uc.scheduleRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	names, err := uc.exerciseNames(ctx, workouts)
	if err != nil {
		return nil, err
	}

	return &StudentPortalResult{
		Outcome:     RouteServePortal,
		View:        dto.ToStudentPortalView(s, workouts, appointments, names),
		IssuedGrant: issued,
	}, nil
}

// ResolveWorkout routes a shared-workout request.
func (uc *ResolvePortalUseCase) ResolveWorkout(ctx context.Context, workoutID uint, grantToken string) (*WorkoutPortalResult, error) {
	w, err := uc.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	issued := ""
	if w.RequiresPassword() {
		if grantToken == "" || uc.grantService.Verify(grantToken, auth.GrantResourceWorkout, workoutID) != nil {
			return &WorkoutPortalResult{Outcome: RouteRedirectToGate}, nil
		}
	} else {
		issued, err = uc.grantService.Issue(auth.GrantResourceWorkout, workoutID)
		if err != nil {
			return nil, fmt.Errorf("failed to issue access grant: %w", err)
		}
	}

	names, err := uc.exerciseNames(ctx, []*workout.Workout{w})
	if err != nil {
		return nil, err
	}

	return &WorkoutPortalResult{
		Outcome:     RouteServePortal,
		View:        dto.ToWorkoutPortalView(w, names),
		IssuedGrant: issued,
	}, nil
}

func (uc *ResolvePortalUseCase) exerciseNames(ctx context.Context, workouts []*workout.Workout) (dto.ExerciseNameLookup, error) {
	names := dto.ExerciseNameLookup{}
	for _, w := range workouts {
		for _, item := range w.Items() {
			if _, ok := names[item.ExerciseID]; ok {
				continue
			}
			e, err := uc.exerciseRepo.GetByID(ctx, item.ExerciseID)
			if err != nil {
				// A deleted exercise should not break the portal page.
				uc.logger.Warnw("exercise lookup failed", "exercise_id", item.ExerciseID, "error", err)
				names[item.ExerciseID] = ""
				continue
			}
			names[item.ExerciseID] = e.Name()
		}
	}
	return names, nil
}
