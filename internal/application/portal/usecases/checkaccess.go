// Package usecases contains the public portal's access-gate and routing
// use cases.
package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// AccessResult is the outcome of a password-gate check.
type AccessResult string

const (
	AccessGranted     AccessResult = "granted"
	AccessDenied      AccessResult = "denied"
	AccessNotRequired AccessResult = "not_required"
)

// CheckAccessUseCase verifies a submitted portal password against the stored
// hash for a student or workout and, on success, issues a signed grant bound
// to that exact resource.
type CheckAccessUseCase struct {
	studentRepo  student.Repository
	workoutRepo  workout.Repository
	hasher       *auth.BcryptPasswordHasher
	grantService *auth.GrantService
	logger       logger.Interface
}

func NewCheckAccessUseCase(
	studentRepo student.Repository,
	workoutRepo workout.Repository,
	hasher *auth.BcryptPasswordHasher,
	grantService *auth.GrantService,
	logger logger.Interface,
) *CheckAccessUseCase {
	return &CheckAccessUseCase{
		studentRepo:  studentRepo,
		workoutRepo:  workoutRepo,
		hasher:       hasher,
		grantService: grantService,
		logger:       logger,
	}
}

type CheckAccessCommand struct {
	Resource   auth.GrantResource
	ResourceID uint
	Password   string
}

// CheckAccessResult carries the gate outcome and, when access is allowed, the
// signed grant token the interface layer sets as a cookie.
type CheckAccessResult struct {
	Result     AccessResult
	GrantToken string
}

// Execute applies the gate rules: a resource with no stored password yields
// NotRequired and a grant is issued unconditionally; otherwise the supplied
// password is compared against the stored hash. A missing resource is a
// terminal not-found error.
func (uc *CheckAccessUseCase) Execute(ctx context.Context, cmd CheckAccessCommand) (*CheckAccessResult, error) {
	hash, err := uc.storedHash(ctx, cmd.Resource, cmd.ResourceID)
	if err != nil {
		return nil, err
	}

	if hash == nil || *hash == "" {
		token, err := uc.grantService.Issue(cmd.Resource, cmd.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to issue access grant: %w", err)
		}
		return &CheckAccessResult{Result: AccessNotRequired, GrantToken: token}, nil
	}

	if err := uc.hasher.Verify(cmd.Password, *hash); err != nil {
		uc.logger.Debugw("portal password rejected",
			"resource", cmd.Resource,
			"resource_id", cmd.ResourceID,
		)
		return &CheckAccessResult{Result: AccessDenied}, nil
	}

	token, err := uc.grantService.Issue(cmd.Resource, cmd.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access grant: %w", err)
	}
	return &CheckAccessResult{Result: AccessGranted, GrantToken: token}, nil
}

func (uc *CheckAccessUseCase) storedHash(ctx context.Context, resource auth.GrantResource, id uint) (*string, error) {
	switch resource {
	case auth.GrantResourceStudent:
		s, err := uc.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.PasswordHash(), nil
	case auth.GrantResourceWorkout:
		w, err := uc.workoutRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return w.PasswordHash(), nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown resource kind: %s", resource))
	}
}
