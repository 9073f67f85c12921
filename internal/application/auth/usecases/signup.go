package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/domain/trainer"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/infrastructure/email"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type SignupUseCase struct {
	trainerRepo  trainer.Repository
	hasher       *auth.BcryptPasswordHasher
	jwtService   *auth.JWTService
	emailService email.Service
	logger       logger.Interface
}

func NewSignupUseCase(
	trainerRepo trainer.Repository,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	emailService email.Service,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		trainerRepo:  trainerRepo,
		hasher:       hasher,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

type SignupCommand struct {
	Email    string
	Name     string
	Password string
}

type AuthResult struct {
	TrainerID uint
	Email     string
	Name      string
	Plan      string
	Tokens    *auth.TokenPair
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*AuthResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("Password must be at least 8 characters long")
	}

	if existing, err := uc.trainerRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("An account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	t, err := trainer.NewTrainer(cmd.Email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.trainerRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}

	tokens, err := uc.jwtService.Generate(t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to generate session tokens: %w", err)
	}

	if err := uc.emailService.SendWelcomeEmail(t.Email(), t.Name()); err != nil {
		// Signup succeeded; a failed welcome email is not worth failing the request.
		uc.logger.Warnw("failed to send welcome email", "trainer_id", t.ID(), "error", err)
	}

	uc.logger.Infow("trainer signed up", "trainer_id", t.ID())

	return &AuthResult{
		TrainerID: t.ID(),
		Email:     t.Email(),
		Name:      t.Name(),
		Plan:      t.Plan().String(),
		Tokens:    tokens,
	}, nil
}
