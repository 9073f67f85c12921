package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/domain/trainer"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type LoginUseCase struct {
	trainerRepo trainer.Repository
	hasher      *auth.BcryptPasswordHasher
	jwtService  *auth.JWTService
	logger      logger.Interface
}

func NewLoginUseCase(
	trainerRepo trainer.Repository,
	hasher *auth.BcryptPasswordHasher,
	jwtService *auth.JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		trainerRepo: trainerRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		logger:      logger,
	}
}

type LoginCommand struct {
	Email    string
	Password string
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	t, err := uc.trainerRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to look up trainer: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, t.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	tokens, err := uc.jwtService.Generate(t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to generate session tokens: %w", err)
	}

	uc.logger.Infow("trainer logged in", "trainer_id", t.ID())

	return &AuthResult{
		TrainerID: t.ID(),
		Email:     t.Email(),
		Name:      t.Name(),
		Plan:      t.Plan().String(),
		Tokens:    tokens,
	}, nil
}
