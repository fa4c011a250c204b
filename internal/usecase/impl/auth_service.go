// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitbuilder/internal/domain/entity"
	domainerrors "fitbuilder/internal/domain/errors"
	"fitbuilder/internal/domain/repository"
	"fitbuilder/internal/domain/service"
	"fitbuilder/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	sessionRepo  repository.SessionRepository
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	SessionRepo  repository.SessionRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		sessionRepo:  params.SessionRepo,
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account, makes it the active session, and
// initializes its default profile. A duplicate email fails without touching
// the directory or the session.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	stored, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	if err := srv.accountRepo.CreateCredential(ctx, input.Email, stored); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			srv.logger.Warn("Registration rejected, email taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create credential")
	}

	account := entity.NewAccount(input.Email)

	// Register makes the new account the active session and seeds its
	// profile, in that order; the profile write is not transactional with
	// the directory write.
	if err := srv.sessionRepo.Set(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to set session after registration")
	}
	if err := srv.profileRepo.Replace(ctx, account.ID, entity.NewUserProfile()); err != nil {
		return nil, errors.Wrap(err, "failed to initialize profile after registration")
	}

	output, err := srv.buildAuthOutput(account)
	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Registration completed", slog.String("accountID", account.ID))

	return output, nil
}

// Login checks the stored credential and, on success, overwrites the session
// with this account. A failed login leaves any previous session untouched.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting login", slog.String("email", input.Email))

	stored, err := srv.accountRepo.FindCredential(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, stored) {
		srv.logger.Warn("Login rejected, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	account := entity.NewAccount(input.Email)
	if err := srv.sessionRepo.Set(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to set session after login")
	}

	output, err := srv.buildAuthOutput(account)
	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Login completed", slog.String("accountID", account.ID))

	return output, nil
}

// Logout clears the durable session.
func (srv *authService) Logout(ctx context.Context) error {
	srv.logger.Info("Logging out")

	return errors.Wrap(srv.sessionRepo.Clear(ctx), "failed to clear session")
}

// Current restores the active account, or returns nil when logged out.
func (srv *authService) Current(ctx context.Context) (*entity.Account, error) {
	account, err := srv.sessionRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read session")
	}

	return account, nil
}

func (srv *authService) buildAuthOutput(account *entity.Account) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
