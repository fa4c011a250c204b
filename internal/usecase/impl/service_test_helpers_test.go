package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"fitbuilder/config"
	"fitbuilder/internal/domain/repository"
	"fitbuilder/internal/infra/auth"
	"fitbuilder/internal/infra/persistence/localdb"
	"fitbuilder/internal/infra/persistence/memory"
	"fitbuilder/internal/usecase"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := new(config.Config)
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{PlaintextPasswords: true}

	return cfg
}

// testEnv wires the real services over an in-memory store so scenarios run
// end to end without any mocks.
type testEnv struct {
	store       repository.KVStore
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	profileRepo repository.ProfileRepository
	authUC      usecase.AuthUsecase
	profileUC   usecase.ProfileUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	logger := newTestLogger()
	store := memory.New()

	accountRepo := localdb.NewAccountRepository(store)
	sessionRepo := localdb.NewSessionRepository(store)
	profileRepo := localdb.NewProfileRepository(store)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		SessionRepo:  sessionRepo,
		ProfileRepo:  profileRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})

	profileUC := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return &testEnv{
		store:       store,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
		authUC:      authUC,
		profileUC:   profileUC,
	}
}
