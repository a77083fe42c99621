package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"biaresh/config"
	"biaresh/internal/domain/constants"
	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/domain/repository"
	"biaresh/internal/domain/service"
	"biaresh/internal/errors"
	"biaresh/internal/usecase"
)

type sessionService struct {
	logger       *slog.Logger
	repo         repository.SlotRepository
	hasher       service.PasswordHasher
	slot         string
	username     string
	passwordHash string
}

// NewSessionService creates the back-office guard. A plain configured
// password is hashed once here so comparisons always go through the hasher.
func NewSessionService(
	logger *slog.Logger,
	repo repository.SlotRepository,
	cfg *config.Config,
	hasher service.PasswordHasher,
) (usecase.SessionUsecase, error) {
	passwordHash := cfg.Admin.PasswordHash
	if passwordHash == "" {
		hashed, err := hasher.Hash(cfg.Admin.Password)
		if err != nil {
			return nil, errors.Wrap(err, "hash admin password")
		}
		passwordHash = hashed
	}

	return &sessionService{
		logger:       logger,
		repo:         repo,
		hasher:       hasher,
		slot:         cfg.Slots.Admin,
		username:     cfg.Admin.Username,
		passwordHash: passwordHash,
	}, nil
}

func (srv *sessionService) Login(ctx context.Context, username, password string) error {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(srv.username)) == 1
	passwordOK := srv.hasher.Check(password, srv.passwordHash)
	if !usernameOK || !passwordOK {
		srv.log(ctx).Warn("Admin login rejected")

		return domainerrors.ErrInvalidCredentials
	}

	if err := srv.repo.Set(ctx, srv.slot, []byte(constants.AdminAuthenticatedValue)); err != nil {
		srv.log(ctx).Error("Failed to persist admin session", slog.Any("error", err))
	}

	srv.log(ctx).Info("Admin logged in")

	return nil
}

func (srv *sessionService) Logout(ctx context.Context) {
	if err := srv.repo.Delete(ctx, srv.slot); err != nil {
		srv.log(ctx).Error("Failed to clear admin session", slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Admin logged out")
}

func (srv *sessionService) IsAuthenticated(ctx context.Context) bool {
	raw, err := srv.repo.Get(ctx, srv.slot)
	if errors.Is(err, repository.ErrSlotNotFound) {
		return false
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to read admin session", slog.Any("error", err))

		return false
	}

	return string(raw) == constants.AdminAuthenticatedValue
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger, "session").With(slog.String("slot", srv.slot))
}
