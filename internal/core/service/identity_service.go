package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/api/metrics"
	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/password"
	"github.com/minimart/commerce-system/internal/core/ports"
	"github.com/minimart/commerce-system/internal/core/secret"
	"github.com/minimart/commerce-system/internal/core/token"
)

// IdentityService implements registration, login, and token verification.
// It is the sole minter and sole verifier of tokens on the platform.
type IdentityService struct {
	repo    ports.UserRepository
	secrets *secret.Keeper
	audit   ports.AuditClient
	log     zerolog.Logger
}

func NewIdentityService(repo ports.UserRepository, secrets *secret.Keeper, audit ports.AuditClient, log zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, secrets: secrets, audit: audit, log: log}
}

func (s *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !password.Valid(in.Username, in.FirstName, in.LastName, in.Password) {
		return nil, domain.ErrWeakPassword
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUserExists
	}
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailExists
	}

	user := &domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Employee:     in.Employee,
		PasswordHash: password.Hash(in.Password, in.Salt),
		Salt:         in.Salt,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register %s: %w", in.Username, err)
	}

	if err := s.audit.Record(ctx, domain.EventUserCreation, in.Username, ""); err != nil {
		s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to record user_creation event")
	}

	s.log.Info().Str("username", in.Username).Bool("employee", in.Employee).Msg("user registered")
	return user, nil
}

func (s *IdentityService) Login(ctx context.Context, username, pw string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	// Stored-credential comparison is plain equality. Token signatures are
	// compared constant-time; this path is not.
	if password.Hash(pw, user.Salt) != user.PasswordHash {
		return "", domain.ErrInvalidCredentials
	}

	tok, err := token.Issue(s.secrets.Key(), username)
	if err != nil {
		return "", fmt.Errorf("login %s: %w", username, err)
	}
	metrics.TokensIssuedTotal.Inc()

	if err := s.audit.Record(ctx, domain.EventLogin, username, ""); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login event")
	}

	s.log.Info().Str("username", username).Msg("login succeeded")
	return tok, nil
}

// Verify fails closed: malformed tokens, bad signatures, and subjects that no
// longer exist all produce an invalid decision, never an error.
func (s *IdentityService) Verify(ctx context.Context, tok string) domain.AuthDecision {
	claims, err := token.Verify(s.secrets.Key(), tok)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return domain.AuthDecision{}
	}

	user, err := s.repo.FindByUsername(ctx, claims.Username)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return domain.AuthDecision{}
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return domain.AuthDecision{Valid: true, Username: user.Username, Employee: user.Employee}
}

func (s *IdentityService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
