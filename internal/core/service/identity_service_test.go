package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/password"
	"github.com/minimart/commerce-system/internal/core/ports"
	"github.com/minimart/commerce-system/internal/core/secret"
	"github.com/minimart/commerce-system/internal/core/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

type recordedEvent struct {
	Event       string
	Username    string
	ProductName string
}

type stubAuditClient struct {
	events  []recordedEvent
	lastMod map[string]string
	err     error
}

func newStubAuditClient() *stubAuditClient {
	return &stubAuditClient{lastMod: make(map[string]string)}
}

func (c *stubAuditClient) Record(_ context.Context, event, username, productName string) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, recordedEvent{Event: event, Username: username, ProductName: productName})
	return nil
}

func (c *stubAuditClient) LastModifier(_ context.Context, productName string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	username, ok := c.lastMod[productName]
	if !ok {
		return "", domain.ErrNoHistory
	}
	return username, nil
}

func testKeeper(t *testing.T) *secret.Keeper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(path, []byte("test-signing-key\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	keeper, err := secret.Load(path)
	if err != nil {
		t.Fatalf("load key file: %v", err)
	}
	return keeper
}

func newIdentityService(repo ports.UserRepository, keeper *secret.Keeper, audit ports.AuditClient) *IdentityService {
	return NewIdentityService(repo, keeper, audit, zerolog.Nop())
}

func registerInput(username string) ports.RegisterInput {
	return ports.RegisterInput{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "Str0ngPass",
		Salt:      "pepper",
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := newStubAuditClient()
	svc := newIdentityService(repo, testKeeper(t), audit)

	user, err := svc.Register(context.Background(), registerInput("alice"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash != password.Hash("Str0ngPass", "pepper") {
		t.Fatalf("stored hash does not match hash of password and salt")
	}
	if len(audit.events) != 1 || audit.events[0].Event != domain.EventUserCreation {
		t.Fatalf("expected one user_creation event, got %+v", audit.events)
	}
	if audit.events[0].Username != "alice" {
		t.Fatalf("event recorded for %q, want alice", audit.events[0].Username)
	}
}

func TestIdentityService_Register_WeakPassword(t *testing.T) {
	svc := newIdentityService(newStubUserRepo(), testKeeper(t), newStubAuditClient())

	in := registerInput("alice")
	in.Password = "password1"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestIdentityService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo, testKeeper(t), newStubAuditClient())

	if _, err := svc.Register(context.Background(), registerInput("bob")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	in := registerInput("bob")
	in.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestIdentityService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo, testKeeper(t), newStubAuditClient())

	if _, err := svc.Register(context.Background(), registerInput("bob")); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	in := registerInput("carol")
	in.Email = "bob@example.com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestIdentityService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := newStubAuditClient()
	keeper := testKeeper(t)
	svc := newIdentityService(repo, keeper, audit)

	if _, err := svc.Register(context.Background(), registerInput("carol")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tok, err := svc.Login(context.Background(), "carol", "Str0ngPass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := token.Verify(keeper.Key(), tok)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "carol" {
		t.Fatalf("token subject %q, want carol", claims.Username)
	}
	if audit.events[len(audit.events)-1].Event != domain.EventLogin {
		t.Fatalf("expected login event last, got %+v", audit.events)
	}
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo, testKeeper(t), newStubAuditClient())

	if _, err := svc.Register(context.Background(), registerInput("dave")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "dave", "Wr0ngPass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestIdentityService_Login_UnknownUser(t *testing.T) {
	svc := newIdentityService(newStubUserRepo(), testKeeper(t), newStubAuditClient())

	if _, err := svc.Login(context.Background(), "ghost", "Str0ngPass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestIdentityService_Login_AuditFailureDoesNotBlock(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo, testKeeper(t), newStubAuditClient())

	if _, err := svc.Register(context.Background(), registerInput("erin")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	failing := newStubAuditClient()
	failing.err = errors.New("audit unreachable")
	svc = newIdentityService(repo, testKeeper(t), failing)

	if _, err := svc.Login(context.Background(), "erin", "Str0ngPass"); err != nil {
		t.Fatalf("login should succeed despite audit failure, got %v", err)
	}
}

func TestIdentityService_Verify_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo, testKeeper(t), newStubAuditClient())

	in := registerInput("frank")
	in.Employee = true
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tok, err := svc.Login(context.Background(), "frank", "Str0ngPass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	decision := svc.Verify(context.Background(), tok)
	if !decision.Valid {
		t.Fatalf("expected valid decision for fresh token")
	}
	if decision.Username != "frank" || !decision.Employee {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestIdentityService_Verify_MalformedToken(t *testing.T) {
	svc := newIdentityService(newStubUserRepo(), testKeeper(t), newStubAuditClient())

	if decision := svc.Verify(context.Background(), "not.a.token"); decision.Valid {
		t.Fatalf("malformed token must not verify")
	}
	if decision := svc.Verify(context.Background(), ""); decision.Valid {
		t.Fatalf("empty token must not verify")
	}
}

func TestIdentityService_Verify_DeletedSubjectFailsClosed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo, testKeeper(t), newStubAuditClient())

	if _, err := svc.Register(context.Background(), registerInput("gone")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	tok, err := svc.Login(context.Background(), "gone", "Str0ngPass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.users, "gone")

	if decision := svc.Verify(context.Background(), tok); decision.Valid {
		t.Fatalf("token for a deleted subject must not verify")
	}
}
