package usecase

import (
	"context"
	"testing"

	"royalestats/internal/domain"
	"royalestats/internal/infrastructure/cache"
	"royalestats/internal/infrastructure/security"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func setupAuthUseCase(t *testing.T, repo UserRepository) *AuthUseCase {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	tokenCache := cache.NewTokenCache(rdb)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager("access-secret", "refresh-secret")

	return NewAuthUseCase(repo, tokenCache, hasher, tokenManager)
}

func TestRegister_HashesPasswordAndIssuesTokens(t *testing.T) {
	var created *domain.User
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		},
	}

	uc := setupAuthUseCase(t, repo)
	access, refresh, err := uc.Register(context.Background(), "  tester  ", " Tester@Example.COM ", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected a token pair")
	}

	if created == nil {
		t.Fatal("user was not created")
	}
	if created.Username != "tester" {
		t.Errorf("username = %q, want trimmed %q", created.Username, "tester")
	}
	if created.Email != "tester@example.com" {
		t.Errorf("email = %q, want lowercased %q", created.Email, "tester@example.com")
	}
	if created.Password == "secret123" || created.Password == "" {
		t.Error("password stored without hashing")
	}

	// The issued access token must resolve back to the new user.
	userID, err := uc.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess error: %v", err)
	}
	if userID != created.ID.String() {
		t.Errorf("token subject = %q, want %q", userID, created.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hasher := security.NewPasswordHasher()
	hash, _ := hasher.Hash("correct-horse")

	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email, Password: hash}, nil
		},
	}

	uc := setupAuthUseCase(t, repo)
	if _, _, err := uc.Login(context.Background(), "user@example.com", "battery-staple"); err != domain.ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	uc := setupAuthUseCase(t, repo)
	if _, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	hasher := security.NewPasswordHasher()
	hash, _ := hasher.Hash("secret123")
	user := &domain.User{ID: uuid.New(), Email: "user@example.com", Password: hash}

	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}

	uc := setupAuthUseCase(t, repo)
	_, refresh, err := uc.Login(context.Background(), user.Email, "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatal("expected a fresh token pair")
	}

	// The old refresh token was revoked by rotation.
	if _, _, err := uc.Refresh(context.Background(), refresh); err == nil {
		t.Fatal("expected rotated refresh token to be rejected")
	}
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	hasher := security.NewPasswordHasher()
	hash, _ := hasher.Hash("secret123")
	user := &domain.User{ID: uuid.New(), Email: "user@example.com", Password: hash}

	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}

	uc := setupAuthUseCase(t, repo)
	_, refresh, err := uc.Login(context.Background(), user.Email, "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := uc.Logout(context.Background(), refresh); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), refresh); err == nil {
		t.Fatal("expected revoked refresh token to be rejected")
	}
}
