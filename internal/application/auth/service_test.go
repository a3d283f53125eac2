package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clienteapi/internal/config"
	"clienteapi/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrUserEmailAlreadyExists
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTIssuer:     "clienteapi",
		JWTAudience:   "clienteapi-clients",
		JWTExpiryDays: 1,
		JWTExpiresIn:  24 * time.Hour,
	}
}

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	err := svc.Register(ctx, domain.RegisterRequest{Email: "a@b.com", Password: "secret1", Nome: "Ana"})
	require.NoError(t, err)

	user := repo.users["a@b.com"]
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.UserName, "email doubles as username")
	assert.NotEqual(t, "secret1", user.PasswordHash, "password must be stored hashed")

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), testConfig())

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{Email: "a@b.com", Password: "secret1"}))

	err := svc.Register(ctx, domain.RegisterRequest{Email: "a@b.com", Password: "other66"})
	require.ErrorIs(t, err, domain.ErrUserEmailAlreadyExists)
}

func TestService_Login_DoesNotLeakWhichCheckFailed(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), testConfig())

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{Email: "a@b.com", Password: "secret1"}))

	_, wrongPassword := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, domain.LoginRequest{Email: "nobody@b.com", Password: "secret1"})

	require.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestService_TokenClaims(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	repo := newFakeUserRepo()
	svc := NewService(repo, cfg)

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{Email: "a@b.com", Password: "secret1", Nome: "Ana"}))
	res, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	claims := &domain.TokenClaims{}
	token, err := jwt.ParseWithClaims(res.Token, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
	)
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, repo.users["a@b.com"].ID, claims.Subject)
	assert.NotEmpty(t, claims.ID, "each token carries a fresh jti")
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "a@b.com", claims.UserName)
	assert.Equal(t, "Ana", claims.NomeCompleto)
	assert.WithinDuration(t, time.Now().Add(cfg.JWTExpiresIn), claims.ExpiresAt.Time, time.Minute)

	// Two logins never share a jti.
	res2, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	claims2 := &domain.TokenClaims{}
	_, err = jwt.ParseWithClaims(res2.Token, claims2, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, claims2.ID)
}

func TestService_TokenOmitsNomeCompletoWhenEmpty(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	svc := NewService(newFakeUserRepo(), cfg)

	require.NoError(t, svc.Register(ctx, domain.RegisterRequest{Email: "a@b.com", Password: "secret1"}))
	res, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)

	_, present := claims["nomeCompleto"]
	assert.False(t, present, "nomeCompleto must be absent for accounts without a name")
}
