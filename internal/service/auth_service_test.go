package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/raghav2811/VendorConnect/internal/config"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
		JWTRefreshHours:    168,
	}
}

func seedUser(repo *stubUserRepo, username, password string, active bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test User",
		PasswordHash: string(hash),
		Role:         model.RoleBuyer,
		IsActive:     active,
	}
	_ = repo.Create(context.Background(), u)
	return repo.users[repo.byUsername[username]]
}

func TestLogin(t *testing.T) {
	users := newStubUserRepo()
	seeded := seedUser(users, "alice", "s3cretpass", true)
	svc := NewAuthService(users, newStubVendorRepo(), testAuthConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
	assert.Equal(t, "alice", resp.User.Username)
	assert.True(t, users.lastLogin[seeded.ID], "successful login records last_login")

	// The access token must verify against the configured secret.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, seeded.ID.String(), claims["user_id"])
	assert.Equal(t, "buyer", claims["role"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "alice", "s3cretpass", true)
	seedUser(users, "ghost", "whatever1", false)
	svc := NewAuthService(users, newStubVendorRepo(), testAuthConfig())

	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "alice", Password: "wrong"}},
		{"unknown user", dto.LoginRequest{Username: "nobody", Password: "s3cretpass"}},
		{"inactive user", dto.LoginRequest{Username: "ghost", Password: "whatever1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.req)
			require.Error(t, err)
			// Same message for every failure mode: no account enumeration.
			assert.EqualError(t, err, "invalid credentials")
		})
	}
}

func TestRefresh(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "alice", "s3cretpass", true)
	svc := NewAuthService(users, newStubVendorRepo(), testAuthConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "alice", refreshed.User.Username)

	_, err = svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestRefreshInactiveUser(t *testing.T) {
	users := newStubUserRepo()
	seeded := seedUser(users, "alice", "s3cretpass", true)
	svc := NewAuthService(users, newStubVendorRepo(), testAuthConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	require.NoError(t, users.SoftDelete(context.Background(), seeded.ID))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err, "a valid token no longer grants access once the account is deactivated")
}

func TestRegisterBuyer(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubVendorRepo(), testAuthConfig())

	resp, err := svc.RegisterBuyer(context.Background(), dto.RegisterBuyerRequest{
		Username: "bob",
		Email:    "bob@example.com",
		FullName: "Bob B",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer", resp.Role)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.VendorID)

	stored := users.users[users.byUsername["bob"]]
	assert.NotEqual(t, "longenough", stored.PasswordHash, "password is stored hashed")

	_, err = svc.RegisterBuyer(context.Background(), dto.RegisterBuyerRequest{
		Username: "bob",
		Email:    "bob2@example.com",
		FullName: "Bob B",
		Password: "longenough",
	})
	require.Error(t, err)
}

func TestRegisterVendor(t *testing.T) {
	users := newStubUserRepo()
	vendors := newStubVendorRepo()
	svc := NewAuthService(users, vendors, testAuthConfig())

	resp, err := svc.RegisterVendor(context.Background(), dto.RegisterVendorRequest{
		Username:      "carol",
		Email:         "carol@example.com",
		FullName:      "Carol C",
		Password:      "longenough",
		BusinessName:  "Carol's Kitchen",
		ContactPerson: "Carol C",
		Phone:         "555-0100",
		BusinessEmail: "orders@carolskitchen.example",
		Address:       "1 Market St",
	})
	require.NoError(t, err)
	assert.Equal(t, "vendor", resp.Role)
	require.NotNil(t, resp.VendorID)

	vid, err := uuid.Parse(*resp.VendorID)
	require.NoError(t, err)
	vendor, err := vendors.FindByID(context.Background(), vid)
	require.NoError(t, err)
	assert.Equal(t, "Carol's Kitchen", vendor.Name)
	assert.False(t, vendor.IsApproved, "new vendors await approval")
	assert.True(t, vendor.IsActive)
	assert.Equal(t, "Restaurant", vendor.BusinessType, "business type defaults when omitted")
}

func TestDeactivateUser(t *testing.T) {
	users := newStubUserRepo()
	seeded := seedUser(users, "alice", "s3cretpass", true)
	svc := NewAuthService(users, newStubVendorRepo(), testAuthConfig())

	require.NoError(t, svc.DeactivateUser(context.Background(), seeded.ID))
	assert.False(t, users.users[seeded.ID].IsActive)

	listed, err := svc.ListUsers(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
