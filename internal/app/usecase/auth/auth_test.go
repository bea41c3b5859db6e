package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escrima/go-orders-service/internal/app/entity"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
)

const testSecret = "mi_clave_secreta"

type mapDirectory map[string]entity.User

func (d mapDirectory) Lookup(username string) (entity.User, bool) {
	user, ok := d[username]

	return user, ok
}

func testDirectory() mapDirectory {
	return mapDirectory{
		"admin": {
			Username:       "admin",
			FullName:       "Administrador",
			Email:          "admin@pedidos.local",
			HashedPassword: "Iaew-2024$",
			Roles:          []string{"api"},
		},
	}
}

func TestIssue(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string

		wantErr error
	}{
		{
			name:     "correct credentials",
			username: "admin",
			password: "Iaew-2024$",

			wantErr: nil,
		},
		{
			name:     "empty password is accepted for known user",
			username: "admin",
			password: "",

			wantErr: nil,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong",

			wantErr: err_usecase.ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "Iaew-2024$",

			wantErr: err_usecase.ErrInvalidCredentials,
		},
	}

	authenticator := New(testDirectory(), testSecret, 30*time.Minute)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := authenticator.Issue(tt.username, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, user, err := authenticator.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.username, claims.Subject)
			assert.Equal(t, []string{"api"}, claims.Roles)
			assert.Equal(t, tt.username, user.Username)
		})
	}
}

func TestValidateExpiredToken(t *testing.T) {
	expired := New(testDirectory(), testSecret, -time.Second)

	token, err := expired.Issue("admin", "")
	require.NoError(t, err)

	_, _, err = expired.Validate(token)
	assert.ErrorIs(t, err, err_usecase.ErrTokenExpired)
}

func TestValidateTamperedToken(t *testing.T) {
	authenticator := New(testDirectory(), testSecret, 30*time.Minute)

	token, err := authenticator.Issue("admin", "")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := strings.Join([]string{parts[0], parts[1], string(signature)}, ".")

	_, _, err = authenticator.Validate(tampered)
	assert.ErrorIs(t, err, err_usecase.ErrInvalidSignature)
}

func TestValidateWrongSecret(t *testing.T) {
	authenticator := New(testDirectory(), testSecret, 30*time.Minute)
	stranger := New(testDirectory(), "otra_clave", 30*time.Minute)

	token, err := stranger.Issue("admin", "")
	require.NoError(t, err)

	_, _, err = authenticator.Validate(token)
	assert.ErrorIs(t, err, err_usecase.ErrInvalidSignature)
}

func TestValidateMissingSubject(t *testing.T) {
	authenticator := New(testDirectory(), testSecret, 30*time.Minute)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(30 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, _, err = authenticator.Validate(token)
	assert.ErrorIs(t, err, err_usecase.ErrMissingSubject)
}

func TestValidateUnknownSubject(t *testing.T) {
	issuer := New(mapDirectory{
		"stranger": {Username: "stranger"},
	}, testSecret, 30*time.Minute)

	token, err := issuer.Issue("stranger", "")
	require.NoError(t, err)

	validator := New(testDirectory(), testSecret, 30*time.Minute)

	_, _, err = validator.Validate(token)
	assert.ErrorIs(t, err, err_usecase.ErrUnknownSubject)
}
