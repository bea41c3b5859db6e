package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/escrima/go-orders-service/internal/app/entity"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
)

// Directory resolves a username to its user record. The default
// implementation is the fixed in-memory directory; anything able to answer a
// lookup can replace it.
type Directory interface {
	Lookup(username string) (entity.User, bool)
}

type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

type Authenticator struct {
	directory Directory
	secret    []byte
	validity  time.Duration
}

func New(directory Directory, secret string, validity time.Duration) *Authenticator {
	return &Authenticator{
		directory: directory,
		secret:    []byte(secret),
		validity:  validity,
	}
}

// Issue authenticates a username/password pair against the directory and
// signs a token with subject, roles and expiration. An empty password is
// accepted for a known username; a supplied password must match the stored
// one as an opaque string.
func (a *Authenticator) Issue(username, password string) (string, error) {
	user, ok := a.directory.Lookup(username)
	if !ok {
		return "", err_usecase.ErrInvalidCredentials
	}

	if len(password) != 0 && password != user.HashedPassword {
		return "", err_usecase.ErrInvalidCredentials
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(a.validity)),
		},
		Roles: user.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signed, nil
}

// Validate checks signature and expiration, then resolves the subject in the
// directory. Expiration is compared against current UTC time by the jwt
// library regardless of the zone the token was created in.
func (a *Authenticator) Validate(tokenString string) (Claims, entity.User, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, entity.User{}, err_usecase.ErrTokenExpired
		}

		return Claims{}, entity.User{}, err_usecase.ErrInvalidSignature
	}

	if !token.Valid {
		return Claims{}, entity.User{}, err_usecase.ErrInvalidSignature
	}

	if len(claims.Subject) == 0 {
		return Claims{}, entity.User{}, err_usecase.ErrMissingSubject
	}

	user, ok := a.directory.Lookup(claims.Subject)
	if !ok {
		return Claims{}, entity.User{}, err_usecase.ErrUnknownSubject
	}

	return claims, user, nil
}
