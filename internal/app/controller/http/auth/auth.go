package auth

import (
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/escrima/go-orders-service/internal/app/controller/http/utils"
	"github.com/escrima/go-orders-service/internal/app/model"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
)

const (
	ErrInvalidCreds = "Could not validate credentials"

	tokenType = "bearer"
)

type TokenIssuer interface {
	Issue(username, password string) (string, error)
}

type Auth struct {
	issuer TokenIssuer
}

func New(issuer TokenIssuer) Auth {
	return Auth{
		issuer: issuer,
	}
}

// Token handles POST /api/v1/token: an url-encoded username/password form
// exchanged for a short-lived bearer token. The response never reveals which
// check failed.
func (h *Auth) Token() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		if err != nil {
			zap.L().Error("error while parsing token request form", zap.Error(err))
			http.Error(w, ErrInvalidCreds, http.StatusUnauthorized)
			return
		}

		request := model.TokenRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}

		token, err := h.issuer.Issue(request.Username, request.Password)
		if err != nil {
			if err_usecase.IsAuthError(err) {
				zap.L().Info("token request rejected", zap.String("username", request.Username))
				http.Error(w, ErrInvalidCreds, http.StatusUnauthorized)
				return
			}

			zap.L().Error("error while issuing token", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.TokenResponse{
			AccessToken: token,
			TokenType:   tokenType,
		})
	}
}
