package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escrima/go-orders-service/internal/app/controller/http/auth/mock"
	"github.com/escrima/go-orders-service/internal/app/model"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
)

func TestToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockTokenIssuer(ctrl)

	type want struct {
		statusCode int
		outputBody string
	}
	tests := []struct {
		name     string
		username string
		password string
		token    string
		issueErr error

		want want
	}{
		{
			name:     "correct credentials",
			username: "admin",
			password: "Iaew-2024$",
			token:    "signed-token",

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:     "empty password for known user",
			username: "admin",
			password: "",
			token:    "signed-token",

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong",
			issueErr: err_usecase.ErrInvalidCredentials,

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: ErrInvalidCreds,
			},
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "Iaew-2024$",
			issueErr: err_usecase.ErrInvalidCredentials,

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: ErrInvalidCreds,
			},
		},
		{
			name:     "signing failure",
			username: "admin",
			password: "Iaew-2024$",
			issueErr: errors.New("key unavailable"),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("username", test.username)
			form.Set("password", test.password)

			request := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(form.Encode()))
			request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			writer := httptest.NewRecorder()

			s.EXPECT().Issue(test.username, test.password).Return(test.token, test.issueErr)

			auth := New(s)
			handler := auth.Token()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if len(test.want.outputBody) != 0 {
				bodyResult, err := io.ReadAll(res.Body)
				require.NoError(t, err)
				assert.Equal(t, test.want.outputBody, strings.TrimSuffix(string(bodyResult), "\n"))
			}

			if test.want.statusCode == http.StatusOK {
				var response model.TokenResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
				assert.Equal(t, test.token, response.AccessToken)
				assert.Equal(t, "bearer", response.TokenType)
			}

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}
