package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string

		wantToken string
		wantErr   bool
	}{
		{
			name:   "correct bearer header",
			header: "Bearer signed-token",

			wantToken: "signed-token",
		},
		{
			name:   "empty header",
			header: "",

			wantErr: true,
		},
		{
			name:   "scheme without token",
			header: "Bearer",

			wantErr: true,
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",

			wantErr: true,
		},
		{
			name:   "too many parts",
			header: "Bearer one two",

			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GetTokenFromAuthHeader(tt.header)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
