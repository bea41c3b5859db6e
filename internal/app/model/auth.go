package model

type TokenRequest struct {
	Username string
	Password string
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
