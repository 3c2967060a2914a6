package dto

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
}

// TokenRequest is accepted form-encoded (OAuth2 password flow style) as well
// as JSON.
type TokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
