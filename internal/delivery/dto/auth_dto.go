package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

type TokenResponse struct {
	IDToken string `json:"id_token"`
}
