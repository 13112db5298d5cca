package api

type CredentialsRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	Id int64 `json:"id"`
}
