package auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   int64         `json:"expiresAt"`
	Admin       AdminResponse `json:"admin"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=10,max=128"`
}
