package handler

// registerRequest mirrors the public registration payload. Only the three
// identity fields are validated; the rest are free-form account data.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullname"`
	Address  string `json:"address"`
	Role     string `json:"role"     validate:"omitempty,oneof=buyer seller"`
	Wallet   string `json:"wallet"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is returned by both registration and login.
type tokenResponse struct {
	Token string `json:"token"`
}

// msgResponse is the envelope for operations whose only result is a
// confirmation message.
type msgResponse struct {
	Msg string `json:"msg"`
}
