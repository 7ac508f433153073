package dto

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EmployeeLoginResponse includes the subject id so the client can build its
// profile and SOS routes without decoding the token.
type EmployeeLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

type AdminLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
