package dto

type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Role       int    `json:"role"`
	EmployeeID *uint  `json:"employee_id"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  int    `json:"role"`
	Token string `json:"token"`
}
