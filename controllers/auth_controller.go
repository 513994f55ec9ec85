package controllers

import (
	"studio/dto"
	"studio/response"
	"studio/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{service: services.NewAuthService(db)}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctrl.service.Register(input.Name, input.Email, input.Password, input.Role, input.EmployeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := ctrl.service.Login(input.Email, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	})
}
