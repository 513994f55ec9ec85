package services

import (
	"errors"
	"time"

	"studio/config"
	apperrors "studio/errors"
	"studio/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn người dùng", err)
	}
	return &user, nil
}

// Register tạo tài khoản đăng nhập cho nhân viên back office
func (s *AuthService) Register(name, email, password string, role int, employeeID *uint) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Không được để trống email, password", apperrors.ErrMissingRequired)
	}

	if _, err := s.GetUserByEmail(email); err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Email đã được sử dụng", apperrors.ErrInvalidInput)
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInternalError, "Không thể băm mật khẩu", err)
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   hashedPassword,
		Role:       role,
		EmployeeID: employeeID,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo người dùng", err)
	}

	return &user, nil
}

// Login kiểm tra mật khẩu và phát hành access token
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", err)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeInternalError, "Không thể tạo token", err)
	}

	return user, token, nil
}
