package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/model"
)

var (
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("email already registered")
	// ErrPhoneTaken 手机号已被注册
	ErrPhoneTaken = errors.New("phone number already registered")
	// ErrInvalidCredentials 登录凭证不正确
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService 用户服务
type UserService struct {
	db *gorm.DB
}

// NewUserService 创建用户服务实例
func NewUserService() *UserService {
	return &UserService{
		db: database.GetDB(),
	}
}

// Signup 注册新用户,邮箱与手机号都要求唯一
func (s *UserService) Signup(name, phone, email, password string) (*model.User, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	if err := s.db.Model(&model.User{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if count > 0 {
		return nil, ErrPhoneTaken
	}

	user := &model.User{
		Name:  name,
		Phone: phone,
		Email: email,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate 校验邮箱密码,成功时刷新最近登录时间
// 用户不存在和密码错误返回同一个错误,避免探测账号
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	var user model.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return &user, nil
}

// GetUserByID 按主键取用户,不存在时返回 nil
func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
