package services

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/models"
	"context"
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"io"
)

type RegisterInput struct {
	Name            string
	Age             *int
	Phone           string
	Address         string
	Email           string
	Password        string
	ConfirmPassword string
}

func (s *Services) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	// 两次密码必须一致
	if in.Password != in.ConfirmPassword {
		return nil, newError(ErrValidation, constants.MsgPasswordMismatch)
	}
	if blank(in.Name, in.Phone, in.Address, in.Email, in.Password) {
		return nil, newError(ErrValidation, constants.MsgRequiredFields)
	}
	if in.Age != nil && *in.Age < 1 {
		return nil, newError(ErrValidation, constants.MsgInvalidAge)
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(in.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 创建用户，邮箱重复交给数据库的唯一约束
	user := models.User{
		Name:     in.Name,
		Age:      in.Age,
		Phone:    in.Phone,
		Address:  in.Address,
		Email:    in.Email,
		Password: passwordHash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrConstraint, constants.MsgEmailTaken)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *Services) Login(ctx context.Context, email string, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrAuth, constants.MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	} else if !match {
		// 密码不一致
		return nil, newError(ErrAuth, constants.MsgInvalidCredentials)
	}

	return &user, nil
}

// BootstrapAdmin 在管理员邮箱不存在时创建管理员账号，重复调用不会产生新记录
func (s *Services) BootstrapAdmin(ctx context.Context, email string, password string) (bool, error) {
	var counter int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&counter).Error; err != nil {
		return false, fmt.Errorf("failed to get admin count: %w", err)
	} else if counter > 0 {
		return false, nil
	}

	// 创建密码
	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return false, fmt.Errorf("failed to generate password: %w", err)
	}

	// 插入记录
	age := constants.AdminAge
	if err := s.db.WithContext(ctx).Create(&models.User{
		Name:     constants.AdminName,
		Age:      &age,
		Phone:    constants.AdminPhone,
		Address:  constants.AdminAddress,
		Email:    email,
		Password: passwordHash,
		IsAdmin:  true,
	}).Error; err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	return true, nil
}

func (s *Services) Profile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return &user, nil
}

// UpdateProfilePhoto 保存新的头像；写文件失败时记录不变，返回 IOWarning
func (s *Services) UpdateProfilePhoto(ctx context.Context, userID uint, photo io.Reader) (*models.User, *IOWarning, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	filePath, err := s.images.SaveUserPhoto(userID, photo)
	if err != nil {
		s.l.Warn("failed to save profile photo", zap.Uint("userID", userID), zap.Error(err))
		return user, &IOWarning{Err: err}, nil
	}

	// 更新用户信息
	if err := s.db.WithContext(ctx).Model(user).Update("foto_perfil", filePath).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update profile photo: %w", err)
	}
	user.ProfilePhoto = filePath

	return user, nil, nil
}
