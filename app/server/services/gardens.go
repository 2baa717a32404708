package services

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/models"
	"campo-cidade/app/server/session"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"io"
)

type GardenInput struct {
	Name          string
	Species       string
	DaysToHarvest int
	Address       string
	ContactName   string
	ContactEmail  string
}

// GardenPatch 中为 nil 的字段保持不变
type GardenPatch struct {
	Name          *string
	Species       *string
	DaysToHarvest *int
	Address       *string
	ContactName   *string
	ContactEmail  *string
}

func gardenValidate(garden *models.Garden) error {
	if blank(garden.Name, garden.Species, garden.Address, garden.ContactName, garden.ContactEmail) {
		return newError(ErrValidation, constants.MsgRequiredFields)
	}
	if garden.DaysToHarvest < 1 {
		return newError(ErrValidation, constants.MsgInvalidDays)
	}
	return nil
}

func gardenMapFields(req *GardenPatch, garden *models.Garden) {
	if req.Name != nil {
		garden.Name = *req.Name
	}
	if req.Species != nil {
		garden.Species = *req.Species
	}
	if req.DaysToHarvest != nil {
		garden.DaysToHarvest = *req.DaysToHarvest
	}
	if req.Address != nil {
		garden.Address = *req.Address
	}
	if req.ContactName != nil {
		garden.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		garden.ContactEmail = *req.ContactEmail
	}
}

// CreateGarden 照片按所有者 ID 命名（horta_<ownerID>.jpg），同一用户的新照片会覆盖旧文件
func (s *Services) CreateGarden(ctx context.Context, ownerID uint, in GardenInput, photo io.Reader) (*models.Garden, *IOWarning, error) {
	garden := models.Garden{
		Name:          in.Name,
		UserID:        ownerID,
		Species:       in.Species,
		DaysToHarvest: in.DaysToHarvest,
		ContactName:   in.ContactName,
		Address:       in.Address,
		ContactEmail:  in.ContactEmail,
	}

	// 验证
	if err := gardenValidate(&garden); err != nil {
		return nil, nil, err
	}
	if err := validateIDs[models.User](s.db.WithContext(ctx), []uint{ownerID}); err != nil {
		return nil, nil, err
	}

	// 保存照片，失败时不影响创建
	var warning *IOWarning
	if photo != nil {
		if filePath, err := s.images.SaveGardenPhoto(ownerID, photo); err != nil {
			s.l.Warn("failed to save garden photo", zap.Uint("ownerID", ownerID), zap.Error(err))
			warning = &IOWarning{Err: err}
		} else {
			garden.Photo = filePath
		}
	}

	if err := s.db.WithContext(ctx).Create(&garden).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create garden: %w", err)
	}

	return &garden, warning, nil
}

func (s *Services) ListForOwner(ctx context.Context, ownerID uint) ([]models.Garden, error) {
	gardens := []models.Garden{}
	if err := s.db.WithContext(ctx).
		Where("usuario_id = ?", ownerID).
		Order("horta_id ASC").
		Find(&gardens).Error; err != nil {
		return nil, fmt.Errorf("failed to get gardens of user %d: %w", ownerID, err)
	}

	return gardens, nil
}

// ListAll 只有管理员可以调用
func (s *Services) ListAll(ctx context.Context, actor session.Identity) ([]models.Garden, error) {
	if !actor.IsAdmin {
		return nil, newError(ErrForbidden, constants.MsgAccessDenied)
	}

	gardens := []models.Garden{}
	if err := s.db.WithContext(ctx).Order("horta_id ASC").Find(&gardens).Error; err != nil {
		return nil, fmt.Errorf("failed to get garden list: %w", err)
	}

	return gardens, nil
}

func (s *Services) GetGarden(ctx context.Context, id uint) (*models.Garden, error) {
	var garden models.Garden
	if err := s.db.WithContext(ctx).First(&garden, "horta_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, constants.MsgGardenNotFound)
		}
		return nil, fmt.Errorf("failed to get garden %d: %w", id, err)
	}

	return &garden, nil
}

// UpdateGarden 所有者或管理员可以修改；新照片按菜园 ID 命名并覆盖旧文件
func (s *Services) UpdateGarden(ctx context.Context, actor session.Identity, id uint, req GardenPatch, photo io.Reader) (*models.Garden, *IOWarning, error) {
	// 从数据库中获得
	garden, err := s.GetGarden(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	// 验证权限
	if garden.UserID != actor.ID && !actor.IsAdmin {
		return nil, nil, newError(ErrForbidden, constants.MsgNotGardenOwner)
	}

	gardenMapFields(&req, garden)
	if err := gardenValidate(garden); err != nil {
		return nil, nil, err
	}

	var warning *IOWarning
	if photo != nil {
		if filePath, err := s.images.SaveGardenPhoto(garden.ID, photo); err != nil {
			s.l.Warn("failed to save garden photo", zap.Uint("gardenID", garden.ID), zap.Error(err))
			warning = &IOWarning{Err: err}
		} else {
			garden.Photo = filePath
		}
	}

	// 更新信息
	if err := s.db.WithContext(ctx).Save(garden).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update garden %d: %w", id, err)
	}

	return garden, warning, nil
}

// DeleteGarden 只有管理员可以调用；菜园的动态一并删除，照片文件保留
func (s *Services) DeleteGarden(ctx context.Context, actor session.Identity, id uint) error {
	if !actor.IsAdmin {
		return newError(ErrForbidden, constants.MsgAccessDenied)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("horta_id = ?", id).Delete(&models.FeedPost{}).Error; err != nil {
			return fmt.Errorf("failed to delete feed posts of garden %d: %w", id, err)
		}

		res := tx.Delete(&models.Garden{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete garden %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return newError(ErrNotFound, constants.MsgGardenNotFound)
		}

		return nil
	})
}
