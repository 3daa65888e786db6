package repository

import (
	"errors"

	"health-backend/internal/models"

	"gorm.io/gorm"
)

type GuardianRepository struct {
	db *gorm.DB
}

func NewGuardianRepository(db *gorm.DB) *GuardianRepository {
	return &GuardianRepository{db: db}
}

// GetByUser 获取某用户的监护配置，不存在时返回 nil
func (r *GuardianRepository) GetByUser(userID string) (*models.GuardianSetting, error) {
	var setting models.GuardianSetting
	err := r.db.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Save 保存监护配置，同一用户覆盖旧配置
func (r *GuardianRepository) Save(setting *models.GuardianSetting) error {
	existing, err := r.GetByUser(setting.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		setting.ID = existing.ID
		setting.CreatedAt = existing.CreatedAt
		return r.db.Save(setting).Error
	}
	return r.db.Create(setting).Error
}

// ListEnabled 获取所有开启预警的监护配置
func (r *GuardianRepository) ListEnabled() ([]models.GuardianSetting, error) {
	var settings []models.GuardianSetting
	err := r.db.Where("is_enabled = ?", true).Find(&settings).Error
	return settings, err
}

// CreateAlert 记录一次已触发的预警
func (r *GuardianRepository) CreateAlert(alert *models.GuardianAlert) error {
	return r.db.Create(alert).Error
}

// RecentAlerts 获取某用户最近的预警记录
func (r *GuardianRepository) RecentAlerts(userID string, limit int) ([]models.GuardianAlert, error) {
	var alerts []models.GuardianAlert
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}
