package repository

import (
	"errors"
	"strings"

	"health-backend/internal/models"

	"gorm.io/gorm"
)

// ErrAlreadyCheckedIn 当天重复签到
var ErrAlreadyCheckedIn = errors.New("今天已经签到过了")

type CheckinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// Create 写入一条签到记录，当天已签到时返回 ErrAlreadyCheckedIn
func (r *CheckinRepository) Create(checkin *models.Checkin) error {
	err := r.db.Create(checkin).Error
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrAlreadyCheckedIn
	}
	return err
}

// GetDates 获取某用户全部签到日期，最新在最前
func (r *CheckinRepository) GetDates(userID string) ([]string, error) {
	var dates []string
	err := r.db.Model(&models.Checkin{}).
		Where("user_id = ?", userID).
		Order("checkin_date DESC").
		Pluck("checkin_date", &dates).Error
	return dates, err
}
