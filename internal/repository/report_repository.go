package repository

import (
	"health-backend/internal/models"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create 保存一条健康报告记录
func (r *ReportRepository) Create(record *models.HealthReportRecord) error {
	return r.db.Create(record).Error
}

// GetRecent 获取某用户最近的 limit 条报告，最新在最前
// 注意：窗口按保存条数计算而不是自然日，同一天保存多条会缩短实际覆盖的日期范围。
func (r *ReportRepository) GetRecent(userID string, limit int) ([]models.HealthReportRecord, error) {
	var records []models.HealthReportRecord
	query := r.db.Order("timestamp DESC").Limit(limit)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Find(&records).Error
	return records, err
}
