package repository

import (
	"health-backend/internal/models"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create 保存一条评估记录
func (r *AssessmentRepository) Create(record *models.AssessmentRecord) error {
	return r.db.Create(record).Error
}

// GetByID 根据ID获取评估记录
func (r *AssessmentRepository) GetByID(id uint) (*models.AssessmentRecord, error) {
	var record models.AssessmentRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete 删除评估记录，返回是否存在
func (r *AssessmentRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.AssessmentRecord{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 获取全部评估记录，最新在最前
func (r *AssessmentRepository) List() ([]models.AssessmentRecord, error) {
	var records []models.AssessmentRecord
	err := r.db.Order("timestamp DESC").Find(&records).Error
	return records, err
}

// GetLatestByUser 获取某用户最新的一条评估记录
func (r *AssessmentRepository) GetLatestByUser(userID string) (*models.AssessmentRecord, error) {
	var record models.AssessmentRecord
	err := r.db.Where("user_id = ?", userID).Order("timestamp DESC").First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DistinctUserIDs 获取所有提交过评估的用户ID
func (r *AssessmentRepository) DistinctUserIDs() ([]string, error) {
	var userIDs []string
	err := r.db.Model(&models.AssessmentRecord{}).Distinct("user_id").Pluck("user_id", &userIDs).Error
	return userIDs, err
}
