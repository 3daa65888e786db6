package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"health-backend/internal/models"
	"health-backend/internal/repository"

	"gorm.io/gorm"
)

type AssessmentService struct {
	assessmentRepo *repository.AssessmentRepository
}

func NewAssessmentService(assessmentRepo *repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
	}
}

// Save 保存用户提交的评估表单和预测结果
func (s *AssessmentService) Save(userID string, formData map[string]interface{}, predictions map[string]models.PredictionResult) (*models.AssessmentRecord, error) {
	if userID == "" {
		userID = "anonymous"
	}

	formJSON, err := json.Marshal(formData)
	if err != nil {
		return nil, err
	}
	predJSON, err := json.Marshal(predictions)
	if err != nil {
		return nil, err
	}

	record := &models.AssessmentRecord{
		UserID:      userID,
		Timestamp:   time.Now(),
		FormData:    string(formJSON),
		Predictions: string(predJSON),
	}
	if err := s.assessmentRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// List 获取全部评估记录
func (s *AssessmentService) List() ([]models.AssessmentRecord, error) {
	return s.assessmentRepo.List()
}

// Load 根据ID加载一条评估记录
func (s *AssessmentService) Load(id uint) (*models.AssessmentRecord, error) {
	record, err := s.assessmentRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("记录不存在")
	}
	return record, err
}

// Delete 根据ID删除一条评估记录
func (s *AssessmentService) Delete(id uint) error {
	deleted, err := s.assessmentRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New("记录不存在")
	}
	return nil
}

// LatestSnapshot 获取某用户最新的评估数据快照
// 没有记录或解析失败时返回 nil，评分引擎按"缺少评估数据"处理。
func (s *AssessmentService) LatestSnapshot(userID string) *models.AssessmentSnapshot {
	record, err := s.assessmentRepo.GetLatestByUser(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("获取用户评估数据失败: %v", err)
		}
		return nil
	}

	return SnapshotFromRecord(record)
}

// SnapshotFromRecord 把持久化记录还原为评估快照
func SnapshotFromRecord(record *models.AssessmentRecord) *models.AssessmentSnapshot {
	snapshot := &models.AssessmentSnapshot{
		UserID:      record.UserID,
		Timestamp:   record.Timestamp,
		FormData:    map[string]interface{}{},
		Predictions: map[string]models.PredictionResult{},
	}

	if err := json.Unmarshal([]byte(record.FormData), &snapshot.FormData); err != nil {
		log.Printf("解析评估表单数据失败: %v", err)
		return nil
	}
	if err := json.Unmarshal([]byte(record.Predictions), &snapshot.Predictions); err != nil {
		log.Printf("解析预测结果失败: %v", err)
		return nil
	}
	return snapshot
}
