package service

import (
	"encoding/json"
	"fmt"
	"time"

	"health-backend/internal/models"
	"health-backend/internal/repository"
	"health-backend/internal/scoring"
	"health-backend/internal/simulator"
)

// ReportService 综合健康报告的生成、保存与趋势查询
type ReportService struct {
	sim               *simulator.Simulator
	history           *simulator.History
	assessmentService *AssessmentService
	reportRepo        *repository.ReportRepository
}

func NewReportService(sim *simulator.Simulator, history *simulator.History,
	assessmentService *AssessmentService, reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{
		sim:               sim,
		history:           history,
		assessmentService: assessmentService,
		reportRepo:        reportRepo,
	}
}

// BuildReport 生成综合健康报告
// 实时摘要 + 用户最新评估快照 + 综合评分 + 数据来源标记。
func (s *ReportService) BuildReport(userID string) models.HealthReport {
	if userID == "" {
		userID = "anonymous"
	}

	realtime := s.history.VitalSignsSummary()
	assessment := s.assessmentService.LatestSnapshot(userID)
	score := scoring.ComputeScore(&realtime, assessment)

	completeness := "realtime_only"
	if assessment != nil {
		completeness = "complete"
	}

	return models.HealthReport{
		Timestamp:      time.Now(),
		UserID:         userID,
		RealtimeData:   realtime,
		UserAssessment: assessment,
		HealthScore:    score,
		DataSources: models.DataSources{
			RealtimeActive:   s.sim.IsRunning(),
			HasUserData:      assessment != nil,
			DataCompleteness: completeness,
		},
	}
}

// Save 持久化一份健康报告并返回引用标识
// 存储失败时返回 error:// 形式的引用而不是错误，由调用方决定如何处理。
func (s *ReportService) Save(report models.HealthReport) string {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Sprintf("error://%v", err)
	}

	record := &models.HealthReportRecord{
		UserID:    report.UserID,
		Timestamp: report.Timestamp,
		Report:    string(payload),
		Score:     report.HealthScore.Score,
		Level:     string(report.HealthScore.Level),
	}
	if err := s.reportRepo.Create(record); err != nil {
		return fmt.Sprintf("error://%v", err)
	}
	return fmt.Sprintf("db://health_reports/%d", record.ID)
}

// Trends 查询健康趋势
// 取最近 limit 条已保存的报告（不是最近 limit 个自然日），最新在最前；
// 没有任何报告时返回"数据不足"标记，这不是错误。
func (s *ReportService) Trends(userID string, limit int) models.TrendResult {
	if limit <= 0 {
		limit = 7
	}

	records, err := s.reportRepo.GetRecent(userID, limit)
	if err != nil {
		return models.TrendResult{
			Trends:  []models.TrendPoint{},
			Summary: fmt.Sprintf("获取趋势失败: %v", err),
		}
	}

	trends := make([]models.TrendPoint, 0, len(records))
	for _, record := range records {
		trends = append(trends, models.TrendPoint{
			Date:  record.Timestamp.Format("2006-01-02"),
			Score: record.Score,
			Level: record.Level,
		})
	}

	return models.TrendResult{
		Trends:      trends,
		Summary:     fmt.Sprintf("过去%d天健康趋势", len(trends)),
		Improvement: improvementFor(trends),
	}
}

// improvementFor 比较最新与最旧评分给出趋势描述
// 少于2条记录时无法比较，返回"数据不足"或"保持稳定"。
func improvementFor(trends []models.TrendPoint) string {
	if len(trends) == 0 {
		return "数据不足"
	}
	if len(trends) < 2 {
		return "保持稳定"
	}

	// 记录按时间倒序,首条最新
	diff := trends[0].Score - trends[len(trends)-1].Score
	switch {
	case diff > 2:
		return "有所改善"
	case diff < -2:
		return "有所下降"
	default:
		return "保持稳定"
	}
}
