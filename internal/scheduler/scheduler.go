package scheduler

import (
	"log"
	"strings"

	"health-backend/internal/config"
	"health-backend/internal/repository"
	"health-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// Scheduler 定时任务：每日为所有提交过评估的用户保存一份健康报告快照，
// 为趋势图积累数据点。
type Scheduler struct {
	cron           *cron.Cron
	cfg            *config.Config
	reportService  *service.ReportService
	assessmentRepo *repository.AssessmentRepository
}

func New(cfg *config.Config, reportService *service.ReportService,
	assessmentRepo *repository.AssessmentRepository) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		cfg:            cfg,
		reportService:  reportService,
		assessmentRepo: assessmentRepo,
	}
}

// Start 注册并启动定时任务
func (s *Scheduler) Start() error {
	if !s.cfg.Scheduler.Enabled {
		log.Println("定时任务未开启")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Scheduler.Snapshot, s.snapshotReports); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("定时任务已启动，报告快照: %s", s.cfg.Scheduler.Snapshot)
	return nil
}

// Stop 停止定时任务，等待执行中的任务完成
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("定时任务已停止")
}

// snapshotReports 为每个有评估记录的用户生成并保存报告
// 单个用户保存失败不影响其他用户。
func (s *Scheduler) snapshotReports() {
	userIDs, err := s.assessmentRepo.DistinctUserIDs()
	if err != nil {
		log.Printf("获取用户列表失败，跳过本次报告快照: %v", err)
		return
	}

	saved := 0
	for _, userID := range userIDs {
		report := s.reportService.BuildReport(userID)
		reference := s.reportService.Save(report)
		if strings.HasPrefix(reference, "error://") {
			log.Printf("保存用户 %s 的报告快照失败: %s", userID, reference)
			continue
		}
		saved++
	}
	log.Printf("报告快照完成: %d/%d", saved, len(userIDs))
}
