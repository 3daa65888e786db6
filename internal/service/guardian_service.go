package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"health-backend/internal/config"
	"health-backend/internal/models"
	"health-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// 同一用户的同类预警在冷却时间内只触发一次
const alertCooldown = 5 * time.Minute

// GuardianService 监护人预警：阈值检查、去重、邮件通知
type GuardianService struct {
	guardianRepo *repository.GuardianRepository
	cfg          *config.Config

	mutex         sync.Mutex
	lastAlertTime map[string]time.Time // "userID:alertType" -> 上次触发时间
}

func NewGuardianService(guardianRepo *repository.GuardianRepository, cfg *config.Config) *GuardianService {
	return &GuardianService{
		guardianRepo:  guardianRepo,
		cfg:           cfg,
		lastAlertTime: make(map[string]time.Time),
	}
}

// GetConfig 获取某用户的监护配置，不存在时返回默认配置
func (s *GuardianService) GetConfig(userID string) (*models.GuardianSetting, error) {
	setting, err := s.guardianRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &models.GuardianSetting{
			UserID:          userID,
			IsEnabled:       false,
			ThresholdHRHigh: 120,
			ThresholdBPSys:  160,
		}, nil
	}
	return setting, nil
}

// SaveConfig 保存监护配置
func (s *GuardianService) SaveConfig(setting *models.GuardianSetting) error {
	return s.guardianRepo.Save(setting)
}

// Trigger 触发一次预警：记录并发送邮件通知监护人
func (s *GuardianService) Trigger(userID, alertType, value string) (*models.GuardianAlert, error) {
	setting, err := s.GetConfig(userID)
	if err != nil {
		return nil, err
	}

	alert := &models.GuardianAlert{
		Reference: uuid.NewString(),
		UserID:    userID,
		AlertType: alertType,
		Value:     value,
	}
	alert.Delivered = s.sendEmailAlert(setting.ContactEmail, setting.ContactName, alertType, value)

	if err := s.guardianRepo.CreateAlert(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// RecentAlerts 查询某用户最近的预警记录
func (s *GuardianService) RecentAlerts(userID string, limit int) ([]models.GuardianAlert, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.guardianRepo.RecentAlerts(userID, limit)
}

// Watch 作为模拟器观察者检查每条采样
// 超过阈值时按冷却时间去重后触发预警，任何失败只记录日志。
func (s *GuardianService) Watch(sample models.VitalSample) {
	settings, err := s.guardianRepo.ListEnabled()
	if err != nil {
		log.Printf("获取监护配置失败: %v", err)
		return
	}

	for _, setting := range settings {
		if sample.HeartRate > setting.ThresholdHRHigh {
			s.triggerWithCooldown(setting.UserID, "心率过高",
				fmt.Sprintf("%d bpm", sample.HeartRate))
		}
		if sample.SystolicBP > setting.ThresholdBPSys {
			s.triggerWithCooldown(setting.UserID, "血压过高",
				fmt.Sprintf("%d/%d mmHg", sample.SystolicBP, sample.DiastolicBP))
		}
	}
}

// triggerWithCooldown 冷却时间内的同类预警直接忽略
func (s *GuardianService) triggerWithCooldown(userID, alertType, value string) {
	if !s.allowAlert(userID+":"+alertType, time.Now()) {
		return
	}

	if _, err := s.Trigger(userID, alertType, value); err != nil {
		log.Printf("触发预警失败: %v", err)
	}
}

// allowAlert 判定该键的预警是否允许触发，允许时记录本次触发时间
// 同一键在冷却时间内只允许一次，不同键互不影响。
func (s *GuardianService) allowAlert(key string, now time.Time) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if last, ok := s.lastAlertTime[key]; ok && now.Sub(last) < alertCooldown {
		return false
	}
	s.lastAlertTime[key] = now
	return true
}

// sendEmailAlert 发送预警邮件
// 未配置SMTP时只打印模拟邮件日志，返回成功。
func (s *GuardianService) sendEmailAlert(toEmail, contactName, alertType, value string) bool {
	content := fmt.Sprintf(
		"【紧急预警】智能健康管家\n\n亲爱的 %s：\n系统监测到用户的生命体征出现异常！\n\n"+
			"- 报警类型：%s\n- 当前数值：%s\n\n请立即确认用户安全！",
		contactName, alertType, value)

	if s.cfg.SMTP.User == "" || toEmail == "" {
		log.Printf("=== [模拟邮件] 发给 %s ===\n%s", toEmail, content)
		return true
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.cfg.SMTP.User)
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", fmt.Sprintf("SOS紧急预警：%s", alertType))
	message.SetBody("text/plain", content)

	dialer := gomail.NewDialer(s.cfg.SMTP.Host, s.cfg.SMTP.Port, s.cfg.SMTP.User, s.cfg.SMTP.Password)
	if err := dialer.DialAndSend(message); err != nil {
		log.Printf("邮件发送出错: %v", err)
		return false
	}
	return true
}
