package service

import (
	"context"
	"fmt"
	"sort"

	"health-backend/internal/models"
	"health-backend/internal/repository"
	"health-backend/internal/simulator"
)

// 聊天上下文取最近多少条采样计算体征均值
const chatContextSamples = 10

// ChatTurn 一轮对话
type ChatTurn struct {
	Role    string `json:"role"`    // user / assistant
	Content string `json:"content"` // 对话内容
}

// ChatService AI健康助手对话
// 每次对话前组装用户健康画像（基本信息、最近评估、近期体征均值），
// 连同对话历史一起交给建议服务，失败时由建议服务兜底。
type ChatService struct {
	userRepo          *repository.UserRepository
	assessmentService *AssessmentService
	history           *simulator.History
	adviceService     *AdviceService
}

func NewChatService(userRepo *repository.UserRepository, assessmentService *AssessmentService,
	history *simulator.History, adviceService *AdviceService) *ChatService {
	return &ChatService{
		userRepo:          userRepo,
		assessmentService: assessmentService,
		history:           history,
		adviceService:     adviceService,
	}
}

// Chat 处理一次对话请求
func (s *ChatService) Chat(ctx context.Context, userID string, messages []ChatTurn) string {
	healthContext := s.healthContext(userID)
	prompt := buildChatPrompt(healthContext, messages)
	return s.adviceService.GetAdvice(ctx, prompt)
}

// healthContext 组装用户健康画像，每一项查不到就跳过
func (s *ChatService) healthContext(userID string) string {
	var username string
	if user, err := s.userRepo.FindByUsername(userID); err == nil {
		username = user.Username
	}

	snapshot := s.assessmentService.LatestSnapshot(userID)

	var samples []models.VitalSample
	if s.history != nil {
		samples = s.history.Snapshot()
	}

	return buildChatContext(username, snapshot, samples)
}

// buildChatContext 生成健康画像文本
func buildChatContext(username string, snapshot *models.AssessmentSnapshot, samples []models.VitalSample) string {
	contextStr := "用户健康画像：\n"

	if username != "" {
		contextStr += fmt.Sprintf("- 用户名: %s\n", username)
	}

	if snapshot != nil && len(snapshot.Predictions) > 0 {
		// 按任务名排序，保证画像稳定可复现
		tasks := make([]string, 0, len(snapshot.Predictions))
		for task := range snapshot.Predictions {
			tasks = append(tasks, task)
		}
		sort.Strings(tasks)

		summary := ""
		for i, task := range tasks {
			if i > 0 {
				summary += "，"
			}
			risk := "低风险"
			if snapshot.Predictions[task].Prediction == 1 {
				risk = "高风险"
			}
			summary += fmt.Sprintf("%s=%s", task, risk)
		}
		contextStr += fmt.Sprintf("- 最近AI评估: %s (时间: %s)\n",
			summary, snapshot.Timestamp.Format("2006-01-02 15:04"))
	}

	if len(samples) > 0 {
		recent := samples
		if len(recent) > chatContextSamples {
			recent = recent[len(recent)-chatContextSamples:]
		}
		sumHR, sumBP := 0, 0
		for _, sample := range recent {
			sumHR += sample.HeartRate
			sumBP += sample.SystolicBP
		}
		contextStr += fmt.Sprintf("- 近期实时体征(均值): 心率 %d bpm, 收缩压 %d mmHg\n",
			sumHR/len(recent), sumBP/len(recent))
	}

	return contextStr
}

// buildChatPrompt 拼接系统提示和对话历史
func buildChatPrompt(healthContext string, messages []ChatTurn) string {
	systemPrompt := "你是一名专业的AI健康助手 'HealthGuard'。\n" +
		healthContext + "\n" +
		"请基于用户的真实健康数据回答。如果涉及具体用药，请提醒线下就医。\n" +
		"回答要亲切、简短。"

	prompt := fmt.Sprintf("System: %s\n\n", systemPrompt)
	for _, msg := range messages {
		role := "Assistant"
		if msg.Role == "user" {
			role = "User"
		}
		prompt += fmt.Sprintf("%s: %s\n", role, msg.Content)
	}
	prompt += "Assistant: "

	return prompt
}
