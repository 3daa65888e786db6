package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"health-backend/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
)

// fallbackAdvice 建议服务不可用时的兜底建议
const fallbackAdvice = "提示：未能连接到健康建议服务，以下为通用健康建议供参考：\n" +
	"- 保持均衡饮食，控制精制糖和高盐摄入，增加蔬果与优质蛋白摄入。\n" +
	"- 每周至少进行150分钟中等强度有氧运动，并结合力量训练。\n" +
	"- 保持规律作息，确保7-8小时睡眠，减压与情绪管理。\n" +
	"- 体重管理：建议监测体重与腰围，逐步达成健康范围。\n" +
	"- 如存在胸闷胸痛、呼吸困难、持续头晕、明显浮肿、持续异常口渴与尿频等情况，请尽快线下就医。"

// 建议结果的缓存时长
const adviceCacheTTL = 24 * time.Hour

// AdviceService 调用大模型生成健康建议，失败时返回兜底文案
type AdviceService struct {
	client *resty.Client
	cache  *redis.Client
	model  string
}

// chatRequest OpenAI兼容的对话请求体
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewAdviceService(cfg *config.Config) *AdviceService {
	client := resty.New().
		SetBaseURL(cfg.Advice.BaseURL).
		SetTimeout(time.Duration(cfg.Advice.TimeoutSeconds) * time.Second).
		SetHeader("Content-Type", "application/json")
	if cfg.Advice.APIKey != "" {
		client.SetAuthToken(cfg.Advice.APIKey)
	}

	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	return &AdviceService{
		client: client,
		cache:  cache,
		model:  cfg.Advice.Model,
	}
}

// BuildHealthPrompt 根据预测结果构造健康建议提示词
func (s *AdviceService) BuildHealthPrompt(taskName string, inputs map[string]interface{}, prediction int, probability []float64) string {
	positive := 0.0
	if len(probability) > 1 {
		positive = probability[1]
	}

	prompt := fmt.Sprintf(
		"你是一名资深的临床健康顾问，请基于以下模型预测结果，用简体中文给出通俗、可执行的健康建议。\n"+
			"- 任务: %s\n"+
			"- 预测类别: %d (1=高风险/阳性，0=低风险/阴性)\n"+
			"- 模型给出的患病概率(估计): %.2f%%\n"+
			"- 用户关键输入:\n",
		taskName, prediction, positive*100)

	// 按字段名排序，保证提示词稳定可复现
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prompt += fmt.Sprintf("  - %s: %v\n", k, inputs[k])
	}

	prompt += "要求:\n" +
		"1) 先用一句话总结总体风险判断。\n" +
		"2) 给出生活方式与饮食、运动、作息、体重管理、戒烟限酒等方面的具体建议（可分条列出）。\n" +
		"3) 指出需要警惕的症状与自我监测要点。\n" +
		"4) 给出何时需要尽快线下就医的触发条件。\n" +
		"5) 语气温和，避免制造恐慌；不进行诊断，仅提供健康建议。\n" +
		"6) 回答内容写成一段话。"

	return prompt
}

// GetAdvice 获取健康建议，任何失败都退化为兜底文案
func (s *AdviceService) GetAdvice(ctx context.Context, prompt string) string {
	cacheKey := "advice:" + hashPrompt(prompt)

	// 先查缓存
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			return cached
		}
	}

	advice, err := s.callModel(ctx, prompt)
	if err != nil {
		log.Printf("调用建议服务出错: %v", err)
		return fallbackAdvice
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, advice, adviceCacheTTL).Err(); err != nil {
			log.Printf("写入建议缓存失败: %v", err)
		}
	}
	return advice
}

// callModel 请求OpenAI兼容的对话接口
func (s *AdviceService) callModel(ctx context.Context, prompt string) (string, error) {
	if s.client.BaseURL == "" {
		return "", errors.New("未配置建议服务地址")
	}

	result := &chatResponse{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: s.model,
			Messages: []chatMessage{
				{Role: "user", Content: prompt},
			},
		}).
		SetResult(result).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("建议服务返回 %s", resp.Status())
	}
	if len(result.Choices) == 0 {
		return "", errors.New("建议服务返回空结果")
	}
	return result.Choices[0].Message.Content, nil
}

func hashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
