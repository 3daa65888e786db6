package handlers

import (
	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler 处理AI健康助手对话请求
type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

type ChatRequest struct {
	UserID   string             `json:"user_id"`
	Messages []service.ChatTurn `json:"messages" binding:"required"`
}

// Completion godoc
// @Summary AI健康助手对话
// @Description 基于用户健康画像和对话历史生成回复，服务不可用时返回通用建议
// @Tags AI助手
// @Accept json
// @Produce json
// @Param chatRequest body ChatRequest true "对话请求"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /chat/completion [post]
func (h *ChatHandler) Completion(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少对话内容")
		return
	}

	reply := h.chatService.Chat(c.Request.Context(), req.UserID, req.Messages)
	utils.Success(c, gin.H{"reply": reply})
}
