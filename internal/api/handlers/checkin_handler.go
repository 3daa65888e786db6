package handlers

import (
	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CheckinHandler 处理签到相关的请求
type CheckinHandler struct {
	checkinService *service.CheckinService
}

func NewCheckinHandler(checkinService *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

type CheckinRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Checkin godoc
// @Summary 今日签到
// @Description 为用户记录今日签到，重复签到返回提示
// @Tags 签到
// @Accept json
// @Produce json
// @Param checkinRequest body CheckinRequest true "用户标识"
// @Success 200 {object} utils.Response
// @Router /checkin [post]
func (h *CheckinHandler) Checkin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}

	checkedIn, message, err := h.checkinService.Checkin(req.UserID)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.SuccessWithMessage(c, gin.H{"checked_in": checkedIn}, message)
}

// Status godoc
// @Summary 查询签到状态
// @Description 返回今日签到情况、累计天数、连续天数和最近签到日期
// @Tags 签到
// @Produce json
// @Param user_id query string true "用户标识"
// @Success 200 {object} utils.Response{data=models.CheckinStatus}
// @Router /checkin/status [get]
func (h *CheckinHandler) Status(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 user_id 参数")
		return
	}

	status, err := h.checkinService.Status(userID)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.Success(c, status)
}
