package handlers

import (
	"strconv"

	"health-backend/internal/models"
	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GuardianHandler 处理监护人预警配置和触发的请求
type GuardianHandler struct {
	guardianService *service.GuardianService
}

func NewGuardianHandler(guardianService *service.GuardianService) *GuardianHandler {
	return &GuardianHandler{
		guardianService: guardianService,
	}
}

type TriggerRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	AlertType string `json:"alert_type" binding:"required"`
	Value     string `json:"value"`
}

// GetConfig godoc
// @Summary 获取监护配置
// @Description 获取某用户的监护人预警配置，不存在时返回默认配置
// @Tags 监护预警
// @Produce json
// @Param user_id query string true "用户标识"
// @Success 200 {object} utils.Response{data=models.GuardianSetting}
// @Router /guardian/config [get]
func (h *GuardianHandler) GetConfig(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 user_id 参数")
		return
	}

	setting, err := h.guardianService.GetConfig(userID)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.Success(c, setting)
}

// SaveConfig godoc
// @Summary 保存监护配置
// @Description 保存某用户的监护人预警配置，同一用户覆盖旧配置
// @Tags 监护预警
// @Accept json
// @Produce json
// @Param setting body models.GuardianSetting true "监护配置"
// @Success 200 {object} utils.Response
// @Router /guardian/config [post]
func (h *GuardianHandler) SaveConfig(c *gin.Context) {
	var setting models.GuardianSetting
	if err := c.ShouldBindJSON(&setting); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}
	if setting.UserID == "" {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 user_id 参数")
		return
	}

	if err := h.guardianService.SaveConfig(&setting); err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.SuccessWithMessage(c, nil, "配置已保存")
}

// Trigger godoc
// @Summary 手动触发预警
// @Description 记录一次预警并向监护人发送邮件通知
// @Tags 监护预警
// @Accept json
// @Produce json
// @Param triggerRequest body TriggerRequest true "预警信息"
// @Success 200 {object} utils.Response{data=models.GuardianAlert}
// @Router /guardian/trigger [post]
func (h *GuardianHandler) Trigger(c *gin.Context) {
	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}

	alert, err := h.guardianService.Trigger(req.UserID, req.AlertType, req.Value)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.SuccessWithMessage(c, alert, "预警已触发")
}

// RecentAlerts godoc
// @Summary 查询预警记录
// @Description 返回某用户最近的预警记录
// @Tags 监护预警
// @Produce json
// @Param user_id query string true "用户标识"
// @Param limit query int false "返回条数，默认10"
// @Success 200 {object} utils.Response
// @Router /guardian/alerts [get]
func (h *GuardianHandler) RecentAlerts(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 user_id 参数")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	alerts, err := h.guardianService.RecentAlerts(userID, limit)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.Success(c, alerts)
}
