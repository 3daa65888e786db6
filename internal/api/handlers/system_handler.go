package handlers

import (
	"time"

	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SystemHandler 处理健康检查和系统监控相关的请求
type SystemHandler struct {
	monitorService *service.MonitorService
}

func NewSystemHandler(monitorService *service.MonitorService) *SystemHandler {
	return &SystemHandler{
		monitorService: monitorService,
	}
}

// CheckHealth godoc
// @Summary      健康检查接口
// @Description  返回API服务的运行状态、版本和时间戳信息
// @Tags         系统监控
// @Accept       json
// @Produce      json
// @Success      200  {object}  utils.Response
// @Router       /health [get]
func (h *SystemHandler) CheckHealth(c *gin.Context) {
	status := map[string]interface{}{
		"status":    "up",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "health-backend API",
		"version":   "1.0.0",
	}

	utils.Success(c, status)
}

// GetMetrics godoc
// @Summary      获取系统监控指标
// @Description  返回CPU、内存、运行时长和Goroutine数量
// @Tags         系统监控
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  utils.Response{data=models.SystemMetrics}
// @Router       /system/metrics [get]
func (h *SystemHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.monitorService.GetSystemMetrics()
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.Success(c, metrics)
}
