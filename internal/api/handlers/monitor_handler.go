package handlers

import (
	"time"

	"health-backend/internal/simulator"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MonitorHandler 处理实时监测相关的请求
type MonitorHandler struct {
	sim     *simulator.Simulator
	history *simulator.History
}

func NewMonitorHandler(sim *simulator.Simulator, history *simulator.History) *MonitorHandler {
	return &MonitorHandler{
		sim:     sim,
		history: history,
	}
}

// StartRequest 启动监测的可选参数
type StartRequest struct {
	IntervalSeconds  float64 `json:"interval_seconds"`
	AlertProbability float64 `json:"alert_probability"`
}

// Start godoc
// @Summary 启动实时监测
// @Description 启动健康数据模拟器，重复调用无副作用
// @Tags 实时监测
// @Accept json
// @Produce json
// @Param startRequest body StartRequest false "启动参数"
// @Success 200 {object} utils.Response
// @Router /monitor/start [post]
func (h *MonitorHandler) Start(c *gin.Context) {
	var req StartRequest
	_ = c.ShouldBindJSON(&req)

	h.sim.Start(time.Duration(req.IntervalSeconds*float64(time.Second)), req.AlertProbability)
	utils.SuccessWithMessage(c, nil, "实时监测已启动")
}

// Stop godoc
// @Summary 停止实时监测
// @Description 停止健康数据模拟器，等待当前采样完成后返回
// @Tags 实时监测
// @Produce json
// @Success 200 {object} utils.Response
// @Router /monitor/stop [post]
func (h *MonitorHandler) Stop(c *gin.Context) {
	h.sim.Stop()
	utils.SuccessWithMessage(c, nil, "实时监测已停止")
}

// GetData godoc
// @Summary 获取实时数据
// @Description 返回当前采样、状态摘要和历史记录
// @Tags 实时监测
// @Produce json
// @Success 200 {object} utils.Response{data=models.DisplayData}
// @Router /monitor/data [get]
func (h *MonitorHandler) GetData(c *gin.Context) {
	utils.Success(c, h.history.CurrentDisplayData())
}

// GetSummary godoc
// @Summary 获取生命体征摘要
// @Description 返回各项指标的数值、状态和参考范围
// @Tags 实时监测
// @Produce json
// @Success 200 {object} utils.Response{data=models.VitalStatus}
// @Router /monitor/summary [get]
func (h *MonitorHandler) GetSummary(c *gin.Context) {
	utils.Success(c, h.history.VitalSignsSummary())
}
