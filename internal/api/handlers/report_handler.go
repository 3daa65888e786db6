package handlers

import (
	"strconv"
	"strings"

	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler 处理综合健康报告相关的请求
type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

type ReportRequest struct {
	UserID string `json:"user_id"`
}

// BuildReport godoc
// @Summary 生成综合健康报告
// @Description 整合实时数据、评估数据和综合评分生成报告
// @Tags 健康报告
// @Accept json
// @Produce json
// @Param reportRequest body ReportRequest false "用户标识"
// @Success 200 {object} utils.Response{data=models.HealthReport}
// @Router /report [post]
func (h *ReportHandler) BuildReport(c *gin.Context) {
	var req ReportRequest
	_ = c.ShouldBindJSON(&req)

	utils.Success(c, h.reportService.BuildReport(req.UserID))
}

// SaveReport godoc
// @Summary 保存综合健康报告
// @Description 生成并保存当前用户的健康报告，返回引用标识
// @Tags 健康报告
// @Accept json
// @Produce json
// @Param reportRequest body ReportRequest false "用户标识"
// @Success 200 {object} utils.Response
// @Router /report/save [post]
func (h *ReportHandler) SaveReport(c *gin.Context) {
	var req ReportRequest
	_ = c.ShouldBindJSON(&req)

	report := h.reportService.BuildReport(req.UserID)
	reference := h.reportService.Save(report)
	if strings.HasPrefix(reference, "error://") {
		utils.Error(c, utils.ERROR, "保存失败: "+reference)
		return
	}

	utils.SuccessWithMessage(c, gin.H{"reference": reference}, "健康报告已保存")
}

// GetTrends godoc
// @Summary 查询健康趋势
// @Description 返回最近若干条已保存报告的评分趋势
// @Tags 健康报告
// @Produce json
// @Param user_id query string false "用户标识"
// @Param days query int false "查询条数，默认7"
// @Success 200 {object} utils.Response{data=models.TrendResult}
// @Router /report/trends [get]
func (h *ReportHandler) GetTrends(c *gin.Context) {
	userID := c.DefaultQuery("user_id", "anonymous")

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "days 参数必须为整数")
		return
	}

	utils.Success(c, h.reportService.Trends(userID, days))
}
