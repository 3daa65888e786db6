package handlers

import (
	"encoding/json"

	"health-backend/internal/models"
	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AssessmentHandler 处理用户健康评估数据的请求
type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

type SaveAssessmentRequest struct {
	UserID      string                             `json:"user_id"`
	FormData    map[string]interface{}             `json:"form_data"`
	Predictions map[string]models.PredictionResult `json:"predictions"`
}

type RecordIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

// Save godoc
// @Summary 保存评估数据
// @Description 保存用户提交的评估表单和预测结果
// @Tags 评估数据
// @Accept json
// @Produce json
// @Param saveRequest body SaveAssessmentRequest true "评估数据"
// @Success 200 {object} utils.Response
// @Router /assessment/save [post]
func (h *AssessmentHandler) Save(c *gin.Context) {
	var req SaveAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}

	record, err := h.assessmentService.Save(req.UserID, req.FormData, req.Predictions)
	if err != nil {
		utils.Error(c, utils.ERROR, "保存失败: "+err.Error())
		return
	}

	utils.SuccessWithMessage(c, gin.H{"id": record.ID}, "用户数据保存成功")
}

// List godoc
// @Summary 获取评估记录列表
// @Description 返回全部评估记录的概要信息，最新在最前
// @Tags 评估数据
// @Produce json
// @Success 200 {object} utils.Response
// @Router /assessment/list [get]
func (h *AssessmentHandler) List(c *gin.Context) {
	records, err := h.assessmentService.List()
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		items = append(items, gin.H{
			"id":        record.ID,
			"user_id":   record.UserID,
			"timestamp": record.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	utils.Success(c, gin.H{
		"count": len(items),
		"users": items,
	})
}

// Load godoc
// @Summary 加载单条评估记录
// @Description 根据ID加载一条评估记录的完整内容
// @Tags 评估数据
// @Accept json
// @Produce json
// @Param loadRequest body RecordIDRequest true "记录ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /assessment/load [post]
func (h *AssessmentHandler) Load(c *gin.Context) {
	var req RecordIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 id 参数")
		return
	}

	record, err := h.assessmentService.Load(req.ID)
	if err != nil {
		utils.Error(c, utils.NOT_FOUND, err.Error())
		return
	}

	var formData map[string]interface{}
	var predictions map[string]models.PredictionResult
	_ = json.Unmarshal([]byte(record.FormData), &formData)
	_ = json.Unmarshal([]byte(record.Predictions), &predictions)

	utils.SuccessWithMessage(c, gin.H{
		"id":          record.ID,
		"user_id":     record.UserID,
		"timestamp":   record.Timestamp.Format("2006-01-02 15:04:05"),
		"form_data":   formData,
		"predictions": predictions,
	}, "加载成功")
}

// Delete godoc
// @Summary 删除评估记录
// @Description 根据ID删除一条评估记录
// @Tags 评估数据
// @Accept json
// @Produce json
// @Param deleteRequest body RecordIDRequest true "记录ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /assessment/delete [post]
func (h *AssessmentHandler) Delete(c *gin.Context) {
	var req RecordIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 id 参数")
		return
	}

	if err := h.assessmentService.Delete(req.ID); err != nil {
		utils.Error(c, utils.NOT_FOUND, err.Error())
		return
	}

	utils.SuccessWithMessage(c, nil, "删除成功")
}
