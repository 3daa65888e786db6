package handlers

import (
	"health-backend/internal/predictor"
	"health-backend/internal/service"
	"health-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PredictHandler 处理疾病风险预测和健康建议的请求
type PredictHandler struct {
	heartModel    *predictor.LogisticModel
	diabetesModel *predictor.LogisticModel
	adviceService *service.AdviceService
}

func NewPredictHandler(heartModel, diabetesModel *predictor.LogisticModel,
	adviceService *service.AdviceService) *PredictHandler {
	return &PredictHandler{
		heartModel:    heartModel,
		diabetesModel: diabetesModel,
		adviceService: adviceService,
	}
}

type DiabetesRequest struct {
	BloodPressure *float64 `json:"BloodPressure" binding:"required"`
	Age           *float64 `json:"Age" binding:"required"`
	BMI           *float64 `json:"BMI" binding:"required"`
	Pregnancies   *float64 `json:"Pregnancies" binding:"required"`
}

type HeartRequest struct {
	Age        *float64 `json:"age" binding:"required"`
	HasAnaemia *float64 `json:"has_anaemia" binding:"required"`
	Diabetes   *float64 `json:"Diabetes" binding:"required"`
	HighBP     *float64 `json:"HighBP" binding:"required"`
	Sex        *float64 `json:"Sex" binding:"required"`
	Smoker     *float64 `json:"Smoker" binding:"required"`
}

type PromptRequest struct {
	TaskName    string                 `json:"task_name"`
	Inputs      map[string]interface{} `json:"inputs"`
	Prediction  int                    `json:"prediction"`
	Probability []float64              `json:"probability"`
}

type AdviceRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// PredictDiabetes godoc
// @Summary 糖尿病风险预测
// @Description 根据血压、年龄、BMI和孕次预测糖尿病风险
// @Tags 风险预测
// @Accept json
// @Produce json
// @Param diabetesRequest body DiabetesRequest true "预测输入"
// @Success 200 {object} utils.Response{data=models.PredictionResult}
// @Failure 400 {object} utils.Response
// @Router /predict/diabetes [post]
func (h *PredictHandler) PredictDiabetes(c *gin.Context) {
	var req DiabetesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少必要字段: "+err.Error())
		return
	}

	result, err := h.diabetesModel.Predict([]float64{
		*req.BloodPressure, *req.Age, *req.BMI, *req.Pregnancies,
	})
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.Success(c, result)
}

// PredictHeart godoc
// @Summary 心脏病风险预测
// @Description 根据年龄、贫血、糖尿病、高血压、性别和吸烟情况预测心脏病风险
// @Tags 风险预测
// @Accept json
// @Produce json
// @Param heartRequest body HeartRequest true "预测输入"
// @Success 200 {object} utils.Response{data=models.PredictionResult}
// @Failure 400 {object} utils.Response
// @Router /predict/heart [post]
func (h *PredictHandler) PredictHeart(c *gin.Context) {
	var req HeartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少必要字段: "+err.Error())
		return
	}

	result, err := h.heartModel.Predict([]float64{
		*req.Age, *req.HasAnaemia, *req.Diabetes, *req.HighBP, *req.Sex, *req.Smoker,
	})
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.Success(c, result)
}

// BuildPrompt godoc
// @Summary 构造健康建议提示词
// @Description 根据预测结果构造大模型提示词
// @Tags 风险预测
// @Accept json
// @Produce json
// @Param promptRequest body PromptRequest true "提示词输入"
// @Success 200 {object} utils.Response
// @Router /predict/prompt [post]
func (h *PredictHandler) BuildPrompt(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}

	prompt := h.adviceService.BuildHealthPrompt(req.TaskName, req.Inputs, req.Prediction, req.Probability)
	utils.Success(c, gin.H{"prompt": prompt})
}

// GetAdvice godoc
// @Summary 获取健康建议
// @Description 调用大模型生成健康建议，服务不可用时返回通用建议
// @Tags 风险预测
// @Accept json
// @Produce json
// @Param adviceRequest body AdviceRequest true "提示词"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /predict/advice [post]
func (h *PredictHandler) GetAdvice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "缺少 prompt")
		return
	}

	utils.Success(c, gin.H{"result": h.adviceService.GetAdvice(c.Request.Context(), req.Prompt)})
}
