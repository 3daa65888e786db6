package simulator

import (
	"fmt"
	"sync"
	"time"

	"health-backend/internal/models"
	"health-backend/pkg/utils"
)

// History 有界的采样历史聚合器
// 只有采样循环写入，任意请求协程读取，读取只返回副本。
type History struct {
	sim      *Simulator
	mutex    sync.RWMutex
	samples  []models.VitalSample
	capacity int
}

// NewHistory 创建历史聚合器并挂接到模拟器的采样流
func NewHistory(sim *Simulator, capacity int) *History {
	if capacity <= 0 {
		capacity = 100
	}
	h := &History{
		sim:      sim,
		samples:  make([]models.VitalSample, 0, capacity),
		capacity: capacity,
	}
	sim.SetRecorder(h.Record)
	return h
}

// Record 追加一条采样，超出容量时淘汰最旧的记录
func (h *History) Record(sample models.VitalSample) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.samples = append(h.samples, sample)
	if len(h.samples) > h.capacity {
		h.samples = h.samples[1:]
	}
}

// Snapshot 返回全部历史记录的副本
func (h *History) Snapshot() []models.VitalSample {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	out := make([]models.VitalSample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Len 当前历史记录条数
func (h *History) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.samples)
}

// CurrentDisplayData 返回实时监测页面所需的全部数据
func (h *History) CurrentDisplayData() models.DisplayData {
	return models.DisplayData{
		Current: h.sim.CurrentSample(),
		Summary: h.VitalSignsSummary(),
		History: h.Snapshot(),
	}
}

// VitalSignsSummary 返回当前采样的生命体征摘要
// 模拟器从未产生过采样时，报告"设备未连接"。
func (h *History) VitalSignsSummary() models.VitalStatus {
	if !h.sim.HasSample() {
		return DisconnectedStatus()
	}
	return Classify(h.sim.CurrentSample())
}

// Classify 按固定参考范围对一条采样做无状态分类
func Classify(sample models.VitalSample) models.VitalStatus {
	status := models.VitalStatus{
		HeartRate: models.VitalMetric{
			Value:  sample.HeartRate,
			Unit:   "bpm",
			Status: models.MetricNormal,
			Range:  "60-100",
		},
		BloodOxygen: models.VitalMetric{
			Value:  sample.BloodOxygen,
			Unit:   "%",
			Status: models.MetricNormal,
			Range:  "≥95",
		},
		Temperature: models.VitalMetric{
			Value:  sample.Temperature,
			Unit:   "°C",
			Status: models.MetricNormal,
			Range:  "36.0-37.2",
		},
		BloodPressure: models.VitalMetric{
			Value:  utils.FormatBP(sample.SystolicBP, sample.DiastolicBP),
			Unit:   "mmHg",
			Status: models.MetricNormal,
			Range:  "≤130/85",
		},
		OverallStatus: models.OverallNormal,
		Alerts:        []string{},
		LastUpdate:    sample.Timestamp,
	}

	// 心率检查
	if sample.HeartRate > 100 {
		status.HeartRate.Status = models.MetricWarning
		status.Alerts = append(status.Alerts, fmt.Sprintf("心率偏高: %d bpm", sample.HeartRate))
	} else if sample.HeartRate < 60 {
		status.HeartRate.Status = models.MetricWarning
		status.Alerts = append(status.Alerts, fmt.Sprintf("心率偏低: %d bpm", sample.HeartRate))
	}

	// 血氧检查
	if sample.BloodOxygen < 95 {
		status.BloodOxygen.Status = models.MetricWarning
		status.Alerts = append(status.Alerts, fmt.Sprintf("血氧偏低: %d%%", sample.BloodOxygen))
	}

	// 体温检查
	if sample.Temperature > 37.2 {
		status.Temperature.Status = models.MetricWarning
		status.Alerts = append(status.Alerts, fmt.Sprintf("体温偏高: %.1f°C", sample.Temperature))
	} else if sample.Temperature < 36.0 {
		status.Temperature.Status = models.MetricWarning
		status.Alerts = append(status.Alerts, fmt.Sprintf("体温偏低: %.1f°C", sample.Temperature))
	}

	// 血压检查
	if sample.SystolicBP > 130 || sample.DiastolicBP > 85 {
		status.BloodPressure.Status = models.MetricWarning
		status.Alerts = append(status.Alerts,
			fmt.Sprintf("血压偏高: %d/%d mmHg", sample.SystolicBP, sample.DiastolicBP))
	}

	// 任何一项警告即整体警告
	if len(status.Alerts) > 0 {
		status.OverallStatus = models.OverallWarning
	}

	return status
}

// DisconnectedStatus 设备未连接时的默认摘要
func DisconnectedStatus() models.VitalStatus {
	def := DefaultSample()
	return models.VitalStatus{
		HeartRate:     models.VitalMetric{Value: def.HeartRate, Unit: "bpm", Status: models.MetricNormal, Range: "60-100"},
		BloodOxygen:   models.VitalMetric{Value: def.BloodOxygen, Unit: "%", Status: models.MetricNormal, Range: "≥95"},
		Temperature:   models.VitalMetric{Value: def.Temperature, Unit: "°C", Status: models.MetricNormal, Range: "36.0-37.2"},
		BloodPressure: models.VitalMetric{Value: utils.FormatBP(def.SystolicBP, def.DiastolicBP), Unit: "mmHg", Status: models.MetricNormal, Range: "≤130/85"},
		OverallStatus: models.OverallDisconnected,
		Alerts:        []string{"无法获取实时数据"},
		LastUpdate:    time.Now(),
	}
}
