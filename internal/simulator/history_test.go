package simulator

import (
	"strings"
	"testing"
	"time"

	"health-backend/internal/models"
)

func sampleAt(hr int, ts time.Time) models.VitalSample {
	return models.VitalSample{
		HeartRate:   hr,
		BloodOxygen: 98,
		Temperature: 36.5,
		SystolicBP:  120,
		DiastolicBP: 80,
		Timestamp:   ts,
	}
}

// TestHistoryCapacity 测试历史记录超出容量时淘汰最旧的采样
func TestHistoryCapacity(t *testing.T) {
	sim := New(NewGeneratorWithSeed(1), newTestConfig())
	h := NewHistory(sim, 5)

	now := time.Now()
	for i := 0; i < 8; i++ {
		h.Record(sampleAt(60+i, now))
	}

	if h.Len() != 5 {
		t.Fatalf("期望保留 5 条记录,实际 %d 条", h.Len())
	}

	snapshot := h.Snapshot()
	// 前3条已被淘汰,最旧的应是第4条(心率63)
	if snapshot[0].HeartRate != 63 {
		t.Errorf("最旧记录心率期望 63,实际 %d", snapshot[0].HeartRate)
	}
	if snapshot[4].HeartRate != 67 {
		t.Errorf("最新记录心率期望 67,实际 %d", snapshot[4].HeartRate)
	}
}

// TestSnapshotIsCopy 测试快照是副本,修改不影响内部状态
func TestSnapshotIsCopy(t *testing.T) {
	sim := New(NewGeneratorWithSeed(2), newTestConfig())
	h := NewHistory(sim, 10)

	h.Record(sampleAt(70, time.Now()))

	snapshot := h.Snapshot()
	snapshot[0].HeartRate = 999

	if h.Snapshot()[0].HeartRate != 70 {
		t.Error("修改快照影响了内部历史记录")
	}
}

// TestClassifyNormal 测试全部正常时的分类结果
func TestClassifyNormal(t *testing.T) {
	status := Classify(sampleAt(75, time.Now()))

	if status.OverallStatus != models.OverallNormal {
		t.Errorf("整体状态期望 %s,实际 %s", models.OverallNormal, status.OverallStatus)
	}
	if len(status.Alerts) != 0 {
		t.Errorf("正常采样不应有警告,实际 %v", status.Alerts)
	}
	if status.HeartRate.Status != models.MetricNormal {
		t.Errorf("心率状态期望 normal,实际 %s", status.HeartRate.Status)
	}
	if status.BloodPressure.Value != "120/80" {
		t.Errorf("血压展示值期望 120/80,实际 %v", status.BloodPressure.Value)
	}
}

// TestClassifyAlerts 测试各项指标越界时的警告
func TestClassifyAlerts(t *testing.T) {
	sample := models.VitalSample{
		HeartRate:   120,
		BloodOxygen: 88,
		Temperature: 38.5,
		SystolicBP:  140,
		DiastolicBP: 90,
		Timestamp:   time.Now(),
	}
	status := Classify(sample)

	if status.OverallStatus != models.OverallWarning {
		t.Errorf("整体状态期望 %s,实际 %s", models.OverallWarning, status.OverallStatus)
	}
	if len(status.Alerts) != 4 {
		t.Fatalf("期望 4 条警告,实际 %d 条: %v", len(status.Alerts), status.Alerts)
	}

	expected := []string{
		"心率偏高: 120 bpm",
		"血氧偏低: 88%",
		"体温偏高: 38.5°C",
		"血压偏高: 140/90 mmHg",
	}
	for i, want := range expected {
		if status.Alerts[i] != want {
			t.Errorf("警告[%d]期望 %q,实际 %q", i, want, status.Alerts[i])
		}
	}
}

// TestClassifyLowBounds 测试偏低方向的警告
func TestClassifyLowBounds(t *testing.T) {
	sample := models.VitalSample{
		HeartRate:   55,
		BloodOxygen: 98,
		Temperature: 35.8,
		SystolicBP:  110,
		DiastolicBP: 70,
		Timestamp:   time.Now(),
	}
	status := Classify(sample)

	if len(status.Alerts) != 2 {
		t.Fatalf("期望 2 条警告,实际 %v", status.Alerts)
	}
	if !strings.Contains(status.Alerts[0], "心率偏低") {
		t.Errorf("期望心率偏低警告,实际 %q", status.Alerts[0])
	}
	if !strings.Contains(status.Alerts[1], "体温偏低") {
		t.Errorf("期望体温偏低警告,实际 %q", status.Alerts[1])
	}
}

// TestSummaryDisconnected 测试模拟器从未启动时报告设备未连接
func TestSummaryDisconnected(t *testing.T) {
	sim := New(NewGeneratorWithSeed(3), newTestConfig())
	h := NewHistory(sim, 10)

	status := h.VitalSignsSummary()
	if status.OverallStatus != models.OverallDisconnected {
		t.Errorf("整体状态期望 %s,实际 %s", models.OverallDisconnected, status.OverallStatus)
	}
	if len(status.Alerts) != 1 || status.Alerts[0] != "无法获取实时数据" {
		t.Errorf("期望单条未连接警告,实际 %v", status.Alerts)
	}
}

// TestHistoryRecordsFromSampler 测试历史记录挂接采样流后自动累积
func TestHistoryRecordsFromSampler(t *testing.T) {
	sim := New(NewGeneratorWithSeed(4), newTestConfig())
	h := NewHistory(sim, 100)

	sim.Start(10*time.Millisecond, 0)
	defer sim.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for h.Len() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if h.Len() < 3 {
		t.Fatalf("等待2秒历史记录不足3条,实际 %d 条", h.Len())
	}

	display := h.CurrentDisplayData()
	if display.Summary.OverallStatus == models.OverallDisconnected {
		t.Error("有采样后不应报告设备未连接")
	}
	if len(display.History) == 0 {
		t.Error("展示数据中历史记录为空")
	}
}
