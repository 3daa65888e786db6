package simulator

import (
	"log"
	"sync"
	"time"

	"health-backend/internal/config"
	"health-backend/internal/models"
)

// 观察者通道的缓冲长度，写满时丢弃采样而不是阻塞采样循环
const observerBuffer = 16

// Stop 等待在途采样完成的上限
const stopTimeout = 2 * time.Second

// observer 一个独立的采样消费者，由自己的goroutine驱动
type observer struct {
	name string
	ch   chan models.VitalSample
}

// Simulator 健康监测设备模拟器
// 周期性生成采样，整体替换当前数据，并把采样广播给所有观察者。
// 采样循环是整个系统中唯一后台运行的执行单元。
type Simulator struct {
	gen              *Generator
	interval         time.Duration
	alertProbability float64

	mutex     sync.RWMutex
	running   bool
	hasSample bool
	current   models.VitalSample
	recorder  func(models.VitalSample)
	observers []*observer

	stopChan chan struct{}
	doneChan chan struct{}
}

// New 创建模拟器，配置通过参数注入
func New(gen *Generator, cfg *config.Config) *Simulator {
	return &Simulator{
		gen:              gen,
		interval:         time.Duration(cfg.Simulator.IntervalSeconds * float64(time.Second)),
		alertProbability: cfg.Simulator.AlertProbability,
	}
}

// Start 启动采样循环，重复调用是无害的空操作
// interval/alertProbability 传零值时沿用配置的默认值
func (s *Simulator) Start(interval time.Duration, alertProbability float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		log.Println("健康监测设备已在运行中")
		return
	}

	if interval > 0 {
		s.interval = interval
	}
	if alertProbability > 0 {
		s.alertProbability = alertProbability
	}

	s.running = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	go s.run(s.stopChan, s.doneChan)
	log.Println("健康监测设备已启动...")
}

// Stop 停止采样循环
// 返回前等待在途采样完成（上限 stopTimeout），重复调用是无害的空操作。
func (s *Simulator) Stop() {
	s.mutex.Lock()
	if !s.running {
		s.mutex.Unlock()
		return
	}
	s.running = false
	stopChan, doneChan := s.stopChan, s.doneChan
	s.mutex.Unlock()

	close(stopChan)

	select {
	case <-doneChan:
	case <-time.After(stopTimeout):
		log.Println("等待采样循环退出超时")
	}
	log.Println("健康监测设备已停止")
}

// Close 停止采样并关闭所有观察者通道，释放消费goroutine
// 关闭后的模拟器不应再启动或注册观察者。
func (s *Simulator) Close() {
	s.Stop()

	s.mutex.Lock()
	observers := s.observers
	s.observers = nil
	s.mutex.Unlock()

	for _, obs := range observers {
		close(obs.ch)
	}
}

// run 采样循环主体
func (s *Simulator) run(stopChan, doneChan chan struct{}) {
	defer close(doneChan)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick 生成一条采样并广播
func (s *Simulator) tick() {
	s.mutex.RLock()
	alertProbability := s.alertProbability
	s.mutex.RUnlock()

	sample := s.gen.Sample(alertProbability)

	s.mutex.Lock()
	s.current = sample
	s.hasSample = true
	recorder := s.recorder
	observers := make([]*observer, len(s.observers))
	copy(observers, s.observers)
	s.mutex.Unlock()

	// 先写入历史，再广播给观察者
	if recorder != nil {
		recorder(sample)
	}

	// 非阻塞投递：观察者处理不过来时丢弃本条采样
	for _, obs := range observers {
		select {
		case obs.ch <- sample:
		default:
			log.Printf("观察者 %s 处理过慢，丢弃一条采样", obs.name)
		}
	}
}

// SetRecorder 设置历史记录回调，在每次采样时先于观察者同步执行
func (s *Simulator) SetRecorder(fn func(models.VitalSample)) {
	s.mutex.Lock()
	s.recorder = fn
	s.mutex.Unlock()
}

// RegisterObserver 注册采样观察者，从下一次采样开始生效
// 每个观察者由独立的goroutine消费，单个观察者的故障不影响采样循环和其他观察者。
func (s *Simulator) RegisterObserver(name string, fn func(models.VitalSample)) {
	obs := &observer{
		name: name,
		ch:   make(chan models.VitalSample, observerBuffer),
	}

	go func() {
		for sample := range obs.ch {
			s.invoke(obs.name, fn, sample)
		}
	}()

	s.mutex.Lock()
	s.observers = append(s.observers, obs)
	s.mutex.Unlock()
}

// invoke 执行观察者回调，捕获panic避免影响消费goroutine
func (s *Simulator) invoke(name string, fn func(models.VitalSample), sample models.VitalSample) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("观察者 %s 回调执行错误: %v", name, r)
		}
	}()
	fn(sample)
}

// CurrentSample 返回最新发布的采样，从未启动时返回默认采样
func (s *Simulator) CurrentSample() models.VitalSample {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if !s.hasSample {
		return DefaultSample()
	}
	return s.current
}

// HasSample 是否产生过采样
func (s *Simulator) HasSample() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.hasSample
}

// IsRunning 是否运行中
func (s *Simulator) IsRunning() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.running
}
