package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port     string `yaml:"port"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	JWT struct {
		Secret     string `yaml:"secret"`
		Expiration string `yaml:"expiration"`
	} `yaml:"jwt"`
	Simulator struct {
		IntervalSeconds  float64 `yaml:"interval_seconds"`  // 采样间隔（秒）
		AlertProbability float64 `yaml:"alert_probability"` // 每次采样产生异常数据的概率
		HistorySize      int     `yaml:"history_size"`      // 历史记录容量
	} `yaml:"simulator"`
	Predictor struct {
		HeartModelPath    string `yaml:"heart_model_path"`
		DiabetesModelPath string `yaml:"diabetes_model_path"`
	} `yaml:"predictor"`
	Advice struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"advice"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
	} `yaml:"smtp"`
	Scheduler struct {
		Enabled  bool   `yaml:"enabled"`
		Snapshot string `yaml:"snapshot"` // 每日报告快照的cron表达式
	} `yaml:"scheduler"`
}

func LoadConfig(filePath string) (*Config, error) {
	config := &Config{}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return config, nil
}

// applyDefaults 为缺省配置项填充默认值
func (c *Config) applyDefaults() {
	if c.Simulator.IntervalSeconds <= 0 {
		c.Simulator.IntervalSeconds = 2.0
	}
	if c.Simulator.AlertProbability <= 0 {
		c.Simulator.AlertProbability = 0.1
	}
	if c.Simulator.HistorySize <= 0 {
		c.Simulator.HistorySize = 100
	}
	if c.Advice.TimeoutSeconds <= 0 {
		c.Advice.TimeoutSeconds = 30
	}
	if c.Scheduler.Snapshot == "" {
		c.Scheduler.Snapshot = "0 2 * * *"
	}
}

func InitConfig() *Config {
	config, err := LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return config
}
