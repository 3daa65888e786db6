package models

import "time"

// Checkin 用户签到记录，每人每天最多一条
type Checkin struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:uniq_user_date"`
	CheckinDate string    `json:"checkin_date" gorm:"size:10;not null;uniqueIndex:uniq_user_date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// CheckinStatus 签到状态汇总
type CheckinStatus struct {
	CheckedInToday bool     `json:"checked_in_today"` // 今天是否已签到
	Total          int      `json:"total"`            // 累计签到天数
	Streak         int      `json:"streak"`           // 连续签到天数
	Recent         []string `json:"recent"`           // 最近7次签到日期
}
