package service

import (
	"errors"
	"time"

	"health-backend/internal/models"
	"health-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type CheckinService struct {
	checkinRepo *repository.CheckinRepository
}

func NewCheckinService(checkinRepo *repository.CheckinRepository) *CheckinService {
	return &CheckinService{
		checkinRepo: checkinRepo,
	}
}

// Checkin 今日签到，重复签到返回提示而不是错误
func (s *CheckinService) Checkin(userID string) (bool, string, error) {
	checkin := &models.Checkin{
		UserID:      userID,
		CheckinDate: time.Now().Format(dateLayout),
	}

	err := s.checkinRepo.Create(checkin)
	if errors.Is(err, repository.ErrAlreadyCheckedIn) {
		return false, "今天已经签到过了", nil
	}
	if err != nil {
		return false, "", err
	}
	return true, "签到成功", nil
}

// Status 签到状态汇总
// 连续天数从今天（未签到则从昨天）向前数连续签到的日期。
func (s *CheckinService) Status(userID string) (*models.CheckinStatus, error) {
	dates, err := s.checkinRepo.GetDates(userID)
	if err != nil {
		return nil, err
	}

	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}

	checkedInToday, streak := computeStreak(dateSet, time.Now())

	recent := dates
	if len(recent) > 7 {
		recent = recent[:7]
	}

	return &models.CheckinStatus{
		CheckedInToday: checkedInToday,
		Total:          len(dateSet),
		Streak:         streak,
		Recent:         recent,
	}, nil
}

// computeStreak 从今天（未签到则从昨天）向前数连续签到的天数
func computeStreak(dateSet map[string]bool, today time.Time) (bool, int) {
	checkedInToday := dateSet[today.Format(dateLayout)]

	anchor := today
	if !checkedInToday {
		anchor = today.AddDate(0, 0, -1)
	}

	streak := 0
	for current := anchor; dateSet[current.Format(dateLayout)]; current = current.AddDate(0, 0, -1) {
		streak++
	}
	return checkedInToday, streak
}
