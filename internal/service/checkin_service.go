package service

import (
	"mindmate_backend/internal/ledger"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// CheckinService 服务端权威的每日签到过程。
// 整个过程在一个事务里执行，统计行加行锁，响应即权威状态，
// 客户端任何本地账目都应被它整体覆盖而不是合并。
type CheckinService struct {
	StatsRepo   *repository.StatsRepository
	CheckinRepo *repository.CheckinRepository
	DB          *gorm.DB
	RewardCoins int
}

func NewCheckinService(statsRepo *repository.StatsRepository, checkinRepo *repository.CheckinRepository, db *gorm.DB, rewardCoins int) *CheckinService {
	return &CheckinService{
		StatsRepo:   statsRepo,
		CheckinRepo: checkinRepo,
		DB:          db,
		RewardCoins: rewardCoins,
	}
}

// NextStreak 按日历日间隔推进连胜。
// 同一天第二次签到返回 ErrAlreadyCheckedIn；恰隔一天加一；
// 其余情况（含时钟回拨）重置为 1。从未签到过返回 1。
func NextStreak(last *time.Time, now time.Time, current int) (int, error) {
	if last == nil {
		return 1, nil
	}
	gap := ledger.DaysBetween(last.Format(util.DateFormat), now.Format(util.DateFormat))
	switch {
	case gap == 0:
		return current, util.ErrAlreadyCheckedIn
	case gap == 1:
		return current + 1, nil
	default:
		return 1, nil
	}
}

// PerformDailyCheckin 原子签到：推进连胜、累计金币、写入流水。
// 失败时不改动任何状态，错误原样上抛给调用方。
func (s *CheckinService) PerformDailyCheckin(userID uint) (*model.UserStats, error) {
	now := time.Now()

	var out *model.UserStats
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		stats, err := s.StatsRepo.FindByUserForUpdate(tx, userID)
		if err != nil {
			return err
		}

		streak, err := NextStreak(stats.LastCheckin, now, stats.CurrentStreak)
		if err != nil {
			return err
		}

		stats.CurrentStreak = streak
		if streak > stats.LongestStreak {
			stats.LongestStreak = streak
		}
		stats.Coins += s.RewardCoins
		stats.LastCheckin = &now

		if err := s.StatsRepo.Save(tx, stats); err != nil {
			return err
		}

		record := &model.Checkin{
			UserID:       userID,
			CheckinAt:    now,
			StreakDays:   streak,
			CoinsAwarded: s.RewardCoins,
		}
		if err := s.CheckinRepo.Create(tx, record); err != nil {
			return err
		}

		out = stats
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TotalCheckins 返回用户累计签到次数
func (s *CheckinService) TotalCheckins(userID uint) (int64, error) {
	return s.CheckinRepo.GetCheckinCountByUser(userID)
}

// GetStats 返回统计行，必要时惰性创建；创建失败不致命
func (s *CheckinService) GetStats(userID uint) (*model.UserStats, error) {
	if stats, err := s.StatsRepo.EnsureRow(userID); err == nil {
		return stats, nil
	}
	// 建行失败时仍尝试读取既有行，读不到才报错
	return s.StatsRepo.FindByUser(userID)
}
