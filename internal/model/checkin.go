package model

import (
	"time"

	"gorm.io/gorm"
)

// Checkin 每次成功签到的流水记录
// swagger:model Checkin
type Checkin struct {
	gorm.Model
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"index:idx_user_checkin_at,unique;type:bigint unsigned;not null"`
	CheckinAt    time.Time `gorm:"not null;index:idx_user_checkin_at,unique"`
	StreakDays   int       `gorm:"default:1"` // 签到时点的连续天数
	CoinsAwarded int       `gorm:"default:0"`
}

func (Checkin) TableName() string {
	return "checkins"
}
