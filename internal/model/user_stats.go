package model

import "time"

// UserStats 服务端权威的签到统计行，check-in 过程是它唯一的写入方。
// swagger:model UserStats
type UserStats struct {
	BaseModel
	UserID        uint       `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"user_id"`
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	LongestStreak int        `gorm:"default:0" json:"longest_streak"`
	Coins         int        `gorm:"default:0" json:"coins"`
	LastCheckin   *time.Time `json:"last_checkin"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
