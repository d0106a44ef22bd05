package model

// UserEngagement 参与账本的头部行：连胜、积分和两个日期闸门。
// 日期按日历日存字符串（2006-01-02），与时区/时刻无关。
// swagger:model UserEngagement
type UserEngagement struct {
	BaseModel
	UserID        uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"user_id"`
	Streak        int    `gorm:"default:0" json:"streak"`
	Points        int    `gorm:"default:0" json:"points"`
	LastOpenDate  string `gorm:"size:10" json:"last_open_date"`
	LastClaimDate string `gorm:"size:10" json:"last_claim_date"`
}

func (UserEngagement) TableName() string {
	return "user_engagements"
}

// MoodEntry 每个日历日至多一条，可覆盖
type MoodEntry struct {
	BaseModel
	UserID uint   `gorm:"index:idx_mood_user_date,unique;type:bigint unsigned;not null" json:"user_id"`
	Date   string `gorm:"size:10;index:idx_mood_user_date,unique;not null" json:"date"`
	Mood   string `gorm:"size:10;not null" json:"mood"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// JournalEntry 每个日历日至多一条，整体替换而非追加
type JournalEntry struct {
	BaseModel
	UserID  uint   `gorm:"index:idx_journal_user_date,unique;type:bigint unsigned;not null" json:"user_id"`
	Date    string `gorm:"size:10;index:idx_journal_user_date,unique;not null" json:"date"`
	Content string `gorm:"type:text" json:"content"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// ChallengeCompletion 当日挑战的完成标记，(user, date, index) 唯一
type ChallengeCompletion struct {
	BaseModel
	UserID         uint   `gorm:"index:idx_challenge_user_date_idx,unique;type:bigint unsigned;not null" json:"user_id"`
	Date           string `gorm:"size:10;index:idx_challenge_user_date_idx,unique;not null" json:"date"`
	ChallengeIndex int    `gorm:"index:idx_challenge_user_date_idx,unique;not null" json:"challenge_index"`
}

func (ChallengeCompletion) TableName() string {
	return "challenge_completions"
}
