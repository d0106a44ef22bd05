package repository

import (
	"mindmate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepository struct {
	DB *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{DB: db}
}

// FindForUpdate 在事务内按行锁读取（必要时创建）账本头部行。
// 所有账本写操作都以这把锁做按用户串行化。
func (r *EngagementRepository) FindForUpdate(tx *gorm.DB, userID uint) (*model.UserEngagement, error) {
	var eng model.UserEngagement
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(model.UserEngagement{UserID: userID}).
		FirstOrCreate(&eng).Error
	if err != nil {
		return nil, err
	}
	return &eng, nil
}

func (r *EngagementRepository) FindByUser(userID uint) (*model.UserEngagement, error) {
	var eng model.UserEngagement
	err := r.DB.Where(model.UserEngagement{UserID: userID}).FirstOrCreate(&eng).Error
	if err != nil {
		return nil, err
	}
	return &eng, nil
}

func (r *EngagementRepository) Save(tx *gorm.DB, eng *model.UserEngagement) error {
	return tx.Save(eng).Error
}

// UpsertMood 覆盖写入指定日期的心情
func (r *EngagementRepository) UpsertMood(tx *gorm.DB, userID uint, date, mood string) error {
	entry := model.MoodEntry{UserID: userID, Date: date, Mood: mood}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "updated_at"}),
	}).Create(&entry).Error
}

func (r *EngagementRepository) FindMood(userID uint, date string) (*model.MoodEntry, error) {
	var entry model.MoodEntry
	err := r.DB.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpsertJournal 覆盖写入指定日期的日记（包括空内容）
func (r *EngagementRepository) UpsertJournal(tx *gorm.DB, userID uint, date, content string) error {
	entry := model.JournalEntry{UserID: userID, Date: date, Content: content}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&entry).Error
}

func (r *EngagementRepository) FindJournal(userID uint, date string) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.DB.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindChallengeIndexes 返回指定日期已完成的挑战序号
func (r *EngagementRepository) FindChallengeIndexes(db *gorm.DB, userID uint, date string) ([]int, error) {
	var indexes []int
	err := db.Model(&model.ChallengeCompletion{}).
		Where("user_id = ? AND date = ?", userID, date).
		Order("challenge_index").
		Pluck("challenge_index", &indexes).Error
	return indexes, err
}

func (r *EngagementRepository) CreateChallengeCompletion(tx *gorm.DB, userID uint, date string, index int) error {
	return tx.Create(&model.ChallengeCompletion{
		UserID:         userID,
		Date:           date,
		ChallengeIndex: index,
	}).Error
}

func (r *EngagementRepository) DeleteChallengeCompletion(tx *gorm.DB, userID uint, date string, index int) error {
	return tx.Unscoped().
		Where("user_id = ? AND date = ? AND challenge_index = ?", userID, date, index).
		Delete(&model.ChallengeCompletion{}).Error
}
