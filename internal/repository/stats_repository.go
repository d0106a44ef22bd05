package repository

import (
	"mindmate_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// EnsureRow 惰性创建统计行，幂等。已存在时不做任何更新。
func (r *StatsRepository) EnsureRow(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where(model.UserStats{UserID: userID}).FirstOrCreate(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) FindByUser(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// FindByUserForUpdate 在事务内按行锁读取统计行，签到过程的串行化点
func (r *StatsRepository) FindByUserForUpdate(tx *gorm.DB, userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(model.UserStats{UserID: userID}).
		FirstOrCreate(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) Save(tx *gorm.DB, stats *model.UserStats) error {
	return tx.Save(stats).Error
}
