package service

import (
	"math/rand"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"
	"time"
)

const motivationRotateInterval = 12 * time.Hour

// MotivationService 首页激励短句的轮换与后台管理
type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

func (s *MotivationService) GetAllMotivations() ([]*model.Motivation, error) {
	return s.MotivationRepo.GetAll()
}

// GetCurrentMotivation 返回当前展示的激励短句。
// 当前短句使用超过 12 小时且还有其他启用短句时，随机切换为另一条。
func (s *MotivationService) GetCurrentMotivation() (string, error) {
	current, err := s.MotivationRepo.GetCurrent()
	if err != nil {
		// 没有当前使用的，取第一条启用的顶上
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return "", err
		}
		s.MotivationRepo.SetCurrent(enabled[0].ID)
		return enabled[0].Content, nil
	}

	if time.Since(current.LastUsedAt) < motivationRotateInterval {
		return current.Content, nil
	}

	enabled, err := s.MotivationRepo.GetEnabled()
	if err != nil || len(enabled) <= 1 {
		return current.Content, nil
	}

	// 从启用列表里随机挑一条，排除当前这条
	var candidates []*model.Motivation
	for _, m := range enabled {
		if m.ID != current.ID {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return current.Content, nil
	}
	next := candidates[rand.Intn(len(candidates))]
	s.MotivationRepo.SetCurrent(next.ID)
	return next.Content, nil
}

func (s *MotivationService) CreateMotivation(content string) error {
	return s.MotivationRepo.Create(&model.Motivation{
		Content:   content,
		IsEnabled: true,
	})
}

func (s *MotivationService) UpdateMotivation(id uint, content string, isEnabled bool) error {
	var motivation model.Motivation
	if err := s.MotivationRepo.DB.First(&motivation, id).Error; err != nil {
		return util.ErrMotivationNotFound
	}

	// 禁用当前使用的短句前，确保还有别的启用短句可轮换
	if !isEnabled {
		if current, err := s.MotivationRepo.GetCurrent(); err == nil && current.ID == id {
			enabled, err := s.MotivationRepo.GetEnabled()
			if err != nil {
				return err
			}
			if len(enabled) <= 1 {
				return util.ErrMotivationLastOne
			}
		}
	}

	motivation.Content = content
	motivation.IsEnabled = isEnabled
	return s.MotivationRepo.Update(&motivation)
}

func (s *MotivationService) DeleteMotivation(id uint) error {
	if current, err := s.MotivationRepo.GetCurrent(); err == nil && current.ID == id {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return util.ErrMotivationLastOne
		}
	}
	return s.MotivationRepo.Delete(id)
}

// SwitchToMotivation 立即切换到指定短句，要求目标处于启用状态
func (s *MotivationService) SwitchToMotivation(id uint) error {
	motivations, err := s.MotivationRepo.GetAll()
	if err != nil {
		return err
	}
	for _, m := range motivations {
		if m.ID == id {
			if !m.IsEnabled {
				return util.ErrMotivationDisabled
			}
			return s.MotivationRepo.SetCurrent(id)
		}
	}
	return util.ErrMotivationNotFound
}
