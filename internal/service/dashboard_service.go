package service

import (
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"
	"time"
)

// DashboardService 聚合首页需要的所有数据，单次请求出全量
type DashboardService struct {
	UserService       *UserService
	CheckinService    *CheckinService
	EngagementService *EngagementService
	MotivationService *MotivationService
}

func NewDashboardService(
	userService *UserService,
	checkinService *CheckinService,
	engagementService *EngagementService,
	motivationService *MotivationService,
) *DashboardService {
	return &DashboardService{
		UserService:       userService,
		CheckinService:    checkinService,
		EngagementService: engagementService,
		MotivationService: motivationService,
	}
}

type Dashboard struct {
	User            *model.User      `json:"user"`
	Stats           *model.UserStats `json:"stats"`
	TotalCheckins   int64            `json:"totalCheckins"`
	Today           *DayState        `json:"today"`
	DailyMotivation string           `json:"dailyMotivation"`
}

func (s *DashboardService) GetUserDashboard(userID uint) (*Dashboard, error) {
	user, err := s.UserService.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.CheckinService.GetStats(userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(util.DateFormat)
	dayState, err := s.EngagementService.GetDayState(userID, today)
	if err != nil {
		return nil, err
	}

	total, err := s.CheckinService.TotalCheckins(userID)
	if err != nil {
		return nil, err
	}

	// 激励短句拿不到就空着，不拦整个首页
	motivation, _ := s.MotivationService.GetCurrentMotivation()

	return &Dashboard{
		User:            user,
		Stats:           stats,
		TotalCheckins:   total,
		Today:           dayState,
		DailyMotivation: motivation,
	}, nil
}
