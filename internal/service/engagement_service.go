package service

import (
	"errors"
	"mindmate_backend/internal/ledger"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// EngagementService 持有参与账本的持久化边界。
// 纯粹的状态规则都在 internal/ledger 里，这里只负责装载行、
// 调用账本操作、在同一个事务里把结果落回去。
// 每个写操作都以账本头部行的行锁做按用户串行化。
type EngagementService struct {
	Repo      *repository.EngagementRepository
	DB        *gorm.DB
	sanitizer *bluemonday.Policy
}

func NewEngagementService(repo *repository.EngagementRepository, db *gorm.DB) *EngagementService {
	return &EngagementService{
		Repo: repo,
		DB:   db,
		// 日记是纯文本，HTML 全部剥掉
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// SessionResult 会话打开的结果：更新后的头部状态和一次性的奖励标记
type SessionResult struct {
	Streak        int    `json:"streak"`
	Points        int    `json:"points"`
	LastOpenDate  string `json:"last_open_date"`
	RewardGranted bool   `json:"reward_granted"`
}

func headerState(eng *model.UserEngagement) ledger.State {
	return ledger.State{
		Streak:        eng.Streak,
		Points:        eng.Points,
		LastOpenDate:  eng.LastOpenDate,
		LastClaimDate: eng.LastClaimDate,
	}
}

func applyHeader(eng *model.UserEngagement, st ledger.State) {
	eng.Streak = st.Streak
	eng.Points = st.Points
	eng.LastOpenDate = st.LastOpenDate
	eng.LastClaimDate = st.LastClaimDate
}

// OpenSession 记录一次应用打开：连胜推进 + 每日奖励发放
func (s *EngagementService) OpenSession(userID uint, today string) (*SessionResult, error) {
	var result *SessionResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		eng, err := s.Repo.FindForUpdate(tx, userID)
		if err != nil {
			return err
		}

		st, granted := ledger.RecordSessionOpen(headerState(eng), today)
		applyHeader(eng, st)

		if err := s.Repo.Save(tx, eng); err != nil {
			return err
		}

		result = &SessionResult{
			Streak:        eng.Streak,
			Points:        eng.Points,
			LastOpenDate:  eng.LastOpenDate,
			RewardGranted: granted,
		}
		return nil
	})
	return result, err
}

// SetMood 记录当日心情并发放奖励
func (s *EngagementService) SetMood(userID uint, date string, mood ledger.Mood) (*model.UserEngagement, error) {
	if !ledger.ValidMood(mood) {
		return nil, util.ErrInvalidMood
	}

	var out *model.UserEngagement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		eng, err := s.Repo.FindForUpdate(tx, userID)
		if err != nil {
			return err
		}

		st := ledger.SetMood(headerState(eng), date, mood)
		applyHeader(eng, st)

		if err := s.Repo.UpsertMood(tx, userID, date, string(mood)); err != nil {
			return err
		}
		if err := s.Repo.Save(tx, eng); err != nil {
			return err
		}
		out = eng
		return nil
	})
	return out, err
}

// SaveJournal 覆盖保存当日日记并发放奖励，内容先做 HTML 清洗
func (s *EngagementService) SaveJournal(userID uint, date, text string) (*model.UserEngagement, error) {
	clean := s.sanitizer.Sanitize(text)

	var out *model.UserEngagement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		eng, err := s.Repo.FindForUpdate(tx, userID)
		if err != nil {
			return err
		}

		st := ledger.SaveJournalNote(headerState(eng), date, clean)
		applyHeader(eng, st)

		if err := s.Repo.UpsertJournal(tx, userID, date, clean); err != nil {
			return err
		}
		if err := s.Repo.Save(tx, eng); err != nil {
			return err
		}
		out = eng
		return nil
	})
	return out, err
}

// GetJournal 读取指定日期的日记，不存在返回空串
func (s *EngagementService) GetJournal(userID uint, date string) (string, error) {
	entry, err := s.Repo.FindJournal(userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return entry.Content, nil
}

// ToggleResult 挑战开关的结果
type ToggleResult struct {
	Points  int   `json:"points"`
	NowDone bool  `json:"now_done"`
	Done    []int `json:"done"`
}

// ToggleChallenge 切换当日第 index 项挑战的完成状态
func (s *EngagementService) ToggleChallenge(userID uint, date string, index int) (*ToggleResult, error) {
	if index < 0 || index >= ledger.DailyChallengeCount {
		return nil, util.ErrChallengeOutOfSet
	}

	var result *ToggleResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		eng, err := s.Repo.FindForUpdate(tx, userID)
		if err != nil {
			return err
		}

		done, err := s.Repo.FindChallengeIndexes(tx, userID, date)
		if err != nil {
			return err
		}

		st := headerState(eng)
		st.ChallengesDoneByDate = map[string][]int{date: done}
		st, nowDone := ledger.ToggleChallenge(st, date, index)
		applyHeader(eng, st)

		if nowDone {
			if err := s.Repo.CreateChallengeCompletion(tx, userID, date, index); err != nil {
				return err
			}
		} else {
			if err := s.Repo.DeleteChallengeCompletion(tx, userID, date, index); err != nil {
				return err
			}
		}

		if err := s.Repo.Save(tx, eng); err != nil {
			return err
		}

		result = &ToggleResult{
			Points:  eng.Points,
			NowDone: nowDone,
			Done:    st.ChallengesDoneByDate[date],
		}
		return nil
	})
	return result, err
}

// DayChallenges 当日分配的挑战和完成情况
type DayChallenges struct {
	Date       string             `json:"date"`
	Challenges []ledger.Challenge `json:"challenges"`
	Done       []int              `json:"done"`
}

// GetDayChallenges 返回某日的三项挑战与完成集合
func (s *EngagementService) GetDayChallenges(userID uint, date string) (*DayChallenges, error) {
	done, err := s.Repo.FindChallengeIndexes(s.DB, userID, date)
	if err != nil {
		return nil, err
	}
	return &DayChallenges{
		Date:       date,
		Challenges: ledger.PickDailyChallenges(date),
		Done:       done,
	}, nil
}

// DayState 某个日历日的完整账本视图
type DayState struct {
	Date       string             `json:"date"`
	Streak     int                `json:"streak"`
	Points     int                `json:"points"`
	Mood       string             `json:"mood,omitempty"`
	Journal    string             `json:"journal"`
	Challenges []ledger.Challenge `json:"challenges"`
	Done       []int              `json:"done"`
}

// GetDayState 聚合某日的连胜、积分、心情、日记和挑战
func (s *EngagementService) GetDayState(userID uint, date string) (*DayState, error) {
	eng, err := s.Repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	state := &DayState{
		Date:       date,
		Streak:     eng.Streak,
		Points:     eng.Points,
		Challenges: ledger.PickDailyChallenges(date),
	}

	if entry, err := s.Repo.FindMood(userID, date); err == nil {
		state.Mood = entry.Mood
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	journal, err := s.GetJournal(userID, date)
	if err != nil {
		return nil, err
	}
	state.Journal = journal

	done, err := s.Repo.FindChallengeIndexes(s.DB, userID, date)
	if err != nil {
		return nil, err
	}
	state.Done = done

	return state, nil
}
