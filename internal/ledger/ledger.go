package ledger

import "time"

// Mood 每日心情枚举
type Mood string

const (
	MoodHappy Mood = "happy"
	MoodOkay  Mood = "okay"
	MoodTired Mood = "tired"
	MoodSad   Mood = "sad"
)

// ValidMood 校验心情取值是否合法
func ValidMood(m Mood) bool {
	switch m {
	case MoodHappy, MoodOkay, MoodTired, MoodSad:
		return true
	}
	return false
}

// 积分规则常量
const (
	DailyRewardPoints = 10 // 每日首次打开奖励
	MoodPoints        = 3  // 记录心情奖励（每次调用均发放）
	JournalPoints     = 2  // 保存日记奖励（每次调用均发放）
	ChallengePoints   = 5  // 完成一项挑战奖励，取消时等额回收
)

// DateFormat 账本内所有日期均为本地日历日，不含时间部分
const DateFormat = "2006-01-02"

// State 单个用户的参与账本状态。
// 所有操作都是对显式传入状态的读改写，不依赖任何全局可变量；
// 持久化边界由调用方（service 层）注入。
type State struct {
	Streak               int               `json:"streak"`
	Points               int               `json:"points"`
	LastOpenDate         string            `json:"lastOpenDate,omitempty"`  // 空串表示从未打开
	LastClaimDate        string            `json:"lastClaimDate,omitempty"` // 空串表示从未领取
	MoodByDate           map[string]Mood   `json:"moodByDate,omitempty"`
	JournalByDate        map[string]string `json:"journalByDate,omitempty"`
	ChallengesDoneByDate map[string][]int  `json:"challengesDoneByDate,omitempty"`
}

// DaysBetween 计算两个日历日之间的天数差（b - a）。
// 日期解析失败时返回 0，调用方按"同一天"处理，不会崩溃也不会把连胜清负。
func DaysBetween(a, b string) int {
	ta, err := time.Parse(DateFormat, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(DateFormat, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// RecordSessionOpen 记录一次应用打开，返回新状态和是否发放了每日奖励。
// 连胜规则：首次打开置 1；间隔恰好 1 天加 1；间隔大于 1 天重置为 1；
// 同一天重复打开不变；负间隔（时钟回拨）不变。
// 每日奖励以 LastClaimDate 为闸门，每个日历日至多发放一次。
func RecordSessionOpen(s State, today string) (State, bool) {
	if s.LastOpenDate == "" {
		s.Streak = 1
	} else {
		switch gap := DaysBetween(s.LastOpenDate, today); {
		case gap == 1:
			s.Streak++
		case gap > 1:
			s.Streak = 1
		default:
			// gap == 0 已于今日记录过；gap < 0 时钟回拨，均不动连胜
		}
	}
	s.LastOpenDate = today

	granted := false
	if s.LastClaimDate != today {
		s.Points += DailyRewardPoints
		s.LastClaimDate = today
		granted = true
	}
	return s, granted
}

// SetMood 记录指定日期的心情，覆盖写入。
// 奖励每次调用都发放，包括覆盖当天已有记录（与线上观察到的行为一致）。
func SetMood(s State, date string, m Mood) State {
	if s.MoodByDate == nil {
		s.MoodByDate = make(map[string]Mood)
	}
	s.MoodByDate[date] = m
	s.Points += MoodPoints
	return s
}

// SaveJournalNote 保存指定日期的日记，整体替换（包括空串）。
// 奖励同样每次调用都发放。
func SaveJournalNote(s State, date, text string) State {
	if s.JournalByDate == nil {
		s.JournalByDate = make(map[string]string)
	}
	s.JournalByDate[date] = text
	s.Points += JournalPoints
	return s
}

// ToggleChallenge 切换指定日期第 index 项挑战的完成状态，
// 返回新状态和该项当前是否处于完成态。
// 完成加 ChallengePoints，取消等额扣除，积分下限钳制为 0。
func ToggleChallenge(s State, date string, index int) (State, bool) {
	if s.ChallengesDoneByDate == nil {
		s.ChallengesDoneByDate = make(map[string][]int)
	}

	done := s.ChallengesDoneByDate[date]
	pos := -1
	for i, v := range done {
		if v == index {
			pos = i
			break
		}
	}

	var nowDone bool
	if pos >= 0 {
		done = append(done[:pos], done[pos+1:]...)
		s.Points -= ChallengePoints
		if s.Points < 0 {
			s.Points = 0
		}
	} else {
		done = append(done, index)
		s.Points += ChallengePoints
		nowDone = true
	}
	s.ChallengesDoneByDate[date] = done
	return s, nowDone
}
