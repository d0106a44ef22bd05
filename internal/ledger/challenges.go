package ledger

import "math/rand"

// Challenge 每日挑战描述，Index 为当日三项中的序号（0-2）
type Challenge struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// DailyChallengeCount 每天分配的挑战数量
const DailyChallengeCount = 3

// 固定挑战目录。顺序参与日期置换，调整顺序会改变历史日期的分配结果。
var challengeCatalog = [10]string{
	"喝满 8 杯水",
	"散步 15 分钟",
	"写下今天让你感激的三件事",
	"给一位久未联系的朋友发条消息",
	"远离手机 1 小时",
	"做 10 分钟伸展运动",
	"整理桌面或房间的一个角落",
	"读 10 页书",
	"早睡 30 分钟",
	"对自己说一句鼓励的话",
}

// DateSeed 由 ISO 日期字符串推导确定性种子：seed = (seed*31 + ch) mod 997。
func DateSeed(date string) int {
	seed := 0
	for _, ch := range []byte(date) {
		seed = (seed*31 + int(ch)) % 997
	}
	return seed
}

// PickDailyChallenges 返回指定日期的三项挑战。
// 纯函数：同一日期在任何进程、任何时刻都产生相同的有序三元组，
// 不同日期通常产生不同组合。实现为种子化 Fisher–Yates 置换取前三。
func PickDailyChallenges(date string) []Challenge {
	order := make([]int, len(challengeCatalog))
	for i := range order {
		order[i] = i
	}

	rng := rand.New(rand.NewSource(int64(DateSeed(date))))
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	picked := make([]Challenge, DailyChallengeCount)
	for i := 0; i < DailyChallengeCount; i++ {
		picked[i] = Challenge{Index: i, Text: challengeCatalog[order[i]]}
	}
	return picked
}
