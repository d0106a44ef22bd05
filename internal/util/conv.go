package util

import (
	"time"
)

// TodayKey 返回当前本地日历日的账本键
func TodayKey() string {
	return time.Now().Format(DateFormat)
}

// ValidDateKey 校验日期参数是否为合法的 YYYY-MM-DD
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
