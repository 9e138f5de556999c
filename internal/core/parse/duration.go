package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// ISO-8601 時長格式，結構化網頁標記（JSON-LD）常見
	isoDurationPattern = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?`)

	// 自然語言時長，小時與分鐘各自獨立抓取後相加
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*h(?:ou)?rs?\b`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*min(?:ute)?s?\b`)
)

// ParseDurationMinutes 將自由格式或 ISO-8601 的時長字串轉成整數分鐘
// 空字串或加總結果非正數時回傳 ok=false，永不失敗
func ParseDurationMinutes(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if m := isoDurationPattern.FindStringSubmatch(text); m != nil && (m[1] != "" || m[2] != "") {
		total := 0
		if m[1] != "" {
			hours, _ := strconv.Atoi(m[1])
			total += hours * 60
		}
		if m[2] != "" {
			minutes, _ := strconv.Atoi(m[2])
			total += minutes
		}
		if total <= 0 {
			return 0, false
		}
		return total, true
	}

	// "1 hour 15 minutes" 兩段不互斥，必須相加
	total := 0
	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		total += hours * 60
	}
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		total += minutes
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}
