package service

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/tdevakiruba/Workforce/internal/model"
)

var durationDaysPattern = regexp.MustCompile(`\d+`)

// ComputeCurrentDay は読み取り側で使う唯一のカーソル計算。
// 保存値 (未設定なら 1) を [1, totalDays] に収める。
func ComputeCurrentDay(currentDay *int, totalDays int) int {
	day := 1
	if currentDay != nil {
		day = *currentDay
	}
	if totalDays >= 1 && day > totalDays {
		day = totalDays
	}
	if day < 1 {
		day = 1
	}
	return day
}

// InitialCurrentDay は受講作成時にだけ使う日付ベースの初期値。
// 作成後は保存されたカーソルが常に優先される。
func InitialCurrentDay(startedAt, now time.Time, totalDays int) int {
	elapsed := int(math.Floor(now.Sub(startedAt).Hours()/24)) + 1
	cur := elapsed
	return ComputeCurrentDay(&cur, totalDays)
}

// TotalDays は program.duration の最初の整数。読めなければ fallback。
func TotalDays(program *model.Program, fallback int) int {
	if program == nil || program.Duration == nil {
		return fallback
	}
	m := durationDaysPattern.FindString(*program.Duration)
	if m == "" {
		return fallback
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// PhaseEarned はフェーズの最終日を越えていれば true
func PhaseEarned(currentDay int, phase model.ProgramPhase) bool {
	return currentDay > phase.DayEnd
}

func ProgramEarned(currentDay, totalDays int) bool {
	return currentDay >= totalDays
}

func progressPercent(currentDay, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return int(math.Round(float64(currentDay) / float64(totalDays) * 100))
}

// nextStreak は活動日 today を反映した連続日数を計算する
func nextStreak(streak *model.UserStreak, today time.Time) {
	today = truncateDay(today)
	switch {
	case streak.LastActivityDate == nil:
		streak.CurrentStreak = 1
	default:
		last := truncateDay(*streak.LastActivityDate)
		switch {
		case last.Equal(today):
			if streak.CurrentStreak == 0 {
				streak.CurrentStreak = 1
			}
		case last.AddDate(0, 0, 1).Equal(today):
			streak.CurrentStreak++
		default:
			streak.CurrentStreak = 1
		}
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = &today
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
