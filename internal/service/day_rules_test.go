package service

import (
	"testing"
	"time"

	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeCurrentDay(t *testing.T) {
	tests := []struct {
		name       string
		currentDay *int
		totalDays  int
		want       int
	}{
		{name: "正常系: 範囲内の値はそのまま", currentDay: intPtr(5), totalDays: 21, want: 5},
		{name: "正常系: 未設定は1", currentDay: nil, totalDays: 21, want: 1},
		{name: "正常系: 0は1に切り上げ", currentDay: intPtr(0), totalDays: 21, want: 1},
		{name: "正常系: 負の値は1に切り上げ", currentDay: intPtr(-3), totalDays: 21, want: 1},
		{name: "正常系: 総日数を超えたら総日数", currentDay: intPtr(22), totalDays: 21, want: 21},
		{name: "正常系: 大きな値も総日数", currentDay: intPtr(1 << 20), totalDays: 21, want: 21},
		{name: "正常系: 最終日", currentDay: intPtr(21), totalDays: 21, want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCurrentDay(tt.currentDay, tt.totalDays))
		})
	}
}

func TestInitialCurrentDay(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "正常系: 開始直後は1日目", now: start.Add(time.Minute), want: 1},
		{name: "正常系: 24時間後は2日目", now: start.Add(24 * time.Hour), want: 2},
		{name: "正常系: 10日後は11日目", now: start.AddDate(0, 0, 10), want: 11},
		{name: "正常系: 期間を過ぎたら最終日", now: start.AddDate(0, 2, 0), want: 21},
		{name: "正常系: 開始前は1日目", now: start.Add(-48 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialCurrentDay(start, tt.now, 21))
		})
	}
}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name    string
		program *model.Program
		want    int
	}{
		{name: "正常系: 21 days", program: &model.Program{Duration: strPtr("21 days")}, want: 21},
		{name: "正常系: 先頭の整数を使う", program: &model.Program{Duration: strPtr("30-day program, 4 phases")}, want: 30},
		{name: "正常系: 数字を含まなければデフォルト", program: &model.Program{Duration: strPtr("three weeks")}, want: 21},
		{name: "正常系: 0はデフォルト", program: &model.Program{Duration: strPtr("0 days")}, want: 21},
		{name: "正常系: duration 未設定", program: &model.Program{}, want: 21},
		{name: "正常系: program が nil", program: nil, want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDays(tt.program, 21))
		})
	}
}

func TestPhaseAndProgramEarned(t *testing.T) {
	foundation := model.ProgramPhase{Name: "Foundation", DayStart: 1, DayEnd: 7}
	growth := model.ProgramPhase{Name: "Growth", DayStart: 8, DayEnd: 14}

	// 8日目に到達した時点で Foundation のみ取得済み
	assert.True(t, PhaseEarned(8, foundation))
	assert.False(t, PhaseEarned(8, growth))
	assert.False(t, PhaseEarned(7, foundation))
	assert.False(t, ProgramEarned(8, 21))

	assert.True(t, PhaseEarned(15, growth))
	assert.True(t, ProgramEarned(21, 21))
	assert.True(t, ProgramEarned(22, 21))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 5, progressPercent(1, 21))
	assert.Equal(t, 48, progressPercent(10, 21))
	assert.Equal(t, 100, progressPercent(21, 21))
	assert.Equal(t, 0, progressPercent(3, 0))
}

func TestNextStreak(t *testing.T) {
	today := time.Date(2026, 4, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := truncateDay(today).AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name        string
		streak      model.UserStreak
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "正常系: 初回の活動",
			streak:      model.UserStreak{},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "正常系: 前日に続く活動で加算",
			streak:      model.UserStreak{CurrentStreak: 3, LongestStreak: 5, LastActivityDate: day(-1)},
			wantCurrent: 4,
			wantLongest: 5,
		},
		{
			name:        "正常系: 最長記録を更新",
			streak:      model.UserStreak{CurrentStreak: 5, LongestStreak: 5, LastActivityDate: day(-1)},
			wantCurrent: 6,
			wantLongest: 6,
		},
		{
			name:        "正常系: 同じ日の2回目は変わらない",
			streak:      model.UserStreak{CurrentStreak: 2, LongestStreak: 4, LastActivityDate: day(0)},
			wantCurrent: 2,
			wantLongest: 4,
		},
		{
			name:        "正常系: 受講開始日と同じ日の初回進行は1",
			streak:      model.UserStreak{CurrentStreak: 0, LongestStreak: 0, LastActivityDate: day(0)},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "正常系: 間が空いたらリセット",
			streak:      model.UserStreak{CurrentStreak: 7, LongestStreak: 7, LastActivityDate: day(-3)},
			wantCurrent: 1,
			wantLongest: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak := tt.streak
			nextStreak(&streak, today)
			assert.Equal(t, tt.wantCurrent, streak.CurrentStreak)
			assert.Equal(t, tt.wantLongest, streak.LongestStreak)
			if assert.NotNil(t, streak.LastActivityDate) {
				assert.True(t, truncateDay(today).Equal(*streak.LastActivityDate))
			}
		})
	}
}
