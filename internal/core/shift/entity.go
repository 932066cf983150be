package shift

import "time"

// Shift は社員に割り当てられた勤務時間帯です。ID が 0 の場合は未永続化を表します。
type Shift struct {
	ID         int64
	EmployeeID int64
	StartShift time.Time
	EndShift   time.Time
}

// Interval は半開区間 [Start, End) を表します。
type Interval struct {
	Start time.Time
	End   time.Time
}

// Interval はシフトの時間帯を返します。
func (s Shift) Interval() Interval {
	return Interval{Start: s.StartShift, End: s.EndShift}
}

// IsNew は未永続化のシフトかどうかを返します。
func (s Shift) IsNew() bool {
	return s.ID == 0
}

// Overlaps は 2 つの半開区間が重なるかを判定します。端点が接するだけの場合は重なりとみなしません。
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// IsDegenerate は終了時刻が開始時刻以前のシフトかどうかを返します。
func IsDegenerate(s Shift) bool {
	return !s.EndShift.After(s.StartShift)
}

// normalize はストレージの精度 (UTC・秒単位) に合わせた値を返します。
func normalize(s Shift) Shift {
	s.StartShift = s.StartShift.UTC().Truncate(time.Second)
	s.EndShift = s.EndShift.UTC().Truncate(time.Second)
	return s
}
