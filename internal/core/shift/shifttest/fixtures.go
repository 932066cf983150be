// Package shifttest はシフトのテスト用フィクスチャを提供します。
package shifttest

import (
	"math/rand/v2"
	"time"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
)

// Epoch はフィクスチャの基準時刻です。
var Epoch = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// Generator は固定シードで再現可能なシフトを生成します。
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator は seed から Generator を生成します。
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// At は Epoch から minutes 分後の時刻を返します。
func At(minutes int) time.Time {
	return Epoch.Add(time.Duration(minutes) * time.Minute)
}

// New は [At(startMin), At(endMin)) の未永続化シフトを返します。
func New(employeeID int64, startMin, endMin int) shift.Shift {
	return shift.Shift{EmployeeID: employeeID, StartShift: At(startMin), EndShift: At(endMin)}
}

// Persisted は ID 付きのシフトを返します。
func Persisted(id, employeeID int64, startMin, endMin int) shift.Shift {
	s := New(employeeID, startMin, endMin)
	s.ID = id
	return s
}

// DisjointDay は 1 社員分の互いに重ならない n 件のシフトを返します。
// 各シフトは 30 分から 4 時間で、シフト間には 0 分から 2 時間の間隔があります。
func (g *Generator) DisjointDay(employeeID int64, n int) []shift.Shift {
	shifts := make([]shift.Shift, 0, n)
	cursor := g.rnd.IntN(120)
	for range n {
		length := 30 + g.rnd.IntN(210)
		shifts = append(shifts, New(employeeID, cursor, cursor+length))
		cursor += length + g.rnd.IntN(121)
	}
	return shifts
}
