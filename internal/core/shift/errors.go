package shift

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEndBeforeOrAtStart は終了時刻が開始時刻以前のシフトが含まれる場合に返却されます。
	ErrEndBeforeOrAtStart = errors.New("shift: end before or at start")
	// ErrEmployeeNotFound は存在しない社員を参照するシフトが含まれる場合に返却されます。
	ErrEmployeeNotFound = errors.New("shift: employee not found")
	// ErrOverlappingShifts は同一社員のシフトが重複する場合に返却されます。
	ErrOverlappingShifts = errors.New("shift: overlapping shifts")
	// ErrUnmappedFailedOperation は分類できない理由でストレージが書き込みを拒否した場合に返却されます。
	ErrUnmappedFailedOperation = errors.New("shift: unmapped failed operation")
	// ErrShiftNotFound は更新対象のシフトが存在しない場合の原因エラーです。
	ErrShiftNotFound = errors.New("shift: not found")
)

// ViolationKind は制約違反の種類です。
type ViolationKind int

const (
	KindEndBeforeOrAtStart ViolationKind = iota + 1
	KindEmployeeNotFound
	KindOverlappingShifts
	KindUnmappedFailedOperation
)

func (k ViolationKind) String() string {
	switch k {
	case KindEndBeforeOrAtStart:
		return "EndBeforeOrAtStart"
	case KindEmployeeNotFound:
		return "EmployeeNotFound"
	case KindOverlappingShifts:
		return "OverlappingShifts"
	case KindUnmappedFailedOperation:
		return "UnmappedFailedOperation"
	default:
		return "Unknown"
	}
}

func (k ViolationKind) sentinel() error {
	switch k {
	case KindEndBeforeOrAtStart:
		return ErrEndBeforeOrAtStart
	case KindEmployeeNotFound:
		return ErrEmployeeNotFound
	case KindOverlappingShifts:
		return ErrOverlappingShifts
	default:
		return ErrUnmappedFailedOperation
	}
}

// ViolationError はバッチ全体を中断させた制約違反と、その原因となった候補シフトを保持します。
type ViolationError struct {
	Kind   ViolationKind
	Shifts []Shift
	cause  error
}

// NewViolationError は ViolationError を生成します。
func NewViolationError(kind ViolationKind, shifts []Shift) *ViolationError {
	return &ViolationError{Kind: kind, Shifts: shifts}
}

func (e *ViolationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.sentinel().Error())
	if len(e.Shifts) > 0 {
		b.WriteString(": ")
		for i, s := range e.Shifts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(describe(s))
		}
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap は種類ごとの sentinel とストレージ由来の原因を返します。
func (e *ViolationError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.cause}
}

// Cause はストレージ由来の原因エラーを返します。
func (e *ViolationError) Cause() error {
	return e.cause
}

// classifyWriteError は書き込み時のエラーを違反種別に変換し、offending を違反シフトとして添付します。
func classifyWriteError(offending []Shift, err error) error {
	var violation *ViolationError
	if errors.As(err, &violation) {
		return violation
	}

	kind := KindUnmappedFailedOperation
	switch {
	case errors.Is(err, ErrEndBeforeOrAtStart):
		kind = KindEndBeforeOrAtStart
	case errors.Is(err, ErrEmployeeNotFound):
		kind = KindEmployeeNotFound
	case errors.Is(err, ErrOverlappingShifts):
		kind = KindOverlappingShifts
	}

	v := NewViolationError(kind, offending)
	if kind == KindUnmappedFailedOperation {
		v.cause = err
	}
	return v
}

func describe(s Shift) string {
	return fmt.Sprintf("{id=%d employee=%d [%s, %s)}",
		s.ID,
		s.EmployeeID,
		s.StartShift.UTC().Format(time.RFC3339),
		s.EndShift.UTC().Format(time.RFC3339),
	)
}
