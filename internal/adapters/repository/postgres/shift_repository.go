package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
	pgdb "github.com/ogurasousui/codex-employee-shifts/internal/platform/db/postgres"
)

const (
	shiftsEmployeeForeignKey = "shifts_employee_id_fkey"
	shiftsEndAfterStartCheck = "shifts_end_after_start"
	shiftsNoOverlapExclusion = "shifts_no_overlap"
)

// ShiftRepository は PostgreSQL を利用したシフト行の永続化の実装です。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// FindByIDs は ID に一致するシフトを ID 順に返します。
func (r *ShiftRepository) FindByIDs(ctx context.Context, ids []int64) ([]shift.Shift, error) {
	return r.queryShifts(ctx, `
        SELECT id, employee_id, start_shift, end_shift
          FROM shifts
         WHERE id = ANY($1)
         ORDER BY id
    `, ids)
}

// FindByEmployeeIDs は指定社員のシフトを社員 ID・開始時刻順に返します。
func (r *ShiftRepository) FindByEmployeeIDs(ctx context.Context, employeeIDs []int64) ([]shift.Shift, error) {
	return r.queryShifts(ctx, `
        SELECT id, employee_id, start_shift, end_shift
          FROM shifts
         WHERE employee_id = ANY($1)
         ORDER BY employee_id, start_shift, id
    `, employeeIDs)
}

// Insert はシフトを新規作成し、採番された ID を含む行を返します。
func (r *ShiftRepository) Insert(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shifts (employee_id, start_shift, end_shift)
        VALUES ($1, $2, $3)
        RETURNING id, employee_id, start_shift, end_shift
    `,
		s.EmployeeID,
		s.StartShift,
		s.EndShift,
	)

	inserted, err := scanShift(row)
	if err != nil {
		return shift.Shift{}, translateShiftPgError(err)
	}
	return inserted, nil
}

// Update は既存のシフトを更新します。ID が存在しない場合は shift.ErrShiftNotFound を返します。
func (r *ShiftRepository) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE shifts
           SET employee_id = $1,
               start_shift = $2,
               end_shift = $3
         WHERE id = $4
        RETURNING id, employee_id, start_shift, end_shift
    `,
		s.EmployeeID,
		s.StartShift,
		s.EndShift,
		s.ID,
	)

	updated, err := scanShift(row)
	if err != nil {
		err = translateShiftPgError(err)
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.Shift{}, fmt.Errorf("update shift %d: %w", s.ID, err)
		}
		return shift.Shift{}, err
	}
	return updated, nil
}

// DeleteByIDs は ID に一致するシフトを削除します。存在しない ID は無視します。
func (r *ShiftRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM shifts WHERE id = ANY($1)`, ids); err != nil {
		return translateShiftPgError(err)
	}
	return nil
}

// VerifyDeferred は遅延された重複制約をトランザクション内で即時に検査します。
func (r *ShiftRepository) VerifyDeferred(ctx context.Context) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `SET CONSTRAINTS `+shiftsNoOverlapExclusion+` IMMEDIATE`); err != nil {
		return translateShiftPgError(err)
	}
	return nil
}

func (r *ShiftRepository) queryShifts(ctx context.Context, query string, ids []int64) ([]shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, ids)
	if err != nil {
		return nil, translateShiftPgError(err)
	}
	defer rows.Close()

	shifts := make([]shift.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, translateShiftPgError(err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, translateShiftPgError(err)
	}

	return shifts, nil
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var (
		id         int64
		employeeID int64
		start      time.Time
		end        time.Time
	)

	if err := row.Scan(&id, &employeeID, &start, &end); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return shift.Shift{
		ID:         id,
		EmployeeID: employeeID,
		StartShift: asUTC(start),
		EndShift:   asUTC(end),
	}, nil
}

// asUTC は TIMESTAMP 列から読んだ値を UTC として解釈し直します。
func asUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// translateShiftPgError は制約違反をシフトの sentinel に変換します。
// 変換できないエラーはそのまま返し、Store 側で UnmappedFailedOperation として扱われます。
func translateShiftPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.ErrShiftNotFound
	}

	pgErr, ok := asPgError(err)
	if !ok {
		return err
	}

	switch {
	case pgErr.Code == foreignKeyViolationCode && pgErr.ConstraintName == shiftsEmployeeForeignKey:
		return fmt.Errorf("%w: %s", shift.ErrEmployeeNotFound, pgErr.Detail)
	case pgErr.Code == checkViolationCode && pgErr.ConstraintName == shiftsEndAfterStartCheck:
		return shift.ErrEndBeforeOrAtStart
	case pgErr.Code == exclusionViolationCode && pgErr.ConstraintName == shiftsNoOverlapExclusion:
		return fmt.Errorf("%w: %s", shift.ErrOverlappingShifts, pgErr.Detail)
	}

	return err
}
