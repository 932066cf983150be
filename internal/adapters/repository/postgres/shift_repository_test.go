package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
	pgdb "github.com/ogurasousui/codex-employee-shifts/internal/platform/db/postgres"
)

var shiftColumns = []string{"id", "employee_id", "start_shift", "end_shift"}

func newShiftMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestShiftRepository_Insert(t *testing.T) {
	t.Parallel()

	mock := newShiftMock(t)
	repo := NewShiftRepository(mock)

	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO shifts (employee_id, start_shift, end_shift)`)).
		WithArgs(int64(3), start, end).
		WillReturnRows(pgxmock.NewRows(shiftColumns).AddRow(int64(11), int64(3), start, end))

	got, err := repo.Insert(context.Background(), shift.Shift{EmployeeID: 3, StartShift: start, EndShift: end})

	require.NoError(t, err)
	assert.Equal(t, shift.Shift{ID: 11, EmployeeID: 3, StartShift: start, EndShift: end}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_InsertConstraintViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pgErr *pgconn.PgError
		want  error
	}{
		{
			name:  "foreign key",
			pgErr: &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: shiftsEmployeeForeignKey},
			want:  shift.ErrEmployeeNotFound,
		},
		{
			name:  "check",
			pgErr: &pgconn.PgError{Code: checkViolationCode, ConstraintName: shiftsEndAfterStartCheck},
			want:  shift.ErrEndBeforeOrAtStart,
		},
		{
			name:  "exclusion",
			pgErr: &pgconn.PgError{Code: exclusionViolationCode, ConstraintName: shiftsNoOverlapExclusion},
			want:  shift.ErrOverlappingShifts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newShiftMock(t)
			repo := NewShiftRepository(mock)

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO shifts`)).
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(tt.pgErr)

			_, err := repo.Insert(context.Background(), shift.Shift{EmployeeID: 1})

			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestShiftRepository_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	mock := newShiftMock(t)
	repo := NewShiftRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE shifts`)).
		WithArgs(int64(1), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(404)).
		WillReturnRows(pgxmock.NewRows(shiftColumns))

	_, err := repo.Update(context.Background(), shift.Shift{ID: 404, EmployeeID: 1})

	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_FindByEmployeeIDs(t *testing.T) {
	t.Parallel()

	mock := newShiftMock(t)
	repo := NewShiftRepository(mock)

	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE employee_id = ANY($1)`)).
		WithArgs([]int64{1, 2}).
		WillReturnRows(pgxmock.NewRows(shiftColumns).
			AddRow(int64(5), int64(1), start, start.Add(time.Hour)).
			AddRow(int64(4), int64(2), start, start.Add(2*time.Hour)))

	got, err := repo.FindByEmployeeIDs(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	assert.Equal(t, []shift.Shift{
		{ID: 5, EmployeeID: 1, StartShift: start, EndShift: start.Add(time.Hour)},
		{ID: 4, EmployeeID: 2, StartShift: start, EndShift: start.Add(2 * time.Hour)},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_FindByIDsEmptyResult(t *testing.T) {
	t.Parallel()

	mock := newShiftMock(t)
	repo := NewShiftRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = ANY($1)`)).
		WithArgs([]int64{99}).
		WillReturnRows(pgxmock.NewRows(shiftColumns))

	got, err := repo.FindByIDs(context.Background(), []int64{99})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_DeleteByIDsUsesTransaction(t *testing.T) {
	t.Parallel()

	mock := newShiftMock(t)
	repo := NewShiftRepository(mock)
	tm := pgdb.NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite})
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shifts WHERE id = ANY($1)`)).
		WithArgs([]int64{1, 2}).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		return repo.DeleteByIDs(ctx, []int64{1, 2})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_VerifyDeferred(t *testing.T) {
	t.Parallel()

	mock := newShiftMock(t)
	repo := NewShiftRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`SET CONSTRAINTS shifts_no_overlap IMMEDIATE`)).
		WillReturnError(&pgconn.PgError{Code: exclusionViolationCode, ConstraintName: shiftsNoOverlapExclusion})

	err := repo.VerifyDeferred(context.Background())

	assert.ErrorIs(t, err, shift.ErrOverlappingShifts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateShiftPgError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, translateShiftPgError(nil))
	assert.ErrorIs(t, translateShiftPgError(pgx.ErrNoRows), shift.ErrShiftNotFound)

	otherFK := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "something_else"}
	assert.Same(t, otherFK, translateShiftPgError(otherFK))

	other := errors.New("other")
	assert.Equal(t, other, translateShiftPgError(other))
}

func TestScanShift_ReinterpretsAsUTC(t *testing.T) {
	t.Parallel()

	local := time.FixedZone("X", 3*60*60)
	row := stubRow{scanFn: func(dest ...any) error {
		*(dest[0].(*int64)) = 1
		*(dest[1].(*int64)) = 2
		*(dest[2].(*time.Time)) = time.Date(2024, 4, 1, 9, 0, 0, 0, local)
		*(dest[3].(*time.Time)) = time.Date(2024, 4, 1, 17, 0, 0, 0, local)
		return nil
	}}

	got, err := scanShift(row)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), got.StartShift)
	assert.Equal(t, time.Date(2024, 4, 1, 17, 0, 0, 0, time.UTC), got.EndShift)
}
