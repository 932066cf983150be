package shift

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Store はシフトの一括 upsert・取得・削除を提供し、制約検証と書き込みを単一トランザクションで行います。
type Store struct {
	repo          Repository
	employees     EmployeeDirectory
	tx            TransactionManager
	logger        *zap.Logger
	upsertTimeout time.Duration
}

// StoreOption は Store の任意設定です。
type StoreOption func(*Store)

// WithLogger はロガーを設定します。
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUpsertTimeout は upsert トランザクション全体のタイムアウトを設定します。0 以下は無制限です。
func WithUpsertTimeout(d time.Duration) StoreOption {
	return func(s *Store) {
		s.upsertTimeout = d
	}
}

// NewStore は Store を生成します。
func NewStore(repo Repository, employees EmployeeDirectory, tx TransactionManager, opts ...StoreOption) *Store {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Store{
		repo:      repo,
		employees: employees,
		tx:        tx,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert は候補シフトを検証し、すべて成功した場合のみ保存します。戻り値は入力と同じ順序です。
func (s *Store) Upsert(ctx context.Context, candidates []Shift) ([]Shift, error) {
	if len(candidates) == 0 {
		return []Shift{}, nil
	}

	if s.upsertTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.upsertTimeout)
		defer cancel()
	}

	normalized := make([]Shift, len(candidates))
	for i, c := range candidates {
		normalized[i] = normalize(c)
	}

	var saved []Shift
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		known, err := s.employees.ExistingIDs(txCtx, distinctEmployeeIDs(normalized))
		if err != nil {
			return fmt.Errorf("shift: load employees: %w", err)
		}

		var persisted []Shift
		if len(known) > 0 {
			persisted, err = s.repo.FindByEmployeeIDs(txCtx, known)
			if err != nil {
				return fmt.Errorf("shift: load existing shifts: %w", err)
			}
		}

		if kind, offending := evaluate(normalized, known, persisted); kind != 0 {
			return NewViolationError(kind, pick(candidates, offending))
		}

		rows := make([]Shift, len(normalized))
		for i, c := range normalized {
			row, err := s.write(txCtx, c)
			if err != nil {
				if isContextError(err) {
					return err
				}
				return classifyWriteError([]Shift{candidates[i]}, err)
			}
			rows[i] = row
		}

		if err := s.repo.VerifyDeferred(txCtx); err != nil {
			if isContextError(err) {
				return err
			}
			return classifyWriteError(slices.Clone(candidates), err)
		}

		saved = rows
		return nil
	})
	if err != nil {
		s.logFailure(err, len(candidates))
		return nil, err
	}

	return saved, nil
}

// Get は ID に一致する永続化済みシフトを ID 順に返します。存在しない ID は無視します。
func (s *Store) Get(ctx context.Context, ids []int64) ([]Shift, error) {
	if len(ids) == 0 {
		return []Shift{}, nil
	}

	var found []Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByIDs(txCtx, ids)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return nonNil(found), nil
}

// FindByEmployeeIDs は指定社員のシフトをすべて返します。
func (s *Store) FindByEmployeeIDs(ctx context.Context, employeeIDs []int64) ([]Shift, error) {
	if len(employeeIDs) == 0 {
		return []Shift{}, nil
	}

	var found []Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByEmployeeIDs(txCtx, employeeIDs)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return nonNil(found), nil
}

// Delete は ID に一致するシフトを削除します。存在しない ID は無視します。
func (s *Store) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteByIDs(txCtx, ids)
	})
}

func (s *Store) write(ctx context.Context, c Shift) (Shift, error) {
	if c.IsNew() {
		return s.repo.Insert(ctx, c)
	}
	return s.repo.Update(ctx, c)
}

func (s *Store) logFailure(err error, batchSize int) {
	var violation *ViolationError
	if !errors.As(err, &violation) {
		s.logger.Error("shift upsert failed", zap.Int("batch_size", batchSize), zap.Error(err))
		return
	}

	if violation.Kind == KindUnmappedFailedOperation {
		s.logger.Warn("shift upsert rejected by storage",
			zap.Int("batch_size", batchSize),
			zap.Int("offending", len(violation.Shifts)),
			zap.NamedError("cause", violation.Cause()),
		)
		return
	}

	s.logger.Debug("shift upsert violated constraints",
		zap.Stringer("kind", violation.Kind),
		zap.Int("batch_size", batchSize),
		zap.Int("offending", len(violation.Shifts)),
	)
}

func distinctEmployeeIDs(shifts []Shift) []int64 {
	ids := make([]int64, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.EmployeeID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func nonNil(shifts []Shift) []Shift {
	if shifts == nil {
		return []Shift{}
	}
	return shifts
}
