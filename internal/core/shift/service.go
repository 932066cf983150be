package shift

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"
)

// UseCase はシフトユースケースの公開インターフェースです。
type UseCase interface {
	UpsertShifts(ctx context.Context, in UpsertShiftsInput) ([]Shift, error)
	GetShifts(ctx context.Context, in GetShiftsInput) ([]Shift, error)
	FindShifts(ctx context.Context, in FindShiftsInput) ([]Shift, error)
	DeleteShifts(ctx context.Context, in DeleteShiftsInput) error
}

// ShiftInput は upsert 対象の 1 件分の入力です。ID が 0 の場合は新規作成です。
type ShiftInput struct {
	ID         int64
	EmployeeID int64
	StartShift time.Time
	EndShift   time.Time
}

// UpsertShiftsInput はシフト一括登録・更新の入力です。
type UpsertShiftsInput struct {
	Shifts []ShiftInput
}

// GetShiftsInput は ID 指定でのシフト取得の入力です。
type GetShiftsInput struct {
	IDs []int64
}

// FindShiftsInput は社員 ID 指定でのシフト検索の入力です。
type FindShiftsInput struct {
	EmployeeIDs []int64
}

// DeleteShiftsInput はシフト削除の入力です。
type DeleteShiftsInput struct {
	IDs []int64
}

// Service はシフトに関するユースケースをまとめます。ビジネスルールは Store が担います。
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService は Service を生成します。
func NewService(store *Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// UpsertShifts はシフトを一括で登録・更新します。
func (s *Service) UpsertShifts(ctx context.Context, in UpsertShiftsInput) ([]Shift, error) {
	candidates := make([]Shift, 0, len(in.Shifts))
	for _, item := range in.Shifts {
		candidates = append(candidates, Shift{
			ID:         item.ID,
			EmployeeID: item.EmployeeID,
			StartShift: item.StartShift,
			EndShift:   item.EndShift,
		})
	}

	s.logger.Debug("upsert shifts", zap.Int("count", len(candidates)))

	saved, err := s.store.Upsert(ctx, candidates)
	if err != nil {
		s.logViolation("upsert shifts", err)
		return nil, err
	}
	return saved, nil
}

// GetShifts は ID 指定でシフトを取得します。
func (s *Service) GetShifts(ctx context.Context, in GetShiftsInput) ([]Shift, error) {
	ids := normalizeIDs(in.IDs)

	s.logger.Debug("get shifts", zap.Int64s("ids", ids))
	return s.store.Get(ctx, ids)
}

// FindShifts は社員 ID 指定でシフトを検索します。
func (s *Service) FindShifts(ctx context.Context, in FindShiftsInput) ([]Shift, error) {
	ids := normalizeIDs(in.EmployeeIDs)

	s.logger.Debug("find shifts", zap.Int64s("employee_ids", ids))
	return s.store.FindByEmployeeIDs(ctx, ids)
}

// DeleteShifts は ID 指定でシフトを削除します。
func (s *Service) DeleteShifts(ctx context.Context, in DeleteShiftsInput) error {
	ids := normalizeIDs(in.IDs)

	s.logger.Debug("delete shifts", zap.Int64s("ids", ids))
	return s.store.Delete(ctx, ids)
}

func (s *Service) logViolation(op string, err error) {
	var violation *ViolationError
	if errors.As(err, &violation) {
		s.logger.Warn(op+" rejected",
			zap.Stringer("kind", violation.Kind),
			zap.Int("offending", len(violation.Shifts)),
		)
	}
}

// normalizeIDs は 0 以下の ID を除外し、昇順に並べて重複を除きます。
func normalizeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
