package shift

import "context"

// Repository はシフト行の永続化を行うインターフェースです。制約の検証は Store が担います。
type Repository interface {
	FindByIDs(ctx context.Context, ids []int64) ([]Shift, error)
	FindByEmployeeIDs(ctx context.Context, employeeIDs []int64) ([]Shift, error)
	Insert(ctx context.Context, s Shift) (Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
	// VerifyDeferred は遅延された制約をその場で検査します。行の入れ替えを含むバッチは
	// 書き込み途中で一時的に重なることがあるため、重複制約はコミットまで遅延されています。
	VerifyDeferred(ctx context.Context) error
}

// EmployeeDirectory は社員の存在確認を提供します。
//
// 読み書きトランザクション内で呼ばれた場合、実装は該当する社員行をトランザクション終了までロックし、
// 同じ社員に対する並行したバッチを直列化しなければなりません。
type EmployeeDirectory interface {
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
