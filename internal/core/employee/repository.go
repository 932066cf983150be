package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	// ExistingIDs は ids のうち存在する社員 ID を昇順で返します。
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
