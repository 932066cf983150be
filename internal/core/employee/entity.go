package employee

import "time"

// Employee は社員エンティティです。シフトからは存在確認のためだけに参照されます。
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
