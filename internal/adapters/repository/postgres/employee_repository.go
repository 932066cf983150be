package postgres

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-shifts/internal/platform/db/postgres"
)

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (first_name, last_name, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, first_name, last_name, created_at, updated_at
    `,
		e.FirstName,
		e.LastName,
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は社員情報を更新します。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET first_name = $1,
               last_name = $2,
               updated_at = $3
         WHERE id = $4
        RETURNING id, first_name, last_name, created_at, updated_at
    `,
		e.FirstName,
		e.LastName,
		e.UpdatedAt,
		e.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// Delete は社員を削除します。社員のシフトは外部キーの ON DELETE CASCADE で削除されます。
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, first_name, last_name, created_at, updated_at
          FROM employees
         WHERE id = $1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// ExistingIDs は ids のうち存在する社員 ID を昇順で返します。
//
// 行は FOR NO KEY UPDATE でロックされ、トランザクション内であれば終了まで保持されます。
// 同一社員へのシフト書き込みはこのロックで直列化され、ID を昇順にロックすることでデッドロックを避けます。
// シフトの外部キー検査が取る FOR KEY SHARE ロックとは競合しません。
func (r *EmployeeRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id
          FROM employees
         WHERE id = ANY($1)
         ORDER BY id
           FOR NO KEY UPDATE
    `, sorted)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id        int64
		firstName string
		lastName  string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &firstName, &lastName, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	if pgErr, ok := asPgError(err); ok && pgErr.Code == checkViolationCode {
		switch pgErr.ConstraintName {
		case "employees_first_name_not_blank":
			return employee.ErrInvalidFirstName
		case "employees_last_name_not_blank":
			return employee.ErrInvalidLastName
		}
	}

	return err
}
