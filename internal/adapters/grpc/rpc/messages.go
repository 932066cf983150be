package rpc

import "time"

// Shift はシフトのワイヤ表現です。ID が 0 の場合は新規作成を表します。
type Shift struct {
	ID         int64     `json:"id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	StartShift time.Time `json:"start_shift"`
	EndShift   time.Time `json:"end_shift"`
}

type UpsertShiftsRequest struct {
	Shifts []*Shift `json:"shifts"`
}

type UpsertShiftsResponse struct {
	Shifts []*Shift `json:"shifts"`
}

type GetShiftsRequest struct {
	IDs []int64 `json:"ids"`
}

type GetShiftsResponse struct {
	Shifts []*Shift `json:"shifts"`
}

type FindShiftsRequest struct {
	EmployeeIDs []int64 `json:"employee_ids"`
}

type FindShiftsResponse struct {
	Shifts []*Shift `json:"shifts"`
}

type DeleteShiftsRequest struct {
	IDs []int64 `json:"ids"`
}

type DeleteShiftsResponse struct{}

// Employee は社員のワイヤ表現です。
type Employee struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

// UpdateEmployeeRequest は社員更新の要求です。nil のフィールドは変更しません。
type UpdateEmployeeRequest struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type UpdateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type GetEmployeeRequest struct {
	ID int64 `json:"id"`
}

type GetEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type DeleteEmployeeRequest struct {
	ID int64 `json:"id"`
}

type DeleteEmployeeResponse struct{}
