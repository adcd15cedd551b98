package employee

type CreateEmployeeRequest struct {
	ID       string         `json:"id" binding:"required,notblank,max=64"`
	FullName string         `json:"full_name" binding:"required,notblank"`
	Balances map[string]int `json:"balances"`
}

type EmployeeResponse struct {
	ID        string            `json:"id"`
	FullName  string            `json:"full_name"`
	Balances  []BalanceResponse `json:"balances"`
	CreatedAt string            `json:"created_at"`
}

type BalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Days      int    `json:"days"`
	Unlimited bool   `json:"unlimited,omitempty"`
}

type BalancesResponse struct {
	EmployeeID string            `json:"employee_id"`
	Balances   []BalanceResponse `json:"balances"`
}
