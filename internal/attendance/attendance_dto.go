package attendance

type PendingQuery struct {
	Year  int `form:"year" json:"year" binding:"required,min=1,max=9999"`
	Month int `form:"month" json:"month" binding:"required,min=1,max=12"`
}

type PendingAttendanceRow struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

type PendingAttendanceResponse struct {
	Year    int                    `json:"year"`
	Month   int                    `json:"month"`
	Count   int                    `json:"count"`
	Pending []PendingAttendanceRow `json:"pending"`
}
