package salarycycleerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

const (
	CodePendingApprovals                = "PENDING_APPROVALS"
	CodePendingApprovalDuringProcessing = "PENDING_APPROVAL_DURING_PROCESSING"
	CodeCycleAlreadyLocked              = "CYCLE_ALREADY_LOCKED"
)

var (
	ErrPendingApprovals = apperror.New(
		CodePendingApprovals,
		"Attendance in this period is still waiting for approval",
		http.StatusConflict,
	)

	ErrPendingApprovalDuringProcessing = apperror.New(
		CodePendingApprovalDuringProcessing,
		"Found attendance waiting for approval while computing earnings",
		http.StatusConflict,
	)

	ErrCycleAlreadyLocked = apperror.New(
		CodeCycleAlreadyLocked,
		"Salary cycle for this period is already locked",
		http.StatusConflict,
	)

	ErrCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary cycle not found",
		http.StatusNotFound,
	)

	ErrMissingParameters = apperror.New(
		apperror.CodeMissingParameters,
		"Year and month are required",
		http.StatusBadRequest,
	)

	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidation,
		"Year must be between 1 and 9999 and month between 1 and 12",
		http.StatusBadRequest,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeValidation,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidEmployee = apperror.New(
		apperror.CodeValidation,
		"Employee Id is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidAdmin = apperror.New(
		apperror.CodeValidation,
		"Admin id must be a valid uuid",
		http.StatusBadRequest,
	)
)

// PendingApprovals reports how many rows block the lock.
func PendingApprovals(count int64) *apperror.AppError {
	return ErrPendingApprovals.WithDetails(map[string]int64{"count": count})
}

// PendingApprovalDuringProcessing names the row found mid-computation.
func PendingApprovalDuringProcessing(employeeID, date string) *apperror.AppError {
	return ErrPendingApprovalDuringProcessing.WithDetails(map[string]string{
		"employee_id": employeeID,
		"date":        date,
	})
}
