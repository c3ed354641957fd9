package rbac

import "go-payroll/internal/profile"

const (
	ResourceSalaryCycle   = "salary_cycle"
	ResourceSalaryPayment = "salary_payment"
	ResourceAttendance    = "attendance"

	ActionLock        = "lock"
	ActionRead        = "read"
	ActionReadOwn     = "read_own"
	ActionCreate      = "create"
	ActionReadPending = "read_pending"
)

// DefaultPolicies grants admins everything; employees only see their own pay.
func DefaultPolicies() []Policy {
	return []Policy{
		{Role: profile.RoleEmployee, Resource: ResourceSalaryCycle, Action: ActionReadOwn},
		{Role: profile.RoleAdmin, Resource: ResourceSalaryCycle, Action: ActionLock},
		{Role: profile.RoleAdmin, Resource: ResourceSalaryCycle, Action: ActionRead},
		{Role: profile.RoleAdmin, Resource: ResourceSalaryPayment, Action: ActionCreate},
		{Role: profile.RoleAdmin, Resource: ResourceAttendance, Action: ActionReadPending},
	}
}

// DefaultInheritance lists (role, parent) pairs.
func DefaultInheritance() [][2]string {
	return [][2]string{
		{profile.RoleAdmin, profile.RoleEmployee},
	}
}
