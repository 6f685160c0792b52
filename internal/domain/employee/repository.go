package employee

import "context"

// EmployeeRepository is the read-only roster contract. RunBatch and the
// daily attendance summary iterate GetActive; nothing here mutates the roster.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
}
