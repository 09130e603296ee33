package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, newShift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]Shift, int64, error)
	Update(ctx context.Context, s Shift) error
	// UpdateStatus moves a shift to the given status. Callers are expected
	// to have checked the transition against the status table.
	UpdateStatus(ctx context.Context, id string, status Status) error
	// Delete removes a shift. Fails with ErrShiftHasTimeLogs once any
	// time log references it.
	Delete(ctx context.Context, id string) error
	CountTimeLogs(ctx context.Context, id string) (int64, error)
}
