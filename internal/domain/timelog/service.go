package timelog

import "context"

// TimeLogService is the geofenced check-in/check-out gate. The caller
// identity comes from the request's JWT claims.
type TimeLogService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)
	CheckOut(ctx context.Context, shiftID string) (CheckOutResponse, error)
}
