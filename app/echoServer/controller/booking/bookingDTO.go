package booking

import "time"

type NewBookingReq struct {
	ItemID int64     `json:"itemId" validate:"required,gt=0"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}
