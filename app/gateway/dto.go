package gateway

import "time"

// Gateway DTOs carry the shape checks the server trusts to have happened:
// blank and over-length fields, malformed emails, non-future booking dates.

type NewUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type NewItemReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type NewCommentReq struct {
	Text string `json:"text" validate:"required,max=255"`
}

type NewBookingReq struct {
	ItemID int64     `json:"itemId" validate:"required,gt=0"`
	Start  time.Time `json:"start" validate:"required,gt"`
	End    time.Time `json:"end" validate:"required,gt,gtfield=Start"`
}

type NewRequestReq struct {
	Description string `json:"description" validate:"required,max=255"`
}
