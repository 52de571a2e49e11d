package model

import "time"

type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requesterId"`
	Created     time.Time `json:"created"`
}

// RequestAnswer is an item offered in reply to a request.
type RequestAnswer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type ItemRequestWithAnswers struct {
	ItemRequest
	Items []RequestAnswer `json:"items"`
}
