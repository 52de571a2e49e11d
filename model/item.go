package model

import "time"

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemDetail is the owner-facing projection: the item plus its closest
// bookings and comments.
type ItemDetail struct {
	Item
	LastBooking *Booking  `json:"lastBooking"`
	NextBooking *Booking  `json:"nextBooking"`
	Comments    []Comment `json:"comments"`
}

type Comment struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorID   int64     `json:"-"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}
