package model

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Item   Item          `json:"item"`
	Booker User          `json:"booker"`
	Status BookingStatus `json:"status"`
}

// State is the closed set of booking-list filters. The zero value stands
// for an unrecognized token: the gateway rejects it, the service filters
// it to an empty list.
type State int

const (
	StateUnknown State = iota
	StateAll
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
	StateApproved
)

var stateNames = map[State]string{
	StateAll:      "ALL",
	StateCurrent:  "CURRENT",
	StatePast:     "PAST",
	StateFuture:   "FUTURE",
	StateWaiting:  "WAITING",
	StateRejected: "REJECTED",
	StateApproved: "APPROVED",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// ParseState matches a state token case-insensitively. The second return
// reports whether the token is recognized.
func ParseState(token string) (State, bool) {
	switch strings.ToUpper(token) {
	case "ALL":
		return StateAll, true
	case "CURRENT":
		return StateCurrent, true
	case "PAST":
		return StatePast, true
	case "FUTURE":
		return StateFuture, true
	case "WAITING":
		return StateWaiting, true
	case "REJECTED":
		return StateRejected, true
	case "APPROVED":
		return StateApproved, true
	default:
		return StateUnknown, false
	}
}
