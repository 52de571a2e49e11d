// Package bookingsvc owns the booking lifecycle: creation, the owner's
// approve/reject decision, and the state-filtered list views for bookers
// and item owners.
package bookingsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	SetStatus(ctx context.Context, id int64, status model.BookingStatus) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)
	ByBooker(ctx context.Context, bookerID int64) ([]model.Booking, error)
	ByOwner(ctx context.Context, ownerID int64) ([]model.Booking, error)
}

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Items interface {
	ByID(ctx context.Context, id int64) (*model.Item, error)
}

type Service interface {
	Create(ctx context.Context, itemID int64, start, end time.Time, bookerID int64) (*model.Booking, error)
	Approve(ctx context.Context, bookingID int64, approved bool, actorID int64) (*model.Booking, error)
	ByID(ctx context.Context, bookingID, actorID int64) (*model.Booking, error)
	ByBookerAndState(ctx context.Context, state model.State, bookerID int64) ([]model.Booking, error)
	ByOwnerAndState(ctx context.Context, state model.State, ownerID int64) ([]model.Booking, error)
}

type service struct {
	r     Repo
	users Users
	items Items
	now   func() time.Time
}

func New(r Repo, users Users, items Items) Service {
	return &service{r: r, users: users, items: items, now: time.Now}
}

func (s *service) Create(ctx context.Context, itemID int64, start, end time.Time, bookerID int64) (*model.Booking, error) {
	booker, err := s.users.ByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if booker == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("user %d not found", bookerID))
	}

	item, err := s.items.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("item %d not found", itemID))
	}

	if !end.After(start) {
		return nil, apperr.New(apperr.InvalidDate, "booking end date must be after start date")
	}
	if !item.Available {
		return nil, apperr.New(apperr.ItemUnavailable, fmt.Sprintf("item %d is not available for booking", itemID))
	}

	b := &model.Booking{
		Start:  start,
		End:    end,
		Item:   *item,
		Booker: *booker,
		Status: model.StatusWaiting,
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Approve records the item owner's decision. A second call on an already
// decided booking simply overwrites the status.
func (s *service) Approve(ctx context.Context, bookingID int64, approved bool, actorID int64) (*model.Booking, error) {
	b, err := s.byID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Item.OwnerID != actorID {
		return nil, apperr.New(apperr.AccessDenied, fmt.Sprintf("user %d does not own item %d", actorID, b.Item.ID))
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}
	if err := s.r.SetStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

// ByID is visible only to the booker and the item owner.
func (s *service) ByID(ctx context.Context, bookingID, actorID int64) (*model.Booking, error) {
	b, err := s.byID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Booker.ID != actorID && b.Item.OwnerID != actorID {
		return nil, apperr.New(apperr.AccessDenied, fmt.Sprintf("user %d may not view booking %d", actorID, bookingID))
	}
	return b, nil
}

func (s *service) ByBookerAndState(ctx context.Context, state model.State, bookerID int64) ([]model.Booking, error) {
	bookings, err := s.r.ByBooker(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	return filterByState(bookings, state, s.now()), nil
}

// ByOwnerAndState reports NotFound when the owner has no bookings at all,
// but an empty list when bookings exist and none match the filter.
func (s *service) ByOwnerAndState(ctx context.Context, state model.State, ownerID int64) ([]model.Booking, error) {
	bookings, err := s.r.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("no bookings found for owner %d", ownerID))
	}
	return filterByState(bookings, state, s.now()), nil
}

func (s *service) byID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	b, err := s.r.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("booking %d not found", bookingID))
	}
	return b, nil
}

// filterByState keeps the bookings matching the state, evaluated against a
// single now. An unrecognized state selects nothing.
func filterByState(bookings []model.Booking, state model.State, now time.Time) []model.Booking {
	if state == model.StateAll {
		return bookings
	}

	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		var keep bool
		switch state {
		case model.StateCurrent:
			keep = b.Start.Before(now) && !b.End.Before(now)
		case model.StatePast:
			keep = b.End.Before(now)
		case model.StateFuture:
			keep = b.Start.After(now)
		case model.StateWaiting:
			keep = b.Status == model.StatusWaiting
		case model.StateRejected:
			keep = b.Status == model.StatusRejected
		case model.StateApproved:
			keep = b.Status == model.StatusApproved
		}
		if keep {
			out = append(out, b)
		}
	}
	return out
}
