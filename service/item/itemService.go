package itemsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	ByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Search(ctx context.Context, text string) ([]model.Item, error)

	InsertComment(ctx context.Context, c *model.Comment) error
	CommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
}

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Requests interface {
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
}

type Bookings interface {
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
}

type NewItem struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, ownerID int64, in NewItem) (*model.Item, error)
	Update(ctx context.Context, actorID, itemID int64, patch ItemPatch) (*model.Item, error)
	ByID(ctx context.Context, id int64) (*model.Item, error)
	Detail(ctx context.Context, id int64) (*model.ItemDetail, error)
	AllByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Search(ctx context.Context, text string) ([]model.Item, error)
	Delete(ctx context.Context, id int64) error
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*model.Comment, error)
}

type service struct {
	r        Repo
	users    Users
	requests Requests
	bookings Bookings
	now      func() time.Time
}

func New(r Repo, users Users, requests Requests, bookings Bookings) Service {
	return &service{r: r, users: users, requests: requests, bookings: bookings, now: time.Now}
}

func (s *service) Create(ctx context.Context, ownerID int64, in NewItem) (*model.Item, error) {
	owner, err := s.users.ByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("user %d not found", ownerID))
	}

	it := &model.Item{
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
		OwnerID:     owner.ID,
	}

	// A dangling request id is skipped, not rejected.
	if in.RequestID != nil {
		req, err := s.requests.ByID(ctx, *in.RequestID)
		if err != nil {
			return nil, err
		}
		if req != nil {
			it.RequestID = &req.ID
		}
	}

	if err := s.r.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, actorID, itemID int64, patch ItemPatch) (*model.Item, error) {
	it, err := s.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != actorID {
		return nil, apperr.New(apperr.AccessDenied, fmt.Sprintf("user %d does not own item %d", actorID, itemID))
	}

	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}

	if err := s.r.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) ByID(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("item %d not found", id))
	}
	return it, nil
}

// Detail adds the closest bookings around now and the item's comments.
func (s *service) Detail(ctx context.Context, id int64) (*model.ItemDetail, error) {
	it, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	last, err := s.bookings.LastForItem(ctx, id, now)
	if err != nil {
		return nil, err
	}
	next, err := s.bookings.NextForItem(ctx, id, now)
	if err != nil {
		return nil, err
	}
	comments, err := s.r.CommentsByItem(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ItemDetail{
		Item:        *it,
		LastBooking: last,
		NextBooking: next,
		Comments:    comments,
	}, nil
}

func (s *service) AllByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	return s.r.ByOwner(ctx, ownerID)
}

// Search over available items; blank text means "nothing", not "everything".
func (s *service) Search(ctx context.Context, text string) ([]model.Item, error) {
	if text == "" {
		return []model.Item{}, nil
	}
	return s.r.Search(ctx, text)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

// AddComment requires a finished booking of the item by the author.
func (s *service) AddComment(ctx context.Context, itemID, authorID int64, text string) (*model.Comment, error) {
	author, err := s.users.ByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("user %d not found", authorID))
	}
	it, err := s.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	ok, err := s.bookings.HasFinishedBooking(ctx, author.ID, it.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.InvalidRequest,
			fmt.Sprintf("user %d has no finished booking of item %d", authorID, itemID))
	}

	c := &model.Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
	}
	if err := s.r.InsertComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
