package requestsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByRequester(ctx context.Context, requesterID int64) ([]model.ItemRequest, error)
	ByOtherRequesters(ctx context.Context, requesterID int64) ([]model.ItemRequest, error)
}

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Items interface {
	ByRequest(ctx context.Context, requestID int64) ([]model.RequestAnswer, error)
}

type Service interface {
	Add(ctx context.Context, requesterID int64, description string) (*model.ItemRequest, error)
	AllForUser(ctx context.Context, requesterID int64) ([]model.ItemRequestWithAnswers, error)
	AllForOthers(ctx context.Context, requesterID int64) ([]model.ItemRequest, error)
	ByID(ctx context.Context, requestID int64) (*model.ItemRequestWithAnswers, error)
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

func (s *service) Add(ctx context.Context, requesterID int64, description string) (*model.ItemRequest, error) {
	requester, err := s.users.ByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("user %d not found", requesterID))
	}

	req := &model.ItemRequest{
		Description: description,
		RequesterID: requester.ID,
		Created:     s.now(),
	}
	if err := s.r.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AllForUser returns the requester's own requests, each with the items
// answering it.
func (s *service) AllForUser(ctx context.Context, requesterID int64) ([]model.ItemRequestWithAnswers, error) {
	requests, err := s.r.ByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	out := make([]model.ItemRequestWithAnswers, 0, len(requests))
	for _, req := range requests {
		answers, err := s.items.ByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.ItemRequestWithAnswers{ItemRequest: req, Items: answers})
	}
	return out, nil
}

func (s *service) AllForOthers(ctx context.Context, requesterID int64) ([]model.ItemRequest, error) {
	return s.r.ByOtherRequesters(ctx, requesterID)
}

func (s *service) ByID(ctx context.Context, requestID int64) (*model.ItemRequestWithAnswers, error) {
	req, err := s.r.ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("request %d not found", requestID))
	}

	answers, err := s.items.ByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &model.ItemRequestWithAnswers{ItemRequest: *req, Items: answers}, nil
}
