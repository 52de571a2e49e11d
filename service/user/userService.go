package usersvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/apperr"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	All(ctx context.Context) ([]model.User, error)
}

type Service interface {
	All(ctx context.Context) ([]model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, name, email string) (*model.User, error)
	Update(ctx context.Context, id int64, name, email *string) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r} }

func (s *service) All(ctx context.Context) ([]model.User, error) {
	return s.r.All(ctx)
}

func (s *service) ByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("user %d not found", id))
	}
	return u, nil
}

func (s *service) Create(ctx context.Context, name, email string) (*model.User, error) {
	if err := s.checkUniqueEmail(ctx, 0, email); err != nil {
		return nil, err
	}

	u := &model.User{Name: name, Email: email}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, mapDuplicateErr(err, email)
	}
	return u, nil
}

// Update applies the non-nil fields only. The uniqueness check skips the
// row being updated so a user can resubmit their own email.
func (s *service) Update(ctx context.Context, id int64, name, email *string) (*model.User, error) {
	u, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email != nil {
		if err := s.checkUniqueEmail(ctx, id, *email); err != nil {
			return nil, err
		}
		u.Email = *email
	}
	if name != nil {
		u.Name = *name
	}
	if err := s.r.Update(ctx, u); err != nil {
		return nil, mapDuplicateErr(err, u.Email)
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

func (s *service) checkUniqueEmail(ctx context.Context, selfID int64, email string) error {
	existing, err := s.r.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return apperr.New(apperr.AlreadyExists, fmt.Sprintf("user with email %s already exists", email))
	}
	return nil
}

// mapDuplicateErr turns the unique-index violation into AlreadyExists. The
// lookup in checkUniqueEmail races with concurrent creates, the index does
// not.
func mapDuplicateErr(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.New(apperr.AlreadyExists, fmt.Sprintf("user with email %s already exists", email))
	}
	return err
}
