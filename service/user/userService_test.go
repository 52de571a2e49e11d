package usersvc

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/apperr"
)

type repoMock struct {
	createFn  func(ctx context.Context, u *model.User) error
	updateFn  func(ctx context.Context, u *model.User) error
	deleteFn  func(ctx context.Context, id int64) error
	byIDFn    func(ctx context.Context, id int64) (*model.User, error)
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	allFn     func(ctx context.Context) ([]model.User, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		u.ID = 1
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *repoMock) Update(ctx context.Context, u *model.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, u)
}

func (m *repoMock) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *repoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

func (m *repoMock) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *repoMock) All(ctx context.Context) ([]model.User, error) {
	if m.allFn == nil {
		return nil, nil
	}
	return m.allFn(ctx)
}

func TestCreate_Success(t *testing.T) {
	svc := New(&repoMock{})

	u, err := svc.Create(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "alice@example.com", u.Email)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	m := &repoMock{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 9, Email: email}, nil
		},
	}
	svc := New(m)

	_, err := svc.Create(context.Background(), "Bob", "taken@example.com")
	require.Equal(t, apperr.AlreadyExists, apperr.Code(err))
}

func TestCreate_DuplicateEmailFromIndex(t *testing.T) {
	// The pre-insert lookup can race; the unique index violation must map
	// to the same kind.
	m := &repoMock{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := New(m)

	_, err := svc.Create(context.Background(), "Bob", "taken@example.com")
	require.Equal(t, apperr.AlreadyExists, apperr.Code(err))
}

func TestUpdate_PartialFields(t *testing.T) {
	var saved *model.User
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Alice", Email: "alice@example.com"}, nil
		},
		updateFn: func(ctx context.Context, u *model.User) error {
			saved = u
			return nil
		},
	}
	svc := New(m)

	name := "Alice B"
	u, err := svc.Update(context.Background(), 1, &name, nil)
	require.NoError(t, err)
	require.Equal(t, "Alice B", u.Name)
	require.Equal(t, "alice@example.com", u.Email, "nil email must be skipped")
	require.NotNil(t, saved)
}

func TestUpdate_OwnEmailIsNotAConflict(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Alice", Email: "alice@example.com"}, nil
		},
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email}, nil
		},
	}
	svc := New(m)

	email := "alice@example.com"
	_, err := svc.Update(context.Background(), 1, nil, &email)
	require.NoError(t, err)
}

func TestUpdate_EmailTakenByOther(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Alice", Email: "alice@example.com"}, nil
		},
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 2, Email: email}, nil
		},
	}
	svc := New(m)

	email := "bob@example.com"
	_, err := svc.Update(context.Background(), 1, nil, &email)
	require.Equal(t, apperr.AlreadyExists, apperr.Code(err))
}

func TestUpdate_NotFound(t *testing.T) {
	svc := New(&repoMock{})

	name := "ghost"
	_, err := svc.Update(context.Background(), 404, &name, nil)
	require.Equal(t, apperr.NotFound, apperr.Code(err))
}

func TestDelete_NotFound(t *testing.T) {
	svc := New(&repoMock{})

	err := svc.Delete(context.Background(), 404)
	require.Equal(t, apperr.NotFound, apperr.Code(err))
}

func TestByID_NotFound(t *testing.T) {
	svc := New(&repoMock{})

	_, err := svc.ByID(context.Background(), 404)
	require.Equal(t, apperr.NotFound, apperr.Code(err))
}
