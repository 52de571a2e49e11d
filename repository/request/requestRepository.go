package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/database"
)

type Repo interface {
	Create(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByRequester(ctx context.Context, requesterID int64) ([]model.ItemRequest, error)
	ByOtherRequesters(ctx context.Context, requesterID int64) ([]model.ItemRequest, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, req *model.ItemRequest) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO item_requests (description, requester_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`,
		req.Description, req.RequesterID, req.Created,
	).Scan(&req.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	req := &model.ItemRequest{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, description, requester_id, created
		FROM item_requests
		WHERE id = $1`,
		id,
	).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) ByRequester(ctx context.Context, requesterID int64) ([]model.ItemRequest, error) {
	return r.list(ctx, `
		SELECT id, description, requester_id, created
		FROM item_requests
		WHERE requester_id = $1
		ORDER BY created DESC`,
		requesterID)
}

func (r *repo) ByOtherRequesters(ctx context.Context, requesterID int64) ([]model.ItemRequest, error) {
	return r.list(ctx, `
		SELECT id, description, requester_id, created
		FROM item_requests
		WHERE requester_id <> $1
		ORDER BY created DESC`,
		requesterID)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.ItemRequest, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ItemRequest
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
