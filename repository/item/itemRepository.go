package itemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/database"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	ByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Search(ctx context.Context, text string) ([]model.Item, error)
	ByRequest(ctx context.Context, requestID int64) ([]model.RequestAnswer, error)

	InsertComment(ctx context.Context, c *model.Comment) error
	CommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, it *model.Item) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID,
	).Scan(&it.ID)
}

func (r *repo) Update(ctx context.Context, it *model.Item) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`,
		it.ID, it.Name, it.Description, it.Available)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	it := &model.Item{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`,
		id,
	).Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) ByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// Search matches available items by case-insensitive substring over name
// and description. The empty-text case is handled by the service.
func (r *repo) Search(ctx context.Context, text string) ([]model.Item, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		AND available = TRUE
		ORDER BY id`,
		text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *repo) ByRequest(ctx context.Context, requestID int64) ([]model.RequestAnswer, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, owner_id
		FROM items
		WHERE request_id = $1
		ORDER BY id`,
		requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RequestAnswer
	for rows.Next() {
		var a model.RequestAnswer
		if err := rows.Scan(&a.ID, &a.Name, &a.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repo) InsertComment(ctx context.Context, c *model.Comment) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO comments (text, item_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created`,
		c.Text, c.ItemID, c.AuthorID,
	).Scan(&c.ID, &c.Created)
}

func (r *repo) CommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created`,
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanItems(rows pgx.Rows) ([]model.Item, error) {
	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
