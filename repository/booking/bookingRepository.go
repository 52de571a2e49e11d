package bookingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/PUprojects/shareit/model"
	"github.com/PUprojects/shareit/util/database"
)

const bookingCols = `
	b.id, b.start_date, b.end_date, b.status,
	i.id, i.name, i.description, i.available, i.owner_id, i.request_id,
	u.id, u.name, u.email`

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	SetStatus(ctx context.Context, id int64, status model.BookingStatus) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)
	ByBooker(ctx context.Context, bookerID int64) ([]model.Booking, error)
	ByOwner(ctx context.Context, ownerID int64) ([]model.Booking, error)

	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		b.Start, b.End, b.Item.ID, b.Booker.ID, b.Status,
	).Scan(&b.ID)
}

// SetStatus is a single UPDATE, so the status write is atomic per booking
// row without an explicit transaction.
func (r *repo) SetStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`,
		id, status)
	return err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	b, err := r.scanOne(r.db.Pool.QueryRow(ctx, `
		SELECT `+bookingCols+`
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = $1`,
		id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *repo) ByBooker(ctx context.Context, bookerID int64) ([]model.Booking, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+bookingCols+`
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.booker_id = $1
		ORDER BY b.start_date`,
		bookerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *repo) ByOwner(ctx context.Context, ownerID int64) ([]model.Booking, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+bookingCols+`
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE i.owner_id = $1
		ORDER BY b.start_date`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *repo) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND end_date < $3
		)`,
		bookerID, itemID, before,
	).Scan(&exists)
	return exists, err
}

func (r *repo) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	b, err := r.scanOne(r.db.Pool.QueryRow(ctx, `
		SELECT `+bookingCols+`
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.item_id = $1 AND b.start_date <= $2
		ORDER BY b.start_date DESC
		LIMIT 1`,
		itemID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *repo) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	b, err := r.scanOne(r.db.Pool.QueryRow(ctx, `
		SELECT `+bookingCols+`
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.item_id = $1 AND b.start_date > $2
		ORDER BY b.start_date
		LIMIT 1`,
		itemID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (r *repo) scanOne(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) scanAll(rows pgx.Rows) ([]model.Booking, error) {
	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.Status,
			&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
			&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
