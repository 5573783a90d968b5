package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type CreateSnapshotParams struct {
	GiftType string
	Filter   string
	TakenAt  int64
}

func (q *Queries) CreateSnapshot(ctx context.Context, arg CreateSnapshotParams) (int64, error) {
	res, err := q.db.ExecContext(
		ctx,
		`INSERT INTO snapshot (gift_type, filter, taken_at) VALUES (?, ?, ?)`,
		arg.GiftType, arg.Filter, arg.TakenAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type CreateSnapshotListingParams struct {
	SnapshotID int64
	GiftID     int64
	GiftType   string
	Name       string
	Price      sql.NullFloat64
	Url        string
	ForSale    bool
}

func (q *Queries) CreateSnapshotListing(ctx context.Context, arg CreateSnapshotListingParams) error {
	_, err := q.db.ExecContext(
		ctx,
		`INSERT INTO snapshot_listing
		(snapshot_id, gift_id, gift_type, name, price, url, for_sale)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.SnapshotID, arg.GiftID, arg.GiftType, arg.Name, arg.Price, arg.Url, arg.ForSale,
	)
	return err
}

type Snapshot struct {
	ID       int64
	GiftType string
	Filter   string
	TakenAt  int64
	Listings int64
}

func (q *Queries) GetSnapshots(ctx context.Context, giftType string) ([]Snapshot, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT s.id, s.gift_type, s.filter, s.taken_at, COUNT(l.snapshot_id)
		FROM snapshot s
		LEFT JOIN snapshot_listing l ON l.snapshot_id = s.id
		WHERE s.gift_type = ?
		GROUP BY s.id
		ORDER BY s.taken_at ASC`,
		giftType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		err := rows.Scan(&s.ID, &s.GiftType, &s.Filter, &s.TakenAt, &s.Listings)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type Listing struct {
	GiftID   int64
	GiftType string
	Name     string
	Price    sql.NullFloat64
	Url      string
	ForSale  bool
}

// GetLatestListings returns the listings of the most recent snapshot for
// a gift type.
func (q *Queries) GetLatestListings(ctx context.Context, giftType string) ([]Listing, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT l.gift_id, l.gift_type, l.name, l.price, l.url, l.for_sale
		FROM snapshot_listing l
		WHERE l.snapshot_id = (
			SELECT id FROM snapshot
			WHERE gift_type = ?
			ORDER BY taken_at DESC LIMIT 1
		)
		ORDER BY l.rowid ASC`,
		giftType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Listing
	for rows.Next() {
		var l Listing
		err := rows.Scan(&l.GiftID, &l.GiftType, &l.Name, &l.Price, &l.Url, &l.ForSale)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type PricePoint struct {
	TakenAt int64
	Price   sql.NullFloat64
	ForSale bool
}

type GetPriceHistoryParams struct {
	GiftType string
	GiftID   int64
}

func (q *Queries) GetPriceHistory(ctx context.Context, arg GetPriceHistoryParams) ([]PricePoint, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT s.taken_at, l.price, l.for_sale
		FROM snapshot_listing l
		JOIN snapshot s ON s.id = l.snapshot_id
		WHERE l.gift_type = ? AND l.gift_id = ?
		ORDER BY s.taken_at ASC`,
		arg.GiftType, arg.GiftID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PricePoint
	for rows.Next() {
		var p PricePoint
		err := rows.Scan(&p.TakenAt, &p.Price, &p.ForSale)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
