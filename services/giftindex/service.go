// Package giftindex stores catalog scrape results in sqlite so price
// movement across scrapes can be inspected later.
package giftindex

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"giftmarket-backend/lib/scrapers/fragment"
	"giftmarket-backend/services/giftindex/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/giftindex")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// RecordListings writes one snapshot of a catalog scrape, all rows in a
// single transaction.
func (s Service) RecordListings(ctx context.Context, giftType string, filter fragment.Filter, gifts []fragment.Gift) (int64, error) {
	ctx, span := tracer.Start(ctx, "RecordListings")
	defer span.End()

	span.SetAttributes(
		attribute.String("gift_type", giftType),
		attribute.Int("listings", len(gifts)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	snapshotId, err := txqry.CreateSnapshot(ctx, db.CreateSnapshotParams{
		GiftType: giftType,
		Filter:   string(filter),
		TakenAt:  time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	for _, gift := range gifts {
		price := sql.NullFloat64{}
		if gift.Price != nil {
			price = sql.NullFloat64{Float64: *gift.Price, Valid: true}
		}
		err := txqry.CreateSnapshotListing(ctx, db.CreateSnapshotListingParams{
			SnapshotID: snapshotId,
			GiftID:     gift.Id,
			GiftType:   gift.Type,
			Name:       gift.Name,
			Price:      price,
			Url:        gift.Url,
			ForSale:    gift.IsForSale,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return snapshotId, nil
}

func (s Service) Snapshots(ctx context.Context, giftType string) ([]db.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Snapshots")
	defer span.End()

	snapshots, err := s.qry.GetSnapshots(ctx, giftType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return snapshots, nil
}

func (s Service) PriceHistory(ctx context.Context, giftType string, giftId int64) ([]db.PricePoint, error) {
	ctx, span := tracer.Start(ctx, "PriceHistory")
	defer span.End()

	span.SetAttributes(
		attribute.String("gift_type", giftType),
		attribute.Int64("gift_id", giftId),
	)

	points, err := s.qry.GetPriceHistory(ctx, db.GetPriceHistoryParams{
		GiftType: giftType,
		GiftID:   giftId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return points, nil
}

type ListingMatch struct {
	Listing    db.Listing
	Similarity float64
}

// SearchListings fuzzy-matches a name against the latest snapshot of a
// gift type, most similar first. Matches below minSimilarity (0-1,
// Jaro-Winkler) are dropped.
func (s Service) SearchListings(ctx context.Context, giftType, name string, minSimilarity float64) ([]ListingMatch, error) {
	ctx, span := tracer.Start(ctx, "SearchListings")
	defer span.End()

	span.SetAttributes(
		attribute.String("gift_type", giftType),
		attribute.String("name", name),
	)

	listings, err := s.qry.GetLatestListings(ctx, giftType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var matches []ListingMatch
	for _, listing := range listings {
		similarity := matchr.JaroWinkler(name, listing.Name, false)
		if similarity < minSimilarity {
			continue
		}
		matches = append(matches, ListingMatch{
			Listing:    listing,
			Similarity: similarity,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches, nil
}
