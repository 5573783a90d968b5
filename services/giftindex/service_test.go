package giftindex

import (
	"context"
	"testing"

	"giftmarket-backend/lib/scrapers/fragment"
	"giftmarket-backend/lib/testutil"
	"giftmarket-backend/services/giftindex/db"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) Service {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "giftindex",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)
	t.Cleanup(func() { res.DB.Close() })
	return NewService(res.DB)
}

func price(v float64) *float64 {
	return &v
}

func testGifts() []fragment.Gift {
	return []fragment.Gift{
		{
			Id:        1234,
			Name:      "Plush Pepe",
			Type:      "plushpepe",
			Price:     price(1500),
			Url:       "https://fragment.com/gifts/plushpepe-1234",
			IsForSale: true,
		},
		{
			Id:   777,
			Name: "Plush Pepe",
			Type: "plushpepe",
			Url:  "https://fragment.com/gifts/plushpepe-777",
		},
	}
}

func TestRecordAndQuerySnapshots(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	snapshotId, err := service.RecordListings(ctx, "plushpepe", fragment.FilterSale, testGifts())
	require.NoError(t, err)
	require.NotZero(t, snapshotId)

	snapshots, err := service.Snapshots(ctx, "plushpepe")
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	require.Equal(t, "sale", snapshots[0].Filter)
	require.Equal(t, int64(2), snapshots[0].Listings)

	history, err := service.PriceHistory(ctx, "plushpepe", 1234)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.True(t, history[0].Price.Valid)
	require.Equal(t, float64(1500), history[0].Price.Float64)
	require.True(t, history[0].ForSale)

	// the unsold listing keeps a NULL price
	history, err = service.PriceHistory(ctx, "plushpepe", 777)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.False(t, history[0].Price.Valid)
}

func TestPriceHistoryAcrossSnapshots(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	gifts := testGifts()
	_, err := service.RecordListings(ctx, "plushpepe", fragment.FilterSale, gifts)
	require.NoError(t, err)

	gifts[0].Price = price(1600)
	_, err = service.RecordListings(ctx, "plushpepe", fragment.FilterSale, gifts)
	require.NoError(t, err)

	history, err := service.PriceHistory(ctx, "plushpepe", 1234)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, float64(1500), history[0].Price.Float64)
	require.Equal(t, float64(1600), history[1].Price.Float64)
}

func TestSearchListings(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	_, err := service.RecordListings(ctx, "plushpepe", fragment.FilterAll, testGifts())
	require.NoError(t, err)

	matches, err := service.SearchListings(ctx, "plushpepe", "plush pepe", 0.8)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	require.Equal(t, "Plush Pepe", matches[0].Listing.Name)

	matches, err = service.SearchListings(ctx, "plushpepe", "completely unrelated", 0.9)
	require.NoError(t, err)
	require.Empty(t, matches)
}
