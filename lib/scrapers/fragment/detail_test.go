package fragment

import (
	"strings"
	"testing"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed gift_page_test.html
var giftPageTest []byte

func TestExtractDetail(t *testing.T) {
	doc := parseTestDoc(t, giftPageTest)
	detail := ExtractDetail(doc, 1234, "plushpepe")

	// id and type come from the caller, never the page
	require.Equal(t, int64(1234), detail.Id)
	require.Equal(t, "plushpepe", detail.Type)

	require.Equal(t, "Alice", detail.Owner)
	require.Equal(t, "Vintage", detail.Model)
	require.Equal(t, "Deep Blue", detail.Backdrop)
	require.Equal(t, "Rare", detail.Symbol)
	require.Equal(t, []string{"1,234", "10,000"}, detail.Issued)

	// the ton amount is the element's own text, the nested usd label
	// must not leak into it
	require.True(t, detail.IsForSale)
	require.NotNil(t, detail.TonPrice)
	require.Equal(t, float64(1500), *detail.TonPrice)
	require.NotNil(t, detail.UsdPrice)
	require.Equal(t, 45.2, *detail.UsdPrice)

	// history preserves document order, prices stay display text, and
	// the two-cell row is skipped
	require.Equal(t, []OwnershipTransfer{
		{Price: "10 TON", Date: "2023-01-01", Buyer: "Alice"},
		{Price: "8 TON", Date: "2022-12-01", Buyer: "Bob"},
	}, detail.History)
}

func TestExtractDetailEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><body>gone</body></html>",
	))
	require.NoError(t, err)

	detail := ExtractDetail(doc, 7, "ghost")

	require.Equal(t, int64(7), detail.Id)
	require.Equal(t, "ghost", detail.Type)
	require.Equal(t, "Unknown", detail.Owner)
	require.Equal(t, "Unknown", detail.Model)
	require.Equal(t, "Unknown", detail.Backdrop)
	require.Equal(t, "Unknown", detail.Symbol)
	require.Empty(t, detail.Issued)
	require.Nil(t, detail.TonPrice)
	require.Nil(t, detail.UsdPrice)
	require.False(t, detail.IsForSale)
	require.Empty(t, detail.History)
}

func TestExtractDetailNotForSale(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table class="tm-table-fixed"><tbody>
			<tr><td>Owner</td><td>Bob</td></tr>
			<tr><td>Model</td><td>Lunar 0.5%</td></tr>
		</tbody></table>
	`))
	require.NoError(t, err)

	detail := ExtractDetail(doc, 9, "lolpop")

	require.Equal(t, "Bob", detail.Owner)
	require.Equal(t, "Lunar", detail.Model)
	// no bid-info section, the invariant is nil price <=> not for sale
	require.Nil(t, detail.TonPrice)
	require.False(t, detail.IsForSale)
}

func TestExtractDetailDuplicateKeyLastWins(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table class="tm-table-fixed"><tbody>
			<tr><td>Model</td><td>First 1%</td></tr>
			<tr><td>Model</td><td>Second 2%</td></tr>
		</tbody></table>
	`))
	require.NoError(t, err)

	detail := ExtractDetail(doc, 1, "x")
	require.Equal(t, "Second", detail.Model)
}

func TestExtractDetailUnparseableTonPrice(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div class="tm-section-bid-info">
			<div class="tm-value">soon <span class="tm-usd-value">~$12.00</span></div>
		</div>
	`))
	require.NoError(t, err)

	detail := ExtractDetail(doc, 1, "x")

	// usd parsing is independent of the ton outcome
	require.Nil(t, detail.TonPrice)
	require.False(t, detail.IsForSale)
	require.NotNil(t, detail.UsdPrice)
	require.Equal(t, float64(12), *detail.UsdPrice)
}

func TestExtractDetailIdempotent(t *testing.T) {
	doc := parseTestDoc(t, giftPageTest)

	a := ExtractDetail(doc, 1234, "plushpepe")
	b := ExtractDetail(doc, 1234, "plushpepe")
	require.Empty(t, cmp.Diff(a, b))
}
