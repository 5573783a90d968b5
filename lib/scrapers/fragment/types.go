package fragment

// Filter narrows a catalog request to a listing state.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterSale    Filter = "sale"
	FilterAuction Filter = "auction"
	FilterSold    Filter = "sold"
)

// Sort picks the catalog ordering applied by the site itself. Extraction
// preserves whatever order the page renders.
type Sort string

const (
	SortPriceDesc Sort = "price_desc"
	SortPriceAsc  Sort = "price_asc"
	SortListed    Sort = "listed"
	SortEnding    Sort = "ending"
)

// Gift is one row of a catalog page. It is plain data, fetching the
// detail page for it is a Client operation taking the (Id, Type, Url)
// key this record carries.
type Gift struct {
	Id   int64
	Name string
	// the category slug from the listing link, ex. "plushpepe"
	Type string
	// nil unless the gift is currently listed for sale
	Price     *float64
	Url       string
	IsForSale bool
}

// OwnershipTransfer is one row of the detail page's history table.
// Price stays display text, the symbol and format vary row to row.
type OwnershipTransfer struct {
	Price string
	Date  string
	Buyer string
}

// GiftDetail is the full record for one gift. Id and Type are carried
// over from the catalog step, the detail page does not reliably expose
// them. IsForSale is true exactly when TonPrice is non-nil; UsdPrice is
// independent of both.
type GiftDetail struct {
	Id       int64
	Type     string
	Owner    string
	Model    string
	Backdrop string
	Symbol   string
	Issued   []string
	TonPrice *float64
	UsdPrice *float64

	IsForSale bool
	History   []OwnershipTransfer
}
