package fragment

import (
	"giftmarket-backend/lib/htmlutil"
	"giftmarket-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

const unknownValue = "Unknown"

// fixedAttributes builds the key -> value-cell lookup from the detail
// page's fixed attributes table. Keys are the lowercased trimmed text of
// the first cell; a duplicate key overwrites the earlier row.
func fixedAttributes(doc *goquery.Document) map[string]*goquery.Selection {
	attrs := map[string]*goquery.Selection{}
	doc.Find(".tm-table-fixed tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		key := textutil.NormalizeKey(cells.First().Text())
		attrs[key] = cells.Eq(1)
	})
	return attrs
}

// cleanAttribute reads an attribute cell and drops the trailing rarity
// token, defaulting to "Unknown" when the key is absent.
func cleanAttribute(attrs map[string]*goquery.Selection, key string) string {
	cell, ok := attrs[key]
	if !ok {
		return unknownValue
	}
	return textutil.TrimRarityToken(htmlutil.CleanText(cell.Text()))
}

// ExtractDetail turns a parsed detail page into a GiftDetail. Id and
// giftType come from the catalog step and are copied through verbatim.
//
// Every lookup degrades on absence: attributes fall back to "Unknown",
// prices stay nil, history stays empty. A page missing the attributes
// table entirely produces an all-default record, never an error.
func ExtractDetail(doc *goquery.Document, id int64, giftType string) GiftDetail {
	attrs := fixedAttributes(doc)

	detail := GiftDetail{
		Id:       id,
		Type:     giftType,
		Model:    cleanAttribute(attrs, "model"),
		Backdrop: cleanAttribute(attrs, "backdrop"),
		Symbol:   cleanAttribute(attrs, "symbol"),
		Owner:    unknownValue,
		Issued:   []string{},
		History:  []OwnershipTransfer{},
	}

	// owner keeps its full text, there is no rarity token to strip
	if cell, ok := attrs["owner"]; ok {
		owner := htmlutil.CleanText(cell.Text())
		if owner != "" {
			detail.Owner = owner
		}
	}

	if cell, ok := attrs["issued"]; ok {
		detail.Issued = textutil.IssuedValues(htmlutil.CleanText(cell.Text()))
	}

	priceBox := doc.Find(".tm-section-bid-info").First()
	if priceBox.Length() > 0 {
		// the ton element nests the usd label inside it, so only its own
		// direct text is the ton amount
		tonCell := priceBox.Find(".tm-value").First()
		if tonCell.Length() > 0 {
			price, ok := textutil.ParseAmount(htmlutil.OwnText(tonCell))
			if ok {
				detail.TonPrice = &price
				detail.IsForSale = true
			}
		}

		usdCell := priceBox.Find(".tm-usd-value").First()
		if usdCell.Length() > 0 {
			price, ok := textutil.ParseUsdAmount(htmlutil.CleanText(usdCell.Text()))
			if ok {
				detail.UsdPrice = &price
			}
		}
	}

	doc.Find(".tm-table-wrap tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		detail.History = append(detail.History, OwnershipTransfer{
			Price: htmlutil.CleanText(cells.Eq(0).Text()),
			Date:  htmlutil.CleanText(cells.Eq(1).Text()),
			Buyer: htmlutil.CleanText(cells.Eq(2).Text()),
		})
	})

	return detail
}
