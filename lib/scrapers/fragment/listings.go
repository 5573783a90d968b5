package fragment

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"giftmarket-backend/lib/htmlutil"
	"giftmarket-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// typeFromHref derives the category slug from a listing link, the last
// path segment encodes the type and a numeric suffix, ex. ".../plushpepe-1234".
func typeFromHref(href string) string {
	segment := href
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.Index(segment, "-"); idx >= 0 {
		segment = segment[:idx]
	}
	return segment
}

// parseItemNum parses the numeric-id cell, stripping the single leading
// marker rune ("#") the site renders in front of the number.
func parseItemNum(text string) (int64, bool) {
	text = strings.Trim(text, " \n\t")
	runes := []rune(text)
	if len(runes) > 0 && !unicode.IsDigit(runes[0]) {
		runes = runes[1:]
	}
	if len(runes) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(string(runes), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func resolveHref(base *url.URL, href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}

// ExtractListings turns a parsed catalog page into listing summaries,
// one per grid item, preserving document order (which is the page's own
// sort/filter order). A page without grid items yields an empty slice.
//
// Per-field failures degrade: a malformed price just marks the row not
// for sale. The id is the one exception, a row whose id cell is missing
// or non-numeric is dropped and extraction continues with the rest.
func ExtractListings(doc *goquery.Document, base *url.URL) []Gift {
	gifts := []Gift{}
	doc.Find(".tm-grid-item").Each(func(_ int, item *goquery.Selection) {
		href := item.AttrOr("href", "")

		id, ok := parseItemNum(item.Find(".item-num").First().Text())
		if !ok {
			slog.Debug("skipping grid item with unparseable id", "href", href)
			return
		}

		gift := Gift{
			Id:   id,
			Name: htmlutil.CleanText(item.Find(".item-name").First().Text()),
			Type: typeFromHref(href),
			Url:  resolveHref(base, href),
		}

		priceCell := item.Find(".icon-ton").First()
		if priceCell.Length() > 0 {
			price, ok := textutil.ParseAmount(priceCell.Text())
			if ok {
				gift.Price = &price
				gift.IsForSale = true
			}
		}

		gifts = append(gifts, gift)
	})
	return gifts
}
