// Package fragment scrapes the Fragment gift marketplace. Catalog and
// detail extraction are pure functions over an already-parsed page; the
// Client composes fetching with extraction and owns every selector the
// site's markup dictates, callers never touch HTML.
package fragment

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type GiftsRequest struct {
	// category slug to narrow the catalog to, ex. "plushpepe"; empty
	// requests every category
	Type string
	// defaults to FilterAll
	Filter Filter
	// left off the request when empty, the site then applies its default
	Sort Sort
}

// Gifts fetches one catalog page and extracts its listings. Transport
// errors propagate as-is; a page without listings is ([], nil).
func (c *Client) Gifts(ctx context.Context, req GiftsRequest) ([]Gift, error) {
	ctx, span := tracer.Start(ctx, "client:Gifts")
	defer span.End()

	filter := req.Filter
	if filter == "" {
		filter = FilterAll
	}
	span.SetAttributes(
		attribute.String("type", req.Type),
		attribute.String("filter", string(filter)),
	)

	params := map[string]string{"filter": string(filter)}
	if req.Sort != "" {
		params["sort"] = string(req.Sort)
	}
	path := "/gifts"
	if req.Type != "" {
		path = "/gifts/" + req.Type
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Post(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch catalog")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse catalog html")
		return nil, err
	}

	gifts := ExtractListings(doc, c.BaseUrl)
	span.SetAttributes(attribute.Int("listings", len(gifts)))
	return gifts, nil
}

// GiftDetail fetches a listing's detail page and extracts the full
// record, carrying the listing's id and type through.
func (c *Client) GiftDetail(ctx context.Context, gift Gift) (GiftDetail, error) {
	ctx, span := tracer.Start(ctx, "client:GiftDetail")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("id", gift.Id),
		attribute.String("type", gift.Type),
	)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(gift.Url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch detail page")
		return GiftDetail{}, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse detail html")
		return GiftDetail{}, err
	}

	return ExtractDetail(doc, gift.Id, gift.Type), nil
}

// CollectDetails fetches detail records for many listings with at most
// `concurrency` fetches in flight. The pipelines share no state; output
// order matches input order. Individual failures leave a zero record at
// that index and are aggregated into the returned error.
func (c *Client) CollectDetails(ctx context.Context, gifts []Gift, concurrency int) ([]GiftDetail, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	details := make([]GiftDetail, len(gifts))
	errs := make([]error, len(gifts))
	sem := make(chan struct{}, concurrency)
	wg := sync.WaitGroup{}

	for i, gift := range gifts {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, gift Gift) {
			defer wg.Done()
			defer func() { <-sem }()

			detail, err := c.GiftDetail(ctx, gift)
			if err != nil {
				errs[i] = err
				return
			}
			details[i] = detail
		}(i, gift)
	}
	wg.Wait()

	return details, errors.Join(errs...)
}
