package fragment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMarketServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/gifts/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if r.URL.Query().Get("filter") != "sale" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write(catalogPageTest)
			return
		}
		w.Write(giftPageTest)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, baseUrl string) *Client {
	client, err := NewClient(ClientOptions{BaseUrl: baseUrl})
	require.NoError(t, err)
	return client
}

func TestClientGifts(t *testing.T) {
	server := newMarketServer(t)
	client := newTestClient(t, server.URL)

	gifts, err := client.Gifts(context.Background(), GiftsRequest{
		Type:   "plushpepe",
		Filter: FilterSale,
		Sort:   SortPriceDesc,
	})
	require.NoError(t, err)
	require.Len(t, gifts, 3)
	// listing urls resolve against the client's base url
	require.Equal(t, server.URL+"/gifts/plushpepe-1234", gifts[0].Url)
}

func TestClientCollectDetails(t *testing.T) {
	server := newMarketServer(t)
	client := newTestClient(t, server.URL)

	ctx := context.Background()
	gifts, err := client.Gifts(ctx, GiftsRequest{Type: "plushpepe", Filter: FilterSale})
	require.NoError(t, err)

	details, err := client.CollectDetails(ctx, gifts, 2)
	require.NoError(t, err)
	require.Len(t, details, len(gifts))

	for i, detail := range details {
		// detail records always inherit the listing's key, whatever the
		// page says
		require.Equal(t, gifts[i].Id, detail.Id)
		require.Equal(t, gifts[i].Type, detail.Type)
		require.Equal(t, "Alice", detail.Owner)
	}
}
