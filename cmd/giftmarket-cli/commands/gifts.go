package commands

import (
	"fmt"

	"giftmarket-backend/lib/scrapers/fragment"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var giftsType *string
var giftsFilter *string
var giftsSort *string
var giftsLimit *int

func init() {
	giftsType = giftsCmd.Flags().String("type", "", "Category slug to narrow the catalog to, ex. plushpepe.")
	giftsFilter = giftsCmd.Flags().String("filter", "", "One of: auction, all, sold, sale.")
	giftsSort = giftsCmd.Flags().String("sort", "", "One of: price_desc, price_asc, listed, ending.")
	giftsLimit = giftsCmd.Flags().Int("limit", 0, "Show at most this many rows, 0 shows all.")
	rootCmd.AddCommand(giftsCmd)
}

func formatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f TON", *price)
}

var giftsCmd = &cobra.Command{
	Use:   "gifts [--type <slug>] [--filter <filter>] [--sort <sort>] [--limit <n>]",
	Short: "Scrapes a catalog page and lists its gifts.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		filter := cfg.Filter
		if *giftsFilter != "" {
			filter = *giftsFilter
		}

		gifts, err := client.Gifts(cmd.Context(), fragment.GiftsRequest{
			Type:   *giftsType,
			Filter: fragment.Filter(filter),
			Sort:   fragment.Sort(*giftsSort),
		})
		if err != nil {
			fatal("failed to scrape catalog", err)
		}

		if *giftsLimit > 0 && len(gifts) > *giftsLimit {
			gifts = gifts[:*giftsLimit]
		}

		t := newTable()
		t.AppendHeader(table.Row{"id", "name", "type", "price", "url"})
		for _, gift := range gifts {
			t.AppendRow(table.Row{gift.Id, gift.Name, gift.Type, formatPrice(gift.Price), gift.Url})
		}
		t.Render()
	},
}
