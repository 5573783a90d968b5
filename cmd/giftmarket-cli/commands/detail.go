package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailCmd)
}

var detailCmd = &cobra.Command{
	Use:   "detail <type> <id>",
	Short: "Fetches one gift's page and shows its attributes and history.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fatal("id must be a number", err)
		}

		detail, err := client.GiftDetail(cmd.Context(), client.GiftRef(args[0], id))
		if err != nil {
			fatal("failed to fetch gift detail", err)
		}

		t := newTable()
		t.AppendRow(table.Row{"gift", fmt.Sprintf("%s #%d", detail.Type, detail.Id)})
		t.AppendRow(table.Row{"owner", detail.Owner})
		t.AppendRow(table.Row{"model", detail.Model})
		t.AppendRow(table.Row{"backdrop", detail.Backdrop})
		t.AppendRow(table.Row{"symbol", detail.Symbol})
		t.AppendRow(table.Row{"issued", strings.Join(detail.Issued, " / ")})
		t.AppendRow(table.Row{"ton price", formatPrice(detail.TonPrice)})
		if detail.UsdPrice != nil {
			t.AppendRow(table.Row{"usd price", fmt.Sprintf("$%.2f", *detail.UsdPrice)})
		}
		t.Render()

		if len(detail.History) == 0 {
			return
		}
		h := newTable()
		h.AppendHeader(table.Row{"price", "date", "buyer"})
		for _, transfer := range detail.History {
			h.AppendRow(table.Row{transfer.Price, transfer.Date, transfer.Buyer})
		}
		h.Render()
	},
}
