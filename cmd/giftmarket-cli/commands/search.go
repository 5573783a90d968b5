package commands

import (
	"fmt"

	"giftmarket-backend/lib/sqliteutil"
	"giftmarket-backend/services/giftindex"
	"giftmarket-backend/services/giftindex/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchType *string
var searchDb *string
var searchMin *float64

func init() {
	searchType = searchCmd.Flags().String("type", "", "Category slug to search within.")
	searchDb = searchCmd.Flags().String("db", "", "The database holding recorded snapshots.")
	searchMin = searchCmd.Flags().Float64("min", 0.8, "Minimum name similarity, 0-1.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <name> [--type <slug>] [--db <path/to/snapshots.db>]",
	Short: "Fuzzy-searches the latest recorded snapshot by gift name.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		dbPath := cfg.Db
		if *searchDb != "" {
			dbPath = *searchDb
		}

		database, err := sqliteutil.OpenDB(db.Schema, dbPath)
		if err != nil {
			fatal("failed to open db", err)
		}
		defer database.Close()

		service := giftindex.NewService(database)
		matches, err := service.SearchListings(cmd.Context(), *searchType, args[0], *searchMin)
		if err != nil {
			fatal("failed to search listings", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"similarity", "id", "name", "price", "url"})
		for _, match := range matches {
			price := "-"
			if match.Listing.Price.Valid {
				price = fmt.Sprintf("%.2f TON", match.Listing.Price.Float64)
			}
			t.AppendRow(table.Row{
				fmt.Sprintf("%.2f", match.Similarity),
				match.Listing.GiftID,
				match.Listing.Name,
				price,
				match.Listing.Url,
			})
		}
		t.Render()
	},
}
