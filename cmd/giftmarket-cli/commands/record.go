package commands

import (
	"log/slog"
	"time"

	"giftmarket-backend/lib/scrapers/fragment"
	"giftmarket-backend/lib/sqliteutil"
	"giftmarket-backend/services/giftindex"
	"giftmarket-backend/services/giftindex/db"

	"github.com/spf13/cobra"
)

var recordType *string
var recordFilter *string
var recordDb *string

func init() {
	recordType = recordCmd.Flags().String("type", "", "Category slug to snapshot, ex. plushpepe.")
	recordFilter = recordCmd.Flags().String("filter", "", "One of: auction, all, sold, sale.")
	recordDb = recordCmd.Flags().String("db", "", "The database to write the snapshot to.")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record [--type <slug>] [--filter <filter>] [--db <path/to/output.db>]",
	Short: "Scrapes a catalog page and stores the listings as a snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		filter := cfg.Filter
		if *recordFilter != "" {
			filter = *recordFilter
		}
		dbPath := cfg.Db
		if *recordDb != "" {
			dbPath = *recordDb
		}

		t1 := time.Now()
		gifts, err := client.Gifts(cmd.Context(), fragment.GiftsRequest{
			Type:   *recordType,
			Filter: fragment.Filter(filter),
		})
		if err != nil {
			fatal("failed to scrape catalog", err)
		}

		database, err := sqliteutil.OpenDB(db.Schema, dbPath)
		if err != nil {
			fatal("failed to open db", err)
		}
		defer database.Close()

		service := giftindex.NewService(database)
		snapshotId, err := service.RecordListings(
			cmd.Context(), *recordType, fragment.Filter(filter), gifts,
		)
		if err != nil {
			fatal("failed to record snapshot", err)
		}

		slog.Info(
			"recorded snapshot",
			"snapshot", snapshotId,
			"listings", len(gifts),
			"seconds", time.Since(t1).Seconds(),
		)
	},
}
