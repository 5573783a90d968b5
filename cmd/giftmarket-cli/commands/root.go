package commands

import (
	"context"
	"fmt"
	"os"

	"giftmarket-backend/lib/configutil"
	"giftmarket-backend/lib/restyutil"
	"giftmarket-backend/lib/scrapers/fragment"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "giftmarket-cli",
	Short: "giftmarket-cli scrapes the fragment gift marketplace.",
}

var debugHttp *bool

func init() {
	debugHttp = rootCmd.PersistentFlags().Bool("debug-http", false, "Dump every HTTP exchange to .dev/resty/giftmarket.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	BaseUrl string `json:"base_url"`
	// default catalog filter, ex. "sale"
	Filter string `json:"filter"`
	// detail fan-out width
	Concurrency int    `json:"concurrency"`
	Db          string `json:"db"`
}

// readConfig loads giftmarket.json5, a missing file just means defaults.
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("giftmarket.json5")
	if err != nil && !os.IsNotExist(err) {
		fatal("failed to read config", err)
	}
	if cfg.Filter == "" {
		cfg.Filter = string(fragment.FilterAll)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Db == "" {
		cfg.Db = "giftmarket.db"
	}
	return cfg
}

func createClient(cfg Config) *fragment.Client {
	opts := fragment.ClientOptions{BaseUrl: cfg.BaseUrl}
	if *debugHttp {
		opts.DebugOutput = restyutil.NewFilesystemOutput(".dev/resty/giftmarket")
	}
	client, err := fragment.NewClient(opts)
	if err != nil {
		fatal("failed to initialize fragment client", err)
	}
	return client
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func fatal(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err)
	os.Exit(1)
}
