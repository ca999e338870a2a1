package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/converters"
)

func newMineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine --input FILE --support N",
		Short: "mine frequent itemsets",
		Long: `Read transactions (one basket per line, or a YAML document), mine every
itemset contained in at least --support transactions and print it with its count.

Every flag can also be set through an APRIORI_<FLAG> environment variable
(dashes become underscores) or a --config YAML file keyed by flag name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runMine(ctx, cmd, cfg)
		},
	}
	addConfigFlags(cmd.Flags())

	return cmd
}

// runMine executes one mining run.
//
// Steps:
//  1. Build the logger.
//  2. Read transactions from the input file or stdin.
//  3. Mine with the configured workers, size cap and cancellation.
//  4. Write the full report, or the top-k report, to stdout.
func runMine(ctx context.Context, cmd *cobra.Command, cfg *Config) error {
	// 1. Logger.
	log, err := newLogger(cfg.LogConfig, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.V(1).Info("effective config", cfg.fields()...)

	// 2. Input.
	txs, err := readTransactions(cmd.InOrStdin(), cfg)
	if err != nil {
		return err
	}

	// 3. Mine.
	start := time.Now()
	res, err := apriori.Mine(txs, cfg.Support,
		apriori.WithContext(ctx),
		apriori.WithWorkers(cfg.Workers),
		apriori.WithMaxSize(cfg.MaxSize),
		apriori.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Info("mined", "transactions", len(txs), "itemsets", res.Len(),
		"maxSize", res.MaxSize(), "elapsed", time.Since(start))

	// 4. Output.
	format, err := converters.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	rep := converters.NewReport(res)
	if cfg.Top > 0 {
		rep = converters.TopReport(res, cfg.Top)
	}

	return converters.WriteReport(cmd.OutOrStdout(), rep, format)
}

// readTransactions opens cfg.Input ("-" reads stdin) and decodes it.
func readTransactions(stdin io.Reader, cfg *Config) ([][]string, error) {
	r := stdin
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	if cfg.InputFormat == "yaml" {
		return converters.ReadYAML(r)
	}
	d, _ := utf8.DecodeRuneInString(cfg.Delimiter)

	return converters.ReadBaskets(r, converters.WithDelimiter(d))
}
