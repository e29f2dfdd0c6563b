package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
	"github.com/fpeterek/strojove-uceni/internal/cli"
	"github.com/fpeterek/strojove-uceni/internal/common"
	"github.com/fpeterek/strojove-uceni/internal/config"
	"github.com/fpeterek/strojove-uceni/internal/dataset"
	"github.com/fpeterek/strojove-uceni/internal/report"
)

func findPatternsCmd(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "find-patterns",
		Aliases: []string{"patterns"},
		Short:   "Mine frequent itemsets and association rules from a dataset",
		Long: `Load a dataset (one transaction per line, space-separated integer items),
mine every frequent itemset and print it, then print every association rule
meeting the minimum confidence.

Files ending in .gz or .zst are decompressed transparently.

Threshold policies:
  parity     singletons need support >= min-sup, larger itemsets support > min-sup
  inclusive  support >= min-sup at every level
  strict     support > min-sup at every level

Examples:
  apriori find-patterns --file baskets.txt
  apriori find-patterns --file baskets.txt.gz --min-sup 0.1 --min-conf 0.8 --format styled`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadMiningConfig(v)
			if err != nil {
				return err
			}

			path := config.ExpandPath(file)
			start := time.Now()
			ds, err := dataset.Load(path)
			if err != nil {
				var ife *dataset.InputFormatError
				if errors.As(err, &ife) {
					return common.NewUserError(fmt.Sprintf("malformed dataset %s", path), err)
				}
				return common.NewUserError(fmt.Sprintf("cannot read dataset %s", path), err)
			}
			common.LogDebug("Loaded dataset", common.Fields{
				"path":         path,
				"transactions": ds.Len(),
			})

			progress := cli.NewProgress(cmd.ErrOrStderr(), cfg.Progress)
			opts := append(cfg.Options(), progress.Options()...)
			opts = append(opts, apriori.WithLogger(slog.Default()))

			patterns, err := apriori.FindPatterns(cmd.Context(), ds, opts...)
			if err != nil {
				return fmt.Errorf("mining failed: %w", err)
			}

			if err := report.WritePatterns(cmd.OutOrStdout(), cfg.Format, patterns); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			common.LogDebug("Mining complete", common.Fields{
				"transactions": patterns.Transactions,
				"itemsets":     patterns.Len(),
				"rules":        len(patterns.Rules),
				"policy":       string(cfg.Policy),
				"duration":     time.Since(start).String(),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "dataset file")
	cmd.Flags().Float64("min-sup", apriori.DefaultMinSupport, "minimum support, in (0, 1]")
	cmd.Flags().Float64("min-conf", apriori.DefaultMinConfidence, "minimum rule confidence, in (0, 1]")
	cmd.Flags().String("threshold-policy", string(apriori.PolicyParity), "support comparison policy (parity, inclusive, strict)")
	cmd.Flags().String("index", string(apriori.IndexBitmap), "support counter (bitmap, scan)")
	cmd.Flags().Int("workers", 1, "concurrent support queries")
	cmd.Flags().String("format", string(report.FormatPlain), "output format (plain, styled)")
	cmd.Flags().Bool("progress", false, "show mining progress on stderr")
	_ = cmd.MarkFlagRequired("file")

	_ = v.BindPFlag(config.KeyMinSupport, cmd.Flags().Lookup("min-sup"))
	_ = v.BindPFlag(config.KeyMinConfidence, cmd.Flags().Lookup("min-conf"))
	_ = v.BindPFlag(config.KeyThresholdPolicy, cmd.Flags().Lookup("threshold-policy"))
	_ = v.BindPFlag(config.KeyIndex, cmd.Flags().Lookup("index"))
	_ = v.BindPFlag(config.KeyWorkers, cmd.Flags().Lookup("workers"))
	_ = v.BindPFlag(config.KeyOutputFormat, cmd.Flags().Lookup("format"))
	_ = v.BindPFlag(config.KeyProgress, cmd.Flags().Lookup("progress"))

	return cmd
}
