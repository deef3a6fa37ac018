package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lc0-tools/lc0ctl/internal/chunk"
	"github.com/lc0-tools/lc0ctl/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <tar-file>...",
	Short: "Inspect downloaded training archives",
	Long: `Decode the V6 training records inside one or more downloaded tar
archives and print a per-archive summary.

Each archive holds gzip-compressed training chunks; every record is decoded
and sanity-checked. Archives that cannot be read are reported without
stopping the others.

Examples:
  lc0ctl inspect training-run1-test80-20241201-0017.tar
  lc0ctl inspect *.tar -n 100          # First 100 records of each archive
  lc0ctl inspect *.tar --concurrency 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntP("limit", "n", 0, "records to decode per archive (0 = all)")
	inspectCmd.Flags().Int("concurrency", 4, "archives to process in parallel")
}

func runInspect(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	limit, _ := cmd.Flags().GetInt("limit")
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Inspect.Limit
	}
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency < 1 {
		concurrency = 1
	}

	summaries := make([]*chunk.Summary, len(args))
	errs := make([]error, len(args))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			logger.Debug("inspecting archive", "path", path, "limit", limit)
			summaries[i], errs[i] = chunk.InspectArchive(path, limit)
			return nil
		})
	}
	// Per-archive failures are collected in errs, never returned by the group
	_ = g.Wait()

	printer.Header("Training Archives")

	table := output.NewTableWithWriter(cmd.OutOrStdout(), []string{"", "ARCHIVE", "CHUNKS", "RECORDS", "INVALID"})
	failed := 0
	records := 0
	for i, path := range args {
		if errs[i] != nil {
			failed++
			table.AddRow([]string{printer.StatusBadge("failed"), filepath.Base(path), "-", "-", "-"})
			printer.Error("%s: %v", filepath.Base(path), errs[i])
			continue
		}
		s := summaries[i]
		records += s.Records

		status := "ok"
		if s.Invalid > 0 {
			status = "invalid"
		}
		table.AddRow([]string{
			printer.StatusBadge(status),
			filepath.Base(s.Archive),
			strconv.Itoa(s.Chunks),
			strconv.Itoa(s.Records),
			strconv.Itoa(s.Invalid),
		})
	}
	table.Render()

	if failed > 0 {
		return &output.CLIError{
			Summary:    fmt.Sprintf("%d of %d archives could not be read", failed, len(args)),
			Suggestion: "Re-download the failed archives; partial downloads truncate the tar stream",
			ExitCode:   output.ExitParseError,
		}
	}

	printer.Success("%d records across %d archives", records, len(args))
	printer.PrintHints("inspect")
	return nil
}
