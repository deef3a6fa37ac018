package cmd

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/lc0-tools/lc0ctl/internal/output"
	"github.com/lc0-tools/lc0ctl/internal/schedule"
)

var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Print download URLs for a month of training archives",
	Long: `Print the download URL of every hourly training archive published
during a calendar month, one per line, in chronological order (day
ascending, hour ascending within each day).

The list feeds straight into a download tool.

Examples:
  lc0ctl urls -y 2024 -m 12                      # December 2024 (744 URLs)
  lc0ctl urls -y 2024 -m 2                       # Leap-year February (696 URLs)
  lc0ctl urls -y 2024 -m 12 | xargs -n 1 -P 4 wget -c`,
	RunE: runURLs,
}

func init() {
	rootCmd.AddCommand(urlsCmd)

	urlsCmd.Flags().IntP("year", "y", 0, "year (YYYY)")
	urlsCmd.Flags().IntP("month", "m", 0, "month (1-12)")
	_ = urlsCmd.MarkFlagRequired("year")
	_ = urlsCmd.MarkFlagRequired("month")
}

func runURLs(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")

	period, err := schedule.NewPeriod(year, month)
	if err != nil {
		return &output.CLIError{
			Summary:    err.Error(),
			Suggestion: "Pass a calendar month, e.g. 'lc0ctl urls -y 2024 -m 12'",
			ExitCode:   output.ExitUsageError,
		}
	}

	tmpl, err := schedule.ParseTemplate(cfg.URLs.Template)
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid URL template",
			Detail:     err.Error(),
			Suggestion: "Fix urls.template in .lc0ctl.yaml",
			ExitCode:   output.ExitConfigError,
		}
	}

	logger.Debug("generating URLs", "period", period.String(), "days", period.Days())

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, dh := range period.Hours() {
		if _, err := w.WriteString(tmpl.Render(period, dh)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
