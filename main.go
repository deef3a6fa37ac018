// Package main is the entry point for lc0ctl CLI
package main

import (
	"errors"
	"os"

	"github.com/lc0-tools/lc0ctl/cmd"
	"github.com/lc0-tools/lc0ctl/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		p := output.NewPrinterWithOptions(output.PrinterOptions{
			ColorMode:    output.ColorAuto,
			ConfigColors: true,
		})
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			p.FormatError(cliErr)
			os.Exit(cliErr.ExitCode)
		}
		p.Error("%s", err)
		os.Exit(output.ExitGeneral)
	}
}
