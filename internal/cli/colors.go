package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func init() {
	// Piped output stays plain so file lists can be consumed by scripts.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

var (
	successf = color.New(color.FgGreen).PrintfFunc()
	warnf    = color.New(color.FgYellow).PrintfFunc()
	headerf  = color.New(color.FgCyan, color.Bold).PrintfFunc()
)
