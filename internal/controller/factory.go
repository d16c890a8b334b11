package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates a UI instance based on the TTY mode preference. With useTTY
// the analyses open in the interactive terminal UI; otherwise output is
// plain text suitable for pipes.
func NewUI(cmd *cobra.Command, useTTY bool, options ...UIOption) UI {
	cfg := &UIConfig{}
	for _, option := range options {
		option(cfg)
	}

	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cfg.analyze)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the writer is attached to a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return fileInfo.Mode()&os.ModeCharDevice != 0
}
