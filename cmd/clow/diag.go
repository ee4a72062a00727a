package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"clow/internal/diag"
	"clow/internal/diagfmt"
	"clow/internal/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] file.clo",
	Short: "Render a diagnostic for a source position",
	Long:  `Diag loads a clow source file and renders a diagnostic pointing at the given byte offset`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiag,
}

func init() {
	diagCmd.Flags().Int("offset", 0, "byte offset of the error in the file")
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagCmd.Flags().Bool("caret", false, "point at the error column")
}

func runDiag(cmd *cobra.Command, args []string) error {
	path := args[0]
	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return fmt.Errorf("failed to get offset flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadConfig(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("load clow.toml: %w", err)
	}
	caret := cfg.Diagnostics.Caret
	if cmd.Flags().Changed("caret") {
		caret, _ = cmd.Flags().GetBool("caret")
	}

	buf, err := source.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		return fmt.Errorf("offset out of range: %w", err)
	}

	parseErr := diag.NewParseError(diag.LexUnterminatedString, buf.Context(), buf.LocAt(off))

	switch format {
	case "pretty":
		color := useColor(cmd, os.Stdout)
		if cfg.Diagnostics.Color == "off" && !cmd.Root().PersistentFlags().Changed("color") {
			color = false
		}
		return diagfmt.Pretty(os.Stdout, []diag.ParseError{parseErr},
			diagfmt.PrettyOpts{Color: color, Caret: caret})
	case "json":
		return diagfmt.WriteJSON(os.Stdout, []diag.ParseError{parseErr},
			diagfmt.JSONOpts{IncludeLineText: true})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
