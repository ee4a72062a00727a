// Command clow inspects the syntax artifacts of the clow front end: token
// streams and expression trees produced by the (separate) lexer and parser,
// plus diagnostic rendering for source positions.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"clow/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "clow",
	Short: "clow front end artifact inspector",
	Long:  `clow inspects token streams, expression trees and diagnostics of the clow language front end`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output terminal.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
