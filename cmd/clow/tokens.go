package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"clow/internal/diagfmt"
	"clow/internal/source"
	"clow/internal/token"
	"clow/internal/wire"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.tokens...",
	Short: "Inspect serialized token streams",
	Long:  `Tokens decodes one or more token artifacts produced by the lexer and prints them`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type tokensResult struct {
	ctx  source.Context
	toks []token.Token
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	// Декодируем параллельно, печатаем в порядке аргументов.
	results := make([]tokensResult, len(args))
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		group.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			ctx, toks, err := wire.DecodeTokens(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tokensResult{ctx: ctx, toks: toks}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if len(args) > 1 {
			fmt.Fprintf(os.Stdout, "== %s ==\n", res.ctx.Name)
		}
		switch format {
		case "pretty":
			if err := diagfmt.FormatTokensPretty(os.Stdout, res.toks); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, res.toks); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return nil
}
