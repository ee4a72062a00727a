package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"clow/internal/ast"
	"clow/internal/diagfmt"
	"clow/internal/source"
	"clow/internal/wire"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.ast...",
	Short: "Inspect serialized expression trees",
	Long:  `Ast decodes one or more expression-tree artifacts produced by the parser and prints them`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAst,
}

func init() {
	astCmd.Flags().String("format", "tree", "output format (tree)")
}

type astResult struct {
	ctx   source.Context
	exprs *ast.Exprs
	roots []ast.ExprID
}

func runAst(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" {
		return fmt.Errorf("unknown format: %s", format)
	}

	results := make([]astResult, len(args))
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		group.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			ctx, exprs, roots, err := wire.DecodeExprs(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = astResult{ctx: ctx, exprs: exprs, roots: roots}
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
		if err := diagfmt.FormatExprTree(os.Stdout, res.exprs, res.roots); err != nil {
			return err
		}
	}
	return nil
}
