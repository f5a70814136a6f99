/*
Command bstwalk inserts values into a binary search tree and prints them in preorder or
inorder.

    bstwalk --order pre 8 4 10 6 5 7 9 12 13
    bstwalk --strings --style all --print f h d e a b c g i
    bstwalk list 1 2 3

Sub-command 'list' prepends values to a persistent list, one after the other, and
prints every version of the list built along the way.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/bst"
	"github.com/npillmayer/fpds/persistent/list"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type walkConfig struct {
	Order   string
	Style   string
	Strings bool
	Print   bool
	Trace   bool
}

var styles = []string{"recursive", "iterative", "cursor"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := &walkConfig{}
	var cmd = &cobra.Command{
		Use:          "bstwalk [flags] values...",
		Short:        "Inserts values into a binary search tree and traverses it",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if config.Trace {
				enableTracing(cmd.ErrOrStderr())
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return walkRunFun(cmd.OutOrStdout(), config, args)
		},
	}
	cmd.Flags().StringVarP(&config.Order, "order", "o", "in", "traversal order: pre | in")
	cmd.Flags().StringVarP(&config.Style, "style", "s", "cursor",
		"traversal style: "+strings.Join(styles, " | ")+" | all")
	cmd.Flags().BoolVar(&config.Strings, "strings", false, "treat values as strings instead of integers")
	cmd.Flags().BoolVarP(&config.Print, "print", "p", false, "print the shape of the tree")
	cmd.PersistentFlags().BoolVar(&config.Trace, "trace", false, "enable debug tracing")
	cmd.AddCommand(newListCmd())
	return cmd
}

// enableTracing installs a Go logger based tracer, writing debug output to w.
func enableTracing(w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	for _, key := range []string{"fpds.bst", "fpds.list"} {
		trace := tracing.Select(key)
		trace.SetOutput(w)
		trace.SetTraceLevel(tracing.LevelDebug)
	}
}

func walkRunFun(out io.Writer, config *walkConfig, args []string) error {
	order, err := parseOrder(config.Order)
	if err != nil {
		return err
	}
	selected := styles
	if config.Style != "all" {
		if !contains(styles, config.Style) {
			return fmt.Errorf("unknown traversal style %q", config.Style)
		}
		selected = []string{config.Style}
	}
	if config.Strings {
		tree := bst.New[string]()
		for _, arg := range args {
			tree.Insert(arg)
		}
		return printWalks(out, tree, order, selected, config.Print)
	}
	tree := bst.New[int]()
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("value %q is not an integer (use --strings for text): %w", arg, err)
		}
		tree.Insert(n)
	}
	return printWalks(out, tree, order, selected, config.Print)
}

func printWalks[T any](out io.Writer, tree *bst.Tree[T], order bst.Order, selected []string, shape bool) error {
	if shape {
		if _, err := fmt.Fprintln(out, tree.String()); err != nil {
			return err
		}
	}
	for _, style := range selected {
		visit, values := fpds.Collect[string]()
		render := fpds.Map(func(v T) string {
			return fmt.Sprintf("%v", v)
		}, visit)
		switch style {
		case "recursive":
			if order == bst.PreOrder {
				tree.PreorderRecursive(render)
			} else {
				tree.InorderRecursive(render)
			}
		case "iterative":
			tree.Walk(order, render)
		case "cursor":
			c := tree.Iter(order)
			for v, ok := c.Next(); ok; v, ok = c.Next() {
				render(v)
			}
		}
		if _, err := fmt.Fprintf(out, "%s %s: %s\n", order, style, strings.Join(values(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list values...",
		Short: "Prepends values to a persistent list, printing every version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRunFun(cmd.OutOrStdout(), args)
		},
	}
}

func listRunFun(out io.Writer, args []string) error {
	versions := []list.List[string]{list.New[string]()}
	for _, arg := range args {
		versions = append(versions, versions[len(versions)-1].Prepend(arg))
	}
	for i, l := range versions {
		front := l.Front().WithDefault("-")
		if _, err := fmt.Fprintf(out, "v%d: %s  len=%d front=%s\n", i, l, l.Len(), front); err != nil {
			return err
		}
	}
	return nil
}

func parseOrder(s string) (bst.Order, error) {
	switch strings.ToLower(s) {
	case "pre", "preorder":
		return bst.PreOrder, nil
	case "in", "inorder":
		return bst.InOrder, nil
	}
	return bst.InOrder, fmt.Errorf("unknown traversal order %q", s)
}

func contains(all []string, s string) bool {
	for _, x := range all {
		if x == s {
			return true
		}
	}
	return false
}
