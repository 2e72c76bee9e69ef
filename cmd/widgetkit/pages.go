package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/state"
)

type pagesOptions struct {
	current int
	total   int
	gaps    bool
}

func newPagesCmd() *cobra.Command {
	opts := &pagesOptions{}

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the visible page window for a paged list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.current, "current", 1, "Current page (clamped into 1..total)")
	cmd.Flags().IntVar(&opts.total, "total", 1, "Total number of pages")
	cmd.Flags().BoolVar(&opts.gaps, "gaps", false, "Show … where pages are skipped")

	return cmd
}

func runPages(cmd *cobra.Command, opts *pagesOptions) error {
	pager := state.NewPager(opts.current, opts.total)

	var parts []string
	if opts.gaps {
		for _, seg := range pager.Segments() {
			if seg.Kind == state.SegmentGap {
				parts = append(parts, "…")
				continue
			}
			parts = append(parts, strconv.Itoa(seg.Page))
		}
	} else {
		for _, p := range pager.Pages() {
			parts = append(parts, strconv.Itoa(p))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pages: %s\n", strings.Join(parts, " "))
	fmt.Fprintf(out, "canGoPrev: %t\n", pager.CanGoPrev())
	fmt.Fprintf(out, "canGoNext: %t\n", pager.CanGoNext())
	return nil
}
