package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/catalog"
	"github.com/alexisbeaulieu97/widgetkit/internal/registry"
)

type catalogRenderOptions struct {
	id    string
	width int
}

type catalogFetchOptions struct {
	ref      string
	dest     string
	depth    int
	registry string
}

func newCatalogCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Render widget variants from catalog documents",
	}

	cmd.AddCommand(newCatalogRenderCmd())
	cmd.AddCommand(newCatalogFetchCmd(root))
	cmd.AddCommand(newCatalogSourcesCmd())

	return cmd
}

func newCatalogRenderCmd() *cobra.Command {
	opts := &catalogRenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render one variant, or every variant, of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Render only the variant with this id")
	cmd.Flags().IntVar(&opts.width, "width", 60, "Render width in terminal cells")

	return cmd
}

func runCatalogRender(cmd *cobra.Command, path string, opts *catalogRenderOptions) error {
	if opts.width < 1 {
		return newCommandError("render catalog", "checking --width", fmt.Errorf("width %d is not positive", opts.width), "")
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return newCommandError("render catalog", "loading "+path, err, "Fix the reported field and try again.")
	}

	var out string
	if opts.id != "" {
		out, err = cat.Render(opts.id, opts.width)
	} else {
		out, err = cat.RenderAll(opts.width)
	}
	if err != nil {
		return newCommandError("render catalog", path, err, "")
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func newCatalogFetchCmd(root *rootFlags) *cobra.Command {
	opts := &catalogFetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Clone or update a catalog repository and list its catalogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogFetch(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.ref, "ref", "", "Branch to check out (default: remote HEAD)")
	cmd.Flags().StringVar(&opts.dest, "dest", "", "Checkout directory (default: user cache directory)")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "Limit clone history to this many commits")
	cmd.Flags().StringVar(&opts.registry, "registry", "", "Sources registry file (default: user config directory)")

	return cmd
}

func runCatalogFetch(cmd *cobra.Command, root *rootFlags, url string, opts *catalogFetchOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	reg, err := openRegistry(opts.registry)
	if err != nil {
		return newCommandError("fetch catalogs", "opening the sources registry", err, "Pass --registry with a writable path.")
	}

	dest := opts.dest
	if dest == "" {
		if dest, err = defaultCheckoutDir(url); err != nil {
			return newCommandError("fetch catalogs", "choosing a checkout directory", err, "Pass --dest explicitly.")
		}
	}

	source := catalog.NewGitSource(log)
	source.Depth = opts.depth

	head, err := source.Fetch(ctx, url, opts.ref, dest)
	if err != nil {
		return newCommandError("fetch catalogs", url, err, "Check the URL and that the destination is not another repository.")
	}

	found, err := catalog.Discover(dest)
	if err != nil {
		return newCommandError("fetch catalogs", "listing "+dest, err, "")
	}

	recorded, err := reg.Record(registry.Source{
		URL:       url,
		Ref:       opts.ref,
		Dest:      dest,
		Head:      head,
		Catalogs:  len(found),
		FetchedAt: time.Now().UTC(),
	})
	if err == nil {
		err = reg.Save()
	}
	if err != nil {
		return newCommandError("fetch catalogs", "recording the source", err, "")
	}
	log.With("source", recorded.ID).Debug("source recorded")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source: %s\n", recorded.ID)
	fmt.Fprintf(out, "head: %s\n", head)
	for _, path := range found {
		fmt.Fprintln(out, path)
	}
	return nil
}

func newCatalogSourcesCmd() *cobra.Command {
	var registryPath string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List previously fetched catalog repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry(registryPath)
			if err != nil {
				return newCommandError("list sources", "opening the sources registry", err, "")
			}

			sources := reg.List()
			if len(sources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No catalog sources fetched yet. Run 'widgetkit catalog fetch <url>'.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHEAD\tCATALOGS\tFETCHED\tURL")
			for _, s := range sources {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", s.ID, s.ShortHead(), s.Catalogs, s.FetchedAt.Format(time.RFC3339), s.URL)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&registryPath, "registry", "", "Sources registry file (default: user config directory)")

	return cmd
}

func openRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		var err error
		if path, err = registry.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return registry.NewRegistry(path)
}

func defaultCheckoutDir(url string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "widgetkit", "catalogs", registry.SourceID(url)), nil
}
