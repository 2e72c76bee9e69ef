// Package catalog turns catalog documents into rendered widget variants and
// fetches catalogs from git repositories.
package catalog

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// Catalog is a validated set of variants sharing a base theme.
type Catalog struct {
	name     string
	version  string
	theme    components.Theme
	variants []config.VariantFile
	index    map[string]int
}

// NewCatalog validates file and resolves its theme.
func NewCatalog(file *config.CatalogFile) (*Catalog, error) {
	if err := config.ValidateCatalog(file); err != nil {
		return nil, err
	}

	variants := append([]config.VariantFile(nil), file.Variants...)
	sort.Slice(variants, func(i, j int) bool { return variants[i].ID < variants[j].ID })

	index := make(map[string]int, len(variants))
	for i, v := range variants {
		index[v.ID] = i
	}

	return &Catalog{
		name:     file.Name,
		version:  file.Version,
		theme:    file.Theme.Resolve(),
		variants: variants,
		index:    index,
	}, nil
}

// Load reads a catalog document from path.
func Load(path string) (*Catalog, error) {
	file, err := config.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(file)
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Version returns the catalog document version.
func (c *Catalog) Version() string { return c.version }

// Variants returns the variants sorted by id.
func (c *Catalog) Variants() []config.VariantFile {
	return append([]config.VariantFile(nil), c.variants...)
}

// Get looks a variant up by id.
func (c *Catalog) Get(id string) (config.VariantFile, bool) {
	i, ok := c.index[id]
	if !ok {
		return config.VariantFile{}, false
	}
	return c.variants[i], true
}

// ThemeFor resolves the theme a variant renders with: the catalog theme with
// the variant's own overrides on top.
func (c *Catalog) ThemeFor(v config.VariantFile) components.Theme {
	if v.Theme == nil {
		return c.theme
	}
	return v.Theme.ResolveOn(c.theme)
}

// Render renders the variant with id at width cells.
func (c *Catalog) Render(id string, width int) (string, error) {
	v, ok := c.Get(id)
	if !ok {
		return "", wkerrors.NewRenderError(id, "no such variant", nil)
	}
	widget, err := Build(v)
	if err != nil {
		return "", err
	}
	ctx := components.RenderContext{Theme: c.ThemeFor(v), Width: width}
	return widget.ViewWithContext(ctx), nil
}

// RenderAll renders every variant framed in a card titled with its id, under
// a centered catalog header, with a rule between cards.
func (c *Catalog) RenderAll(width int) (string, error) {
	page := components.VStack(
		components.TitleText(fmt.Sprintf("%s v%s", c.name, c.version)),
		components.SubtitleText(fmt.Sprintf("%d variants", len(c.variants))),
	).WithAlign(components.AlignCenter)

	for _, v := range c.variants {
		widget, err := Build(v)
		if err != nil {
			return "", err
		}
		card := components.NewCard(v.ID, widget).WithFooter(v.Kind)
		page.Add(components.NewDivider(), themed{ContextualRenderable: card, theme: c.ThemeFor(v)})
	}

	return page.ViewWithContext(components.RenderContext{Theme: c.theme, Width: width}), nil
}

// themed pins a renderable to one theme whatever the surrounding context.
type themed struct {
	components.ContextualRenderable
	theme components.Theme
}

func (t themed) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t themed) ViewWithContext(ctx components.RenderContext) string {
	return t.ContextualRenderable.ViewWithContext(ctx.WithTheme(t.theme))
}
