package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

const validCatalogYAML = `version: "1.0.0"
name: storefront
theme:
  extends: dark
variants:
  - id: buy-button
    kind: button
    label: Buy now
    props:
      tone: success
  - id: faq
    kind: accordion
    props:
      multi: true
      open: [ship]
      items:
        - {id: ship, label: Shipping, body: Two days}
        - {id: ret, label: Returns, body: Thirty days}
  - id: price
    kind: range
    theme:
      palette:
        primary:
          base: "#ff8800"
    props: {min: 0, max: 500, low: 50, high: 250}
`

const validCatalogTOML = `version = "1.2.0"
name = "storefront"

[[variants]]
id = "pages"
kind = "pagination"

[variants.props]
current = 5
total = 10

[[variants]]
id = "checkout"
kind = "stepper"

[variants.props]
step = 1

[[variants.props.items]]
id = "cart"
label = "Cart"

[[variants.props.items]]
id = "pay"
label = "Pay"
`

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cat *CatalogFile, err error)
	}{
		{
			name:     "yaml catalog is parsed",
			file:     "catalog.yaml",
			contents: validCatalogYAML,
			assert: func(t *testing.T, cat *CatalogFile, err error) {
				require.NoError(t, err)
				require.Len(t, cat.Variants, 3)
				assert.Equal(t, "dark", cat.Theme.Extends)
				assert.Equal(t, []string{"ship"}, cat.Variants[1].Props.Open)
				require.NotNil(t, cat.Variants[2].Props.Max)
				assert.Equal(t, 500, *cat.Variants[2].Props.Max)
				require.NotNil(t, cat.Variants[2].Theme)
				assert.Equal(t, "#ff8800", cat.Variants[2].Theme.Palette["primary"].Base)
			},
		},
		{
			name:     "toml catalog is parsed",
			file:     "catalog.toml",
			contents: validCatalogTOML,
			assert: func(t *testing.T, cat *CatalogFile, err error) {
				require.NoError(t, err)
				require.Len(t, cat.Variants, 2)
				assert.Equal(t, 10, cat.Variants[0].Props.Total)
				assert.Len(t, cat.Variants[1].Props.Items, 2)
			},
		},
		{
			name:     "malformed yaml reports the line",
			file:     "catalog.yml",
			contents: "version: \"1.0.0\"\nname: x\nvariants: [\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var parseErr *wkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			file:     "catalog.yaml",
			contents: "version: \"1.0.0\"\nname: x\ncolour: blue\nvariants: [{id: a, kind: button}]\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var parseErr *wkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "unknown toml keys are rejected",
			file:     "catalog.toml",
			contents: "version = \"1.0.0\"\nname = \"x\"\nshade = 3\n[[variants]]\nid = \"a\"\nkind = \"button\"\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var parseErr *wkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "shade")
			},
		},
		{
			name:     "unsupported extension",
			file:     "catalog.json",
			contents: "{}",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var parseErr *wkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, ".json")
			},
		},
		{
			name:     "version must be semver",
			file:     "catalog.yaml",
			contents: "version: beta\nname: x\nvariants: [{id: a, kind: button}]\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var validationErr *wkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "unknown kind is a validation error",
			file:     "catalog.yaml",
			contents: "version: 1.0.0\nname: x\nvariants: [{id: a, kind: button}, {id: b, kind: carousel}]\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var validationErr *wkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "variants[1].kind", validationErr.Field)
			},
		},
		{
			name:     "duplicate ids are rejected",
			file:     "catalog.yaml",
			contents: "version: 1.0.0\nname: x\nvariants: [{id: a, kind: button}, {id: a, kind: badge}]\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var validationErr *wkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "variants[1].id", validationErr.Field)
				assert.Contains(t, validationErr.Message, "duplicate")
			},
		},
		{
			name:     "inverted range bounds are rejected",
			file:     "catalog.yaml",
			contents: "version: 1.0.0\nname: x\nvariants: [{id: r, kind: range, props: {min: 10, max: 0}}]\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var validationErr *wkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "variants[0].props.min", validationErr.Field)
			},
		},
		{
			name:     "list widgets need items",
			file:     "catalog.yaml",
			contents: "version: 1.0.0\nname: x\nvariants: [{id: s, kind: select}]\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var validationErr *wkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "variants[0].props.items", validationErr.Field)
			},
		},
		{
			name:     "missing variants",
			file:     "catalog.yaml",
			contents: "version: 1.0.0\nname: x\n",
			assert: func(t *testing.T, _ *CatalogFile, err error) {
				var validationErr *wkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "variants", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, tc.file, tc.contents)
			cat, err := LoadCatalog(path)
			tc.assert(t, cat, err)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	t.Run("valid theme", func(t *testing.T) {
		t.Parallel()

		path := writeTempFile(t, "theme.yaml", `name: brand
extends: dark
palette:
  primary:
    base: "#ff0000,#aa0000"
    on_base: "#ffffff"
spacing:
  padding: [0, 1, 1, 2, 2, 3, 3, 4, 4]
borders:
  default: double
`)
		theme, err := LoadTheme(path)
		require.NoError(t, err)
		assert.Equal(t, "brand", theme.Name)
		assert.Equal(t, "#ffffff", theme.Palette["primary"].OnBase)
	})

	t.Run("empty file is the default theme", func(t *testing.T) {
		t.Parallel()

		theme, err := LoadTheme(writeTempFile(t, "theme.yml", ""))
		require.NoError(t, err)
		assert.Equal(t, ThemeFile{}, *theme)
	})

	t.Run("bad colour", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTheme(writeTempFile(t, "theme.toml", "[palette.primary]\nbase = \"blue\"\n"))
		var validationErr *wkerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Field, "base")
	})

	t.Run("unknown palette slot", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTheme(writeTempFile(t, "theme.yaml", "palette:\n  chartreuse:\n    base: \"#fff\"\n"))
		var validationErr *wkerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("spacing scale must have nine entries", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTheme(writeTempFile(t, "theme.yaml", "spacing:\n  margin: [1, 2]\n"))
		var validationErr *wkerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "spacing.margin", validationErr.Field)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
		var parseErr *wkerrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
