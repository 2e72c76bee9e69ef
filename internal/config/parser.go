package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadTheme reads, decodes and validates a theme document.
func LoadTheme(path string) (*ThemeFile, error) {
	var theme ThemeFile
	if err := decodeFile(path, &theme); err != nil {
		return nil, err
	}
	if err := ValidateTheme(&theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

// LoadCatalog reads, decodes and validates a catalog document.
func LoadCatalog(path string) (*CatalogFile, error) {
	var cat CatalogFile
	if err := decodeFile(path, &cat); err != nil {
		return nil, err
	}
	if err := ValidateCatalog(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// decodeFile picks the decoder from the file extension. Unknown keys are
// rejected so typos surface instead of being silently ignored.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wkerrors.NewParseError(path, 0, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return wkerrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), out)
		if err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return wkerrors.NewParseError(path, line, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return wkerrors.NewParseError(path, 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return wkerrors.NewParseError(path, 0, fmt.Errorf("unsupported file extension %q", ext))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
