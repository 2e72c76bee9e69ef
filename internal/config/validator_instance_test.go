package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator(), "validator is shared")
}

func TestGitURLValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty string", "", false},
		{"space", " ", false},

		{"valid https", "https://github.com/acme/widget-catalogs.git", true},
		{"valid http", "http://git.example.com/catalogs", true},
		{"file scheme", "file:///srv/git/catalogs", true},
		{"no host", "https:///path", false},
		{"invalid scheme", "ftp://example.com/repo.git", false},

		{"ssh git@github", "git@github.com:acme/catalogs.git", true},
		{"ssh no colon", "git@github.com/acme/catalogs.git", false},
		{"ssh empty path", "git@github.com:", false},

		{"absolute path", "/tmp/catalogs.git", true},
		{"relative current", "./local/catalogs", true},
		{"relative parent", "../upstream/catalogs", true},
		{"relative without prefix", "local/catalogs", false},
		{"nul character", "/tmp/repo\x00.git", false},
		{"path traversal", "/etc/../usr/share/repo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.url, "git_url")
			assert.Equal(t, tt.expected, err == nil, "git_url %q: %v", tt.url, err)
		})
	}
}

func TestSemverValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		version  string
		expected bool
	}{
		{"1.0.0", true},
		{"1.0.0-alpha", true},
		{"2.1.3-beta.2+build.123", true},
		{"", false},
		{"1.0", false},
		{"v1.0.0", false},
		{"1.2.3.4", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.version, "semver")
		assert.Equal(t, tt.expected, err == nil, "semver %q", tt.version)
	}
}

func TestVariantIDValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		id       string
		expected bool
	}{
		{"primary-button", true},
		{"chips_2", true},
		{"a", true},
		{"7up", true},
		{"", false},
		{"-leading", false},
		{"Upper", false},
		{"has space", false},
		{"dotted.id", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.id, "variant_id")
		assert.Equal(t, tt.expected, err == nil, "variant_id %q", tt.id)
	}
}

func TestHexColourPairValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		value    string
		expected bool
	}{
		{"#fff", true},
		{"#3b82f6", true},
		{"#3b82f6,#60a5fa", true},
		{"#3b82f6, #60A5FA", true},
		{"3b82f6", false},
		{"#3b82f", false},
		{"#3b82f6,", false},
		{"#fff,#000,#111", false},
		{"red", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, "hexcolor_pair")
		assert.Equal(t, tt.expected, err == nil, "hexcolor_pair %q", tt.value)
	}
}
