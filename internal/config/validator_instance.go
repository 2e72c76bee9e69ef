package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	variantIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	hexColourPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	sshGitPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("variant_id", func(fl validator.FieldLevel) bool {
			return variantIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hexcolor_pair", func(fl validator.FieldLevel) bool {
			_, _, ok := splitColourPair(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			return isGitURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// splitColourPair accepts "#rgb", "#rrggbb" or "light,dark" built from those.
func splitColourPair(value string) (light, dark string, ok bool) {
	parts := strings.Split(value, ",")
	switch len(parts) {
	case 1:
		light = strings.TrimSpace(parts[0])
		dark = light
	case 2:
		light = strings.TrimSpace(parts[0])
		dark = strings.TrimSpace(parts[1])
	default:
		return "", "", false
	}
	if !hexColourPattern.MatchString(light) || !hexColourPattern.MatchString(dark) {
		return "", "", false
	}
	return light, dark, true
}

// isGitURL accepts http(s) URLs with a host, scp-style SSH remotes and
// explicit absolute or relative local paths.
func isGitURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	if parsed, err := url.Parse(raw); err == nil {
		scheme := strings.ToLower(parsed.Scheme)
		if (scheme == "http" || scheme == "https") && parsed.Host != "" {
			return true
		}
		if scheme == "file" && parsed.Path != "" {
			return true
		}
	}

	if sshGitPattern.MatchString(raw) {
		return true
	}

	return isValidFilePath(raw)
}

// isValidFilePath performs syntactic validation of file paths without filesystem access.
func isValidFilePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}
