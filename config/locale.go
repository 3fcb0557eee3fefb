package config

import (
	"os"
	"strings"
)

type LocaleEnv struct{}

var _ LocaleConfig = LocaleEnv{}

// GetLocale returns the active locale in the language[_REGION] form, e.g.
// "en_GB", derived from LC_ALL/LANG. Returns the empty string when no usable
// locale is set.
func (LocaleEnv) GetLocale() string {
	for _, envVar := range []string{"LC_ALL", "LANG"} {
		if value := os.Getenv(envVar); value != "" {
			return normalizeLocale(value)
		}
	}
	return ""
}

// normalizeLocale reduces a POSIX locale string such as "en_GB.UTF-8" or
// "fi_FI@euro" to language[_REGION].
func normalizeLocale(value string) string {
	if i := strings.IndexByte(value, '.'); i >= 0 {
		value = value[:i]
	}
	if i := strings.IndexByte(value, '@'); i >= 0 {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	parts := strings.SplitN(value, "_", 2)
	locale := parts[0]
	if len(parts) == 2 && parts[1] != "" {
		locale += "_" + strings.ToUpper(parts[1])
	}
	return locale
}
