package msgsource

import (
	"path/filepath"
	"regexp"
)

var localePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateLocale checks that locale consists of letters, digits, hyphens and
// underscores only. The empty locale is valid and addresses the unqualified
// catalog directly under the store root.
func ValidateLocale(locale string) error {
	if locale != "" && !localePattern.MatchString(locale) {
		return &ValidationError{Locale: locale, Reason: "invalid locale code"}
	}
	return nil
}

// CatalogPath resolves the file of (category, locale) under root.
func CatalogPath(root, category, locale string) (string, error) {
	if err := ValidateLocale(locale); err != nil {
		return "", err
	}
	return filepath.Join(root, locale, category+FileExt), nil
}
