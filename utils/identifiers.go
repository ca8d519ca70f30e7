package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	symbolPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	nonSymbolRunes = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

// IsValidSymbol reports whether s can be used as a C identifier.
func IsValidSymbol(s string) bool {
	return symbolPattern.MatchString(s)
}

// GuardToken is the include-guard token for identifier: _<IDENTIFIER>_H.
func GuardToken(identifier string) string {
	return "_" + strings.ToUpper(identifier) + "_H"
}

// IdentifierFromPath derives a symbol from an image file name, e.g.
// "images/Boot Logo.png" -> "boot_logo".
func IdentifierFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id := strings.Trim(nonSymbolRunes.ReplaceAllString(strings.ToLower(base), "_"), "_")
	if id == "" {
		return "image"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "img_" + id
	}
	return id
}
