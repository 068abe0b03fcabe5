package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// AFKSentinel is the app name used for synthetic AFK intervals.
const AFKSentinel = "(AFK)"

// AppName is a trimmed, non-empty application identifier.
type AppName struct {
	value string
}

// NewAppName trims name and validates it is non-empty. The AFK sentinel is
// not built here; AFKAppName constructs it directly without this check.
func NewAppName(name string) (AppName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return AppName{}, ErrEmptyAppName
	}
	return AppName{value: trimmed}, nil
}

// AFKAppName returns the sentinel AppName used for away-from-keyboard intervals.
func AFKAppName() AppName {
	return AppName{value: AFKSentinel}
}

// String returns the trimmed raw value.
func (a AppName) String() string {
	return a.value
}

// IsAFK reports whether this is the AFK sentinel.
func (a AppName) IsAFK() bool {
	return a.value == AFKSentinel
}

var trailingParenSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// friendlyNames maps common technical process names to a user-facing label,
// the same lookup table the teacher uses to turn "google-chrome" into
// "Chrome" before showing it anywhere.
var friendlyNames = map[string]string{
	"chrome":               "Chrome",
	"google-chrome":        "Chrome",
	"google-chrome-stable": "Chrome",
	"chromium":             "Chromium",
	"chromium-browser":     "Chromium",
	"firefox":              "Firefox",
	"firefox-esr":          "Firefox",
	"brave":                "Brave",
	"brave-browser":        "Brave",
	"kitty":                "Kitty",
	"alacritty":            "Alacritty",
	"foot":                 "Foot",
	"wezterm":              "WezTerm",
	"code":                 "VS Code",
	"code-oss":             "VS Code",
	"vscodium":             "VSCodium",
	"nvim":                 "Neovim",
	"vim":                  "Vim",
	"emacs":                "Emacs",
}

// DisplayName derives a human-friendly label: strip a leading path, strip
// any trailing parenthesized suffix ("firefox (Private Browsing)" ->
// "firefox"), then consult the friendly-name table, falling back to the
// base name unmodified.
func (a AppName) DisplayName() string {
	if a.IsAFK() {
		return AFKSentinel
	}
	base := filepath.Base(a.value)
	base = trailingParenSuffix.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)
	if friendly, ok := friendlyNames[strings.ToLower(base)]; ok {
		return friendly
	}
	return base
}
