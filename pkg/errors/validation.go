package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartNameRegex matches chart names usable as output file stems.
var chartNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateChartName validates a chart name for safety and correctness.
// Chart names become output file names, so the rules reject anything that
// could escape the output directory:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Lowercase letters, digits, '.', '_' and '-' only
//   - Maximum length of 64 characters
func ValidateChartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidChart, "chart name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidChart, "chart name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "chart name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidChart, "chart name cannot contain path components: %q", name)
	}

	if !chartNameRegex.MatchString(name) {
		return New(ErrCodeInvalidChart, "invalid chart name: %q", name)
	}

	return nil
}

// hexColorRegex matches #rgb and #rrggbb colours.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS hex colour such as "#ff9999".
func ValidateHexColor(c string) error {
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidChart, "invalid colour: %q (want #rgb or #rrggbb)", c)
	}
	return nil
}

// ValidateOutputDir validates an output directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
