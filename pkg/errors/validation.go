package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxLabelLength bounds a single node label. Labels wrap, so this only guards
// against pathological input files.
const MaxLabelLength = 4096

// ValidateLabel checks a node label before layout.
//
// Empty labels are legal and render as an empty box. Rejected:
//   - control characters (including tabs and newlines), which would break the
//     one-rune-per-column assumption of the renderer
//   - labels longer than MaxLabelLength runes
func ValidateLabel(label string) error {
	n := 0
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "label %q contains control characters", label)
		}
		n++
	}
	if n > MaxLabelLength {
		return New(ErrCodeInvalidTree, "label too long (max %d characters)", MaxLabelLength)
	}
	return nil
}

// ValidateFormat checks name against the set of accepted values.
func ValidateFormat(name string, valid []string) error {
	for _, v := range valid {
		if name == v {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", name, strings.Join(valid, ", "))
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory-only path (trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
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

	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
