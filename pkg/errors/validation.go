package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateSnapshotName validates a stored snapshot name for safety and
// correctness. It rejects names that could be used for path traversal or
// injection when the name is echoed into file paths or database keys.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateSnapshotName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "snapshot name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "snapshot name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "snapshot name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "snapshot name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// extensionIDRegex matches vendor extension identifiers: an uppercase
// prefix, an underscore, then the extension name.
var extensionIDRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]*_[A-Za-z0-9_]+$`)

// ValidateExtensionID validates an extension identifier
// (e.g. "VENDOR_texture_atlas").
func ValidateExtensionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidExtension, "extension identifier cannot be empty")
	}
	if !extensionIDRegex.MatchString(id) {
		return New(ErrCodeInvalidExtension, "invalid extension identifier: %q", id)
	}
	return nil
}

// ValidatePath validates a document file path for safety. It prevents path
// traversal and ensures reasonable path length before the path reaches the
// filesystem.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
