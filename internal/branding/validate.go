package branding

import (
	"errors"
	"fmt"
	"os"
)

// Validation errors.
var (
	ErrNotFound        = errors.New("configuration file not found")
	ErrInvalidDocument = errors.New("invalid configuration document")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidColor    = errors.New("invalid color format")
)

// Validate checks a branding file on disk. It returns nil when the file is
// usable, otherwise an error wrapping one of the validation errors.
func Validate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	raw := make(map[string]any)
	if err := decode(path, data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return ValidateMap(raw)
}

// ValidateMap checks a decoded branding document.
// projectName is required; colors, when present, must be hex strings.
func ValidateMap(raw map[string]any) error {
	if _, ok := raw["projectName"]; !ok {
		return fmt.Errorf("%w: projectName", ErrMissingField)
	}

	value, ok := raw["colors"]
	if !ok {
		return nil
	}
	colors, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: colors must be an object", ErrInvalidDocument)
	}

	for _, key := range ColorKeys {
		v, ok := colors[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok || !IsHexColor(s) {
			return fmt.Errorf("%w for %s: must be hex color (e.g., #A7C7E7)", ErrInvalidColor, key)
		}
	}
	return nil
}

// IsHexColor reports whether s is a #rgb or #rrggbb color.
func IsHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Validate checks the merged branding in memory.
func (b *Branding) Validate() error {
	if b.ProjectName == "" {
		return fmt.Errorf("%w: projectName", ErrMissingField)
	}
	for _, key := range ColorKeys {
		v, _ := b.Colors.Get(key)
		if !IsHexColor(v) {
			return fmt.Errorf("%w for %s: must be hex color (e.g., #A7C7E7)", ErrInvalidColor, key)
		}
	}
	return nil
}
