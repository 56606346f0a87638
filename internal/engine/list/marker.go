package list

import (
	"regexp"
	"strconv"
)

// DefaultBulletGlyph is the glyph inserted when none is configured.
const DefaultBulletGlyph = "-"

// Line patterns for list items. The bullet glyph set is closed: any
// other leading punctuation is ordinary content.
var (
	bulletPattern   = regexp.MustCompile(`^([ \t]*)([-*•])([ \t]+)`)
	numberedPattern = regexp.MustCompile(`^([ \t]*)(\d+)\.([ \t]+)`)
)

// Marker is the leading token that identifies a line as a list item,
// e.g. "- " or "3. ", together with its indentation.
type Marker struct {
	// Indent is the leading whitespace before the marker.
	Indent string

	// Glyph is the bullet glyph. Empty for numbered items.
	Glyph string

	// Number is the parsed item number. Zero for bullet items.
	Number int

	// Suffix is the whitespace between the marker and the content.
	Suffix string
}

// ParseMarker inspects a single line (no newlines) and reports whether
// it starts with a recognized list marker.
func ParseMarker(line string) (Marker, bool) {
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return Marker{Indent: m[1], Glyph: m[2], Suffix: m[3]}, true
	}
	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Marker{}, false
		}
		return Marker{Indent: m[1], Number: n, Suffix: m[3]}, true
	}
	return Marker{}, false
}

// IsNumbered returns true for numbered-list markers.
func (m Marker) IsNumbered() bool {
	return m.Glyph == ""
}

// Token returns the marker text without indentation, e.g. "- " or "3. ".
func (m Marker) Token() string {
	if m.IsNumbered() {
		return strconv.Itoa(m.Number) + "." + m.Suffix
	}
	return m.Glyph + m.Suffix
}

// NextToken returns the marker for the following item: the identical
// token for bullets, the incremented number for numbered items. No
// renumbering of other lines is implied.
func (m Marker) NextToken() string {
	if m.IsNumbered() {
		return strconv.Itoa(m.Number+1) + "." + m.Suffix
	}
	return m.Glyph + m.Suffix
}
