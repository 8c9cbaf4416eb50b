/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"strings"
)

// Font holds the resolved properties of a single font: the family name a
// word processor recognizes and the multiplier converting font size into
// the vertical distance between baselines.
type Font struct {
	Name       string
	LineHeight float64
}

// Collection is an ordered sequence of resolved fonts. Lookup is a linear
// scan in insertion order, so duplicates are allowed and the first match
// wins.
type Collection struct {
	fonts []Font
}

// NewCollection returns a collection containing `fonts` in the given order.
func NewCollection(fonts ...Font) *Collection {
	return &Collection{fonts: fonts}
}

// Len returns the number of fonts in the collection.
func (c *Collection) Len() int {
	return len(c.fonts)
}

// Fonts returns the collection contents in insertion order.
func (c *Collection) Fonts() []Font {
	out := make([]Font, len(c.fonts))
	copy(out, c.fonts)
	return out
}

// Get looks up a font by name, case-insensitively and ignoring spaces. A
// collection entry matches when either matching key contains the other, so
// "Calibri-Bold" finds a "Calibri" entry and vice versa. When nothing
// matches, a fallback font with the requested name and a line height of 1.2
// is returned; Get never fails.
func (c *Collection) Get(name string) Font {
	key := matchKey(name)
	for _, f := range c.fonts {
		fontKey := matchKey(f.Name)
		if strings.Contains(fontKey, key) || strings.Contains(key, fontKey) {
			return f
		}
	}
	return Font{Name: name, LineHeight: defaultLineHeight}
}

// matchKey uppercases the name and strips all whitespace.
func matchKey(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), ""))
}

// NormalizeFontName strips the decorations a document may attach to a font
// name: a subsetting prefix ending in "+" (e.g. "BCDGEE+Calibri") and a
// style suffix starting at "-" (e.g. "Calibri-Bold"). Both decorated and
// plain spellings of the same family converge to the same result.
func NormalizeFontName(name string) string {
	if i := strings.LastIndex(name, "+"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "-"); i >= 0 {
		name = name[:i]
	}
	return name
}
