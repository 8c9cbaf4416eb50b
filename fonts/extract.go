/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"bytes"

	"golang.org/x/image/font/sfnt"

	"github.com/docxlab/pdffont/common"
	"github.com/docxlab/pdffont/internal/truetype"
)

// ExtNotEmbedded is the format extension the host reports for a font that is
// referenced by name only, with no binary stored in the document.
const ExtNotEmbedded = "n/a"

// FontRef is one font reference supplied by the host document layer.
type FontRef struct {
	// Xref identifies the font object within the document. References
	// sharing an Xref describe the same font.
	Xref int

	// BaseName is the font name as the document reports it, possibly
	// decorated with a subsetting prefix and style suffix.
	BaseName string

	// Ext is the embedded format extension, or ExtNotEmbedded.
	Ext string

	// Buffer holds the embedded font program when Ext is not
	// ExtNotEmbedded.
	Buffer []byte
}

// Extractor resolves font references into Font values.
type Extractor struct {
	cfg      *Config
	defaults *Collection
}

// NewExtractor returns an extractor using the given configuration, or the
// default configuration when cfg is nil.
func NewExtractor(cfg *Config) *Extractor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Extractor{
		cfg:      cfg,
		defaults: cfg.Collection(),
	}
}

// Extract resolves every distinct font reference into exactly one Font, in
// the order references are first observed. Embedded fonts are decoded for
// their family name and measured line height; non-embedded fonts and fonts
// whose binaries cannot be decoded resolve against the base-font collection.
// A failure on one reference never aborts the others.
func (e *Extractor) Extract(refs []FontRef) *Collection {
	seen := map[int]bool{}
	var fonts []Font
	for _, ref := range refs {
		if seen[ref.Xref] {
			continue
		}
		seen[ref.Xref] = true
		fonts = append(fonts, e.resolve(ref))
	}
	return NewCollection(fonts...)
}

// Extract resolves font references using the default configuration.
func Extract(refs []FontRef) *Collection {
	return NewExtractor(nil).Extract(refs)
}

func (e *Extractor) resolve(ref FontRef) Font {
	if ref.Ext == ExtNotEmbedded {
		return e.fallback(ref)
	}

	fnt, err := truetype.Parse(bytes.NewReader(ref.Buffer))
	if err != nil {
		common.Log.Debug("font %q: decode failed: %v", ref.BaseName, err)
		return e.fallback(ref)
	}
	if !fnt.IsValid() {
		common.Log.Debug("font %q: required tables missing", ref.BaseName)
		return e.fallback(ref)
	}
	if fnt.UnitsPerEm() == 0 {
		common.Log.Debug("font %q: zero units per em", ref.BaseName)
		return e.fallback(ref)
	}

	return Font{
		Name:       familyName(fnt),
		LineHeight: lineHeightFactor(fnt, e.cfg.isCJKFont(fnt)),
	}
}

// fallback resolves the reference against the base-font collection using its
// normalized document name.
func (e *Extractor) fallback(ref FontRef) Font {
	return e.defaults.Get(NormalizeFontName(ref.BaseName))
}

// familyName resolves the canonical family name from the naming table. The
// family record decides; a font carrying only a full name yields an empty
// family name.
func familyName(fnt *truetype.Font) string {
	family := fnt.GetNameByID(int(sfnt.NameIDFamily))
	if family == "" {
		if full := fnt.GetNameByID(int(sfnt.NameIDFull)); full != "" {
			common.Log.Debug("font has full name %q but no family name", full)
		}
	}
	return NormalizeFontName(family)
}
