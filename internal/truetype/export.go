/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"io"

	"github.com/docxlab/pdffont/common"
)

// Font wraps font for outside access.
type Font struct {
	br *byteReader
	*font
}

// Parse parses the truetype font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{
		br:   r,
		font: fnt,
	}, nil
}

// IsValid returns true if the name, head, hhea and OS/2 tables were all
// present and parsed. A missing cmap does not invalidate the font.
func (f *Font) IsValid() bool {
	return f != nil && f.font != nil && f.font.isValid()
}

// UnitsPerEm returns the design units per em from the head table, or 0 when
// the table is missing.
func (f *Font) UnitsPerEm() uint16 {
	if f == nil || f.head == nil {
		common.Log.Debug("head table not set")
		return 0
	}
	return f.head.unitsPerEm
}

// HheaMetrics returns the ascender, descender and line gap from the hhea
// table in design units. The descender is typically negative.
func (f *Font) HheaMetrics() (ascender, descender, lineGap int16) {
	if f == nil || f.hhea == nil {
		common.Log.Debug("hhea table not set")
		return 0, 0, 0
	}
	return int16(f.hhea.ascender), int16(f.hhea.descender), int16(f.hhea.lineGap)
}

// CodePageRange1 returns bits 0-31 of the OS/2 code page character ranges,
// or 0 when the table is missing.
func (f *Font) CodePageRange1() uint32 {
	if f == nil || f.os2 == nil {
		common.Log.Debug("OS/2 table not set")
		return 0
	}
	return f.os2.ulCodePageRange1
}

// UnicodeRanges returns bits 0-95 of the OS/2 Unicode character ranges as
// three 32-bit words.
func (f *Font) UnicodeRanges() (r1, r2, r3 uint32) {
	if f == nil || f.os2 == nil {
		common.Log.Debug("OS/2 table not set")
		return 0, 0, 0
	}
	return f.os2.ulUnicodeRange1, f.os2.ulUnicodeRange2, f.os2.ulUnicodeRange3
}

// Chars returns the code point to glyph index map decoded from the cmap
// table, or nil when no usable subtable was found. The returned map is the
// font's own and must not be modified.
func (f *Font) Chars() map[rune]GlyphIndex {
	if f == nil || f.cmap == nil {
		return nil
	}
	return f.cmap.chars
}
