/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"sort"
	"sync"
)

const (
	// defaultLineHeight is the universal fallback ratio for fonts with no
	// usable metrics and no base-font entry.
	defaultLineHeight = 1.2

	// cjkLineScale replaces the hhea line gap for CJK fonts, which bake
	// their spacing into ascent/descent by convention.
	cjkLineScale = 1.3
)

// CodeRange is an inclusive range of Unicode code points.
type CodeRange struct {
	Lo, Hi rune
}

// Config carries the static tables driving CJK classification and base-font
// fallback. A zero Config classifies nothing as CJK and falls back to the
// 1.2 default for every non-embedded font.
type Config struct {
	// CJKCodePageBits are bit indices of ulCodePageRange1 assigned to CJK
	// code pages.
	CJKCodePageBits []int

	// CJKUnicodeBits are bit indices (0-95) of the OS/2 Unicode range
	// words assigned to CJK blocks.
	CJKUnicodeBits []int

	// CJKCodeRanges are Unicode blocks whose presence in a character map
	// marks a font as CJK.
	CJKCodeRanges []CodeRange

	// BaseFontLineHeights maps standard base font names to measured
	// line-height ratios.
	BaseFontLineHeights map[string]float64
}

// Collection builds a base-font collection from the configured line-height
// table, ordered by font name for reproducible lookup.
func (cfg *Config) Collection() *Collection {
	names := make([]string, 0, len(cfg.BaseFontLineHeights))
	for name := range cfg.BaseFontLineHeights {
		names = append(names, name)
	}
	sort.Strings(names)

	fonts := make([]Font, 0, len(names))
	for _, name := range names {
		fonts = append(fonts, Font{Name: name, LineHeight: cfg.BaseFontLineHeights[name]})
	}
	return NewCollection(fonts...)
}

// DefaultConfig returns the standard classification and base-font tables.
func DefaultConfig() *Config {
	return &Config{
		// OS/2 ulCodePageRange1: JIS, Simplified Chinese, Korean Wansung,
		// Traditional Chinese, Korean Johab.
		CJKCodePageBits: []int{17, 18, 19, 20, 21},

		// OS/2 ulUnicodeRange1-3: Hangul Jamo plus the CJK, kana and
		// compatibility blocks.
		CJKUnicodeBits: []int{28, 49, 50, 51, 52, 54, 55, 56, 59, 61, 83},

		CJKCodeRanges: []CodeRange{
			{0x1100, 0x11FF},   // Hangul Jamo
			{0x2E80, 0x2EFF},   // CJK Radicals Supplement
			{0x3000, 0x303F},   // CJK Symbols and Punctuation
			{0x3040, 0x309F},   // Hiragana
			{0x30A0, 0x30FF},   // Katakana
			{0x3100, 0x312F},   // Bopomofo
			{0x3130, 0x318F},   // Hangul Compatibility Jamo
			{0x31F0, 0x31FF},   // Katakana Phonetic Extensions
			{0x3200, 0x32FF},   // Enclosed CJK Letters and Months
			{0x3300, 0x33FF},   // CJK Compatibility
			{0x3400, 0x4DBF},   // CJK Unified Ideographs Extension A
			{0x4E00, 0x9FFF},   // CJK Unified Ideographs
			{0xA960, 0xA97F},   // Hangul Jamo Extended-A
			{0xAC00, 0xD7AF},   // Hangul Syllables
			{0xD7B0, 0xD7FF},   // Hangul Jamo Extended-B
			{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
			{0xFE30, 0xFE4F},   // CJK Compatibility Forms
			{0xFF00, 0xFFEF},   // Halfwidth and Fullwidth Forms
			{0x1B000, 0x1B0FF}, // Kana Supplement
		},

		BaseFontLineHeights: map[string]float64{
			"Courier":               1.133,
			"Courier-Bold":          1.133,
			"Courier-Oblique":       1.133,
			"Courier-BoldOblique":   1.133,
			"Helvetica":             1.15,
			"Helvetica-Bold":        1.15,
			"Helvetica-Oblique":     1.15,
			"Helvetica-BoldOblique": 1.15,
			"Times-Roman":           1.149,
			"Times-Bold":            1.149,
			"Times-Italic":          1.149,
			"Times-BoldItalic":      1.149,
			"Symbol":                1.2,
			"ZapfDingbats":          1.2,
		},
	}
}

var (
	defaultCollectionOnce sync.Once
	defaultCollection     *Collection
)

// DefaultCollection returns the shared base-font collection built from
// DefaultConfig. It is constructed once and never mutated.
func DefaultCollection() *Collection {
	defaultCollectionOnce.Do(func() {
		defaultCollection = DefaultConfig().Collection()
	})
	return defaultCollection
}
