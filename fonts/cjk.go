/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"github.com/docxlab/pdffont/internal/truetype"
)

// isCJKFont reports whether the font covers CJK scripts. Three signals are
// checked cheapest first, any one of which decides: declared code pages,
// declared Unicode ranges, then code points actually present in the
// character map. A font without a character map degrades to the first two.
func (cfg *Config) isCJKFont(fnt *truetype.Font) bool {
	cp1 := fnt.CodePageRange1()
	for _, b := range cfg.CJKCodePageBits {
		if cp1&(1<<uint(b)) != 0 {
			return true
		}
	}

	var ranges [3]uint32
	ranges[0], ranges[1], ranges[2] = fnt.UnicodeRanges()
	for _, b := range cfg.CJKUnicodeBits {
		if b < 0 || b > 95 {
			continue
		}
		if ranges[b/32]&(1<<uint(b%32)) != 0 {
			return true
		}
	}

	chars := fnt.Chars()
	if len(chars) == 0 {
		return false
	}
	for c := range chars {
		for _, cr := range cfg.CJKCodeRanges {
			if c >= cr.Lo && c <= cr.Hi {
				return true
			}
		}
	}
	return false
}
