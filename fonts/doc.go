/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fonts resolves Word-compatible font properties from embedded font
// programs. For each font referenced by a document it derives the canonical
// family name and a line-height ratio (line height = font size * ratio) from
// the font's metadata tables, classifying CJK fonts to apply their distinct
// vertical-metrics convention. Fonts that are not embedded, or whose binaries
// cannot be decoded, resolve against a collection of standard base fonts.
package fonts
