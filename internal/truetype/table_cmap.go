/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/docxlab/pdffont/common"

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables

	// chars maps each defined code point to its glyph index, merged from the
	// preferred Unicode subtable. Code points mapping to glyph 0 (.notdef)
	// are not included.
	chars map[rune]GlyphIndex
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

// Subtable formats with segmented coverage can address the entire Unicode
// repertoire; anything beyond it means the table is corrupt.
const maxCodePoint = 0x10FFFF

// parseCmap decodes the cmap table on a best-effort basis. The font remains
// usable without a character map, so a missing or malformed cmap yields a nil
// table rather than an error.
func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("cmap table not present")
		return nil, nil
	}

	t := &cmapTable{}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		common.Log.Debug("cmap header short: %v", err)
		return nil, nil
	}

	for i := 0; i < int(t.numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			common.Log.Debug("cmap encoding record short: %v", err)
			return nil, nil
		}
		t.encodingRecords = append(t.encodingRecords, rec)
	}

	rec, ok := t.bestSubtable()
	if !ok {
		common.Log.Debug("no usable cmap subtable")
		return t, nil
	}

	err = r.Seek(int64(tr.offset) + int64(rec.offset))
	if err != nil {
		common.Log.Debug("cmap subtable seek failed: %v", err)
		return t, nil
	}

	chars, err := f.parseCmapSubtable(r)
	if err != nil {
		common.Log.Debug("cmap subtable parse failed: %v", err)
		return t, nil
	}
	t.chars = chars

	return t, nil
}

// bestSubtable selects the preferred Unicode subtable, full repertoire first.
func (t *cmapTable) bestSubtable() (encodingRecord, bool) {
	best := -1
	var bestRec encodingRecord
	for _, rec := range t.encodingRecords {
		var score int
		switch {
		case rec.platformID == 3 && rec.encodingID == 10: // Windows, full Unicode.
			score = 3
		case rec.platformID == 3 && rec.encodingID == 1: // Windows, Unicode BMP.
			score = 2
		case rec.platformID == 0: // Unicode platform.
			score = 1
		default:
			continue
		}
		if score > best {
			best = score
			bestRec = rec
		}
	}
	return bestRec, best >= 0
}

func (f *font) parseCmapSubtable(r *byteReader) (map[rune]GlyphIndex, error) {
	var format uint16
	err := r.read(&format)
	if err != nil {
		return nil, err
	}

	switch format {
	case 0:
		return f.parseCmapFormat0(r)
	case 4:
		return f.parseCmapFormat4(r)
	case 6:
		return f.parseCmapFormat6(r)
	case 12:
		return f.parseCmapFormat12(r)
	}

	common.Log.Debug("cmap subtable format %d not supported", format)
	return nil, nil
}

// addChar records code point `c` mapping to glyph `gid`, dropping .notdef
// mappings and glyph indices beyond the glyph count declared by maxp.
func (f *font) addChar(chars map[rune]GlyphIndex, c int, gid uint16) {
	if gid == 0 {
		return
	}
	if f.maxp != nil && gid >= f.maxp.numGlyphs {
		return
	}
	chars[rune(c)] = GlyphIndex(gid)
}

// Byte encoding table: 256 single-byte codes.
func (f *font) parseCmapFormat0(r *byteReader) (map[rune]GlyphIndex, error) {
	var length, language uint16
	err := r.read(&length, &language)
	if err != nil {
		return nil, err
	}

	var glyphIDs []byte
	err = r.readBytes(&glyphIDs, 256)
	if err != nil {
		return nil, err
	}

	chars := map[rune]GlyphIndex{}
	for code, gid := range glyphIDs {
		f.addChar(chars, code, uint16(gid))
	}
	return chars, nil
}

// Segment mapping to delta values: the standard BMP table.
func (f *font) parseCmapFormat4(r *byteReader) (map[rune]GlyphIndex, error) {
	var length, language, segCountX2 uint16
	err := r.read(&length, &language, &segCountX2)
	if err != nil {
		return nil, err
	}
	if segCountX2 == 0 || segCountX2%2 != 0 {
		return nil, errRangeCheck
	}
	segCount := int(segCountX2 / 2)

	// The fixed-size portion is 16 bytes of header plus four arrays of
	// segCount words; whatever remains is the glyph id array.
	if int(length) < 16+8*segCount {
		return nil, errRangeCheck
	}

	// Skip searchRange, entrySelector, rangeShift.
	err = r.Skip(6)
	if err != nil {
		return nil, err
	}

	var endCodes, startCodes, idRangeOffsets, glyphIDs []uint16
	var idDeltas []int16
	var reservedPad uint16

	err = r.readSlice(&endCodes, segCount)
	if err != nil {
		return nil, err
	}
	err = r.read(&reservedPad)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&startCodes, segCount)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&idDeltas, segCount)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&idRangeOffsets, segCount)
	if err != nil {
		return nil, err
	}
	err = r.readSlice(&glyphIDs, (int(length)-16-8*segCount)/2)
	if err != nil {
		return nil, err
	}

	chars := map[rune]GlyphIndex{}
	for i := 0; i < segCount; i++ {
		for c := int(startCodes[i]); c <= int(endCodes[i]); c++ {
			if c == 0xFFFF {
				// Final sentinel segment.
				continue
			}

			var gid uint16
			if idRangeOffsets[i] == 0 {
				gid = uint16(c + int(idDeltas[i]))
			} else {
				// idRangeOffset is a byte offset from its own position within
				// the idRangeOffset array into the glyph id array.
				idx := int(idRangeOffsets[i])/2 + (c - int(startCodes[i])) - (segCount - i)
				if idx < 0 || idx >= len(glyphIDs) {
					return nil, errRangeCheck
				}
				if glyphIDs[idx] == 0 {
					continue
				}
				gid = uint16(int(glyphIDs[idx]) + int(idDeltas[i]))
			}
			f.addChar(chars, c, gid)
		}
	}
	return chars, nil
}

// Trimmed table mapping: a dense range of 16-bit codes.
func (f *font) parseCmapFormat6(r *byteReader) (map[rune]GlyphIndex, error) {
	var length, language, firstCode, entryCount uint16
	err := r.read(&length, &language, &firstCode, &entryCount)
	if err != nil {
		return nil, err
	}

	var glyphIDs []uint16
	err = r.readSlice(&glyphIDs, int(entryCount))
	if err != nil {
		return nil, err
	}

	chars := map[rune]GlyphIndex{}
	for i, gid := range glyphIDs {
		f.addChar(chars, int(firstCode)+i, gid)
	}
	return chars, nil
}

// Segmented coverage: 32-bit code ranges with sequential glyph ids.
func (f *font) parseCmapFormat12(r *byteReader) (map[rune]GlyphIndex, error) {
	var reserved uint16
	var length, language, numGroups uint32
	err := r.read(&reserved, &length, &language, &numGroups)
	if err != nil {
		return nil, err
	}

	chars := map[rune]GlyphIndex{}
	for i := 0; i < int(numGroups); i++ {
		var startCharCode, endCharCode, startGlyphID uint32
		err = r.read(&startCharCode, &endCharCode, &startGlyphID)
		if err != nil {
			return nil, err
		}
		if endCharCode < startCharCode || endCharCode > maxCodePoint {
			return nil, errRangeCheck
		}

		for c := int(startCharCode); c <= int(endCharCode); c++ {
			f.addChar(chars, c, uint16(startGlyphID+uint32(c)-startCharCode))
		}
	}
	return chars, nil
}
