/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxlab/pdffont/internal/fontbuild"
)

// rawCmap assembles a cmap table with a single encoding record and the given
// subtable fields, all big endian.
func rawCmap(platformID, encodingID uint16, fields ...interface{}) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, []uint16{0, 1, platformID, encodingID})
	binary.Write(&buf, binary.BigEndian, uint32(12))
	for _, f := range fields {
		binary.Write(&buf, binary.BigEndian, f)
	}
	return buf.Bytes()
}

func withCmap(data []byte) []fontbuild.Table {
	tables := testTables()
	tables[5] = fontbuild.Table{Tag: "cmap", Data: data}
	return tables
}

func TestCmapFormat0(t *testing.T) {
	glyphIDs := make([]byte, 256)
	glyphIDs['a'] = 7
	glyphIDs['b'] = 8

	data := rawCmap(0, 3,
		uint16(0), uint16(262), uint16(0), // format, length, language
		glyphIDs,
	)
	fnt := parseTestFont(t, withCmap(data)...)

	chars := fnt.Chars()
	require.NotNil(t, chars)
	assert.Len(t, chars, 2)
	assert.Equal(t, GlyphIndex(7), chars['a'])
	assert.Equal(t, GlyphIndex(8), chars['b'])
}

func TestCmapFormat6(t *testing.T) {
	data := rawCmap(3, 1,
		uint16(6), uint16(16), uint16(0), // format, length, language
		uint16(0x30), uint16(3), // firstCode, entryCount
		[]uint16{10, 0, 12},
	)
	fnt := parseTestFont(t, withCmap(data)...)

	chars := fnt.Chars()
	require.NotNil(t, chars)
	// Glyph 0 mappings are dropped.
	assert.Len(t, chars, 2)
	assert.Equal(t, GlyphIndex(10), chars[0x30])
	assert.Equal(t, GlyphIndex(12), chars[0x32])
}

func TestCmapUnsupportedFormat(t *testing.T) {
	data := rawCmap(3, 1, uint16(2), uint16(6), uint16(0))
	fnt := parseTestFont(t, withCmap(data)...)

	// Font stays usable without a character map.
	assert.True(t, fnt.IsValid())
	assert.Nil(t, fnt.Chars())
}

func TestCmapMalformed(t *testing.T) {
	// Encoding record count says two, data holds none.
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, []uint16{0, 2})

	fnt := parseTestFont(t, withCmap(buf.Bytes())...)
	assert.True(t, fnt.IsValid())
	assert.Nil(t, fnt.Chars())
}

func TestCmapGlyphCountBound(t *testing.T) {
	tables := testTables()
	// Three glyphs: ids 1 and 2 are in range, the rest of A-Z is not.
	tables[2] = fontbuild.Table{Tag: "maxp", Data: fontbuild.Maxp(3)}
	fnt := parseTestFont(t, tables...)

	chars := fnt.Chars()
	require.NotNil(t, chars)
	assert.Len(t, chars, 2)
	assert.Equal(t, GlyphIndex(1), chars['A'])
	assert.Equal(t, GlyphIndex(2), chars['B'])
}

func TestCmapSubtablePreference(t *testing.T) {
	records := []struct {
		platformID uint16
		encodingID uint16
		score      int
	}{
		{3, 10, 3},
		{3, 1, 2},
		{0, 3, 1},
		{1, 0, 0}, // Macintosh platform is ignored.
	}

	table := &cmapTable{}
	for _, rec := range records {
		table.encodingRecords = append(table.encodingRecords, encodingRecord{
			platformID: rec.platformID,
			encodingID: rec.encodingID,
		})
	}

	best, ok := table.bestSubtable()
	require.True(t, ok)
	assert.Equal(t, uint16(3), best.platformID)
	assert.Equal(t, uint16(10), best.encodingID)

	table.encodingRecords = table.encodingRecords[3:]
	_, ok = table.bestSubtable()
	assert.False(t, ok)
}
