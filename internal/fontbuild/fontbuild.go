/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontbuild constructs minimal truetype font binaries in memory.
// Used by tests that need well-formed (or deliberately broken) font buffers
// without shipping binary fixtures.
package fontbuild

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Table is a raw font table with its 4-byte tag.
type Table struct {
	Tag  string
	Data []byte
}

// byteWriter buffers big-endian writes of font data types.
type byteWriter struct {
	buffer bytes.Buffer
}

func (w *byteWriter) write(fields ...interface{}) {
	for _, f := range fields {
		binary.Write(&w.buffer, binary.BigEndian, f)
	}
}

func (w *byteWriter) writeTag(t string) {
	b := []byte(t)
	for len(b) < 4 {
		b = append(b, ' ')
	}
	w.buffer.Write(b[:4])
}

// checksum sums the data as big-endian uint32 values, zero-padding the tail.
func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// SFNT assembles a font binary from the given tables: offset table, table
// records with checksums, then the table data, each padded to a 4-byte
// boundary.
func SFNT(tables ...Table) []byte {
	numTables := len(tables)
	entrySelector := uint16(0)
	if numTables > 0 {
		entrySelector = uint16(bits.Len(uint(numTables)) - 1)
	}
	searchRange := uint16(16) << entrySelector
	rangeShift := uint16(numTables*16) - searchRange

	w := &byteWriter{}
	w.write(uint32(0x00010000), uint16(numTables), searchRange, entrySelector, rangeShift)

	offset := uint32(12 + 16*numTables)
	for _, t := range tables {
		w.writeTag(t.Tag)
		w.write(checksum(t.Data), offset, uint32(len(t.Data)))
		offset += uint32((len(t.Data) + 3) &^ 3)
	}
	for _, t := range tables {
		w.buffer.Write(t.Data)
		if pad := (4 - len(t.Data)%4) % 4; pad > 0 {
			w.buffer.Write(make([]byte, pad))
		}
	}

	return w.buffer.Bytes()
}

// Head builds a head table with the given units per em.
func Head(unitsPerEm uint16) []byte {
	w := &byteWriter{}
	w.write(uint16(1), uint16(0))                 // version
	w.write(uint32(0x00010000))                   // fontRevision
	w.write(uint32(0), uint32(0x5F0F3CF5))        // checksumAdjustment, magic
	w.write(uint16(0), unitsPerEm)                // flags, unitsPerEm
	w.write(int64(0), int64(0))                   // created, modified
	w.write(int16(0), int16(0), int16(0), int16(0)) // bounding box
	w.write(uint16(0), uint16(0))                 // macStyle, lowestRecPPEM
	w.write(int16(2), int16(0), int16(0))         // directionHint, indexToLocFormat, glyphDataFormat
	return w.buffer.Bytes()
}

// Hhea builds an hhea table with the given vertical metrics.
func Hhea(ascender, descender, lineGap int16) []byte {
	w := &byteWriter{}
	w.write(uint16(1), uint16(0))
	w.write(ascender, descender, lineGap)
	w.write(uint16(0))                    // advanceWidthMax
	w.write(int16(0), int16(0), int16(0)) // side bearings, xMaxExtent
	w.write(int16(1), int16(0), int16(0)) // caret slope/offset
	w.write(int16(0), int16(0), int16(0), int16(0)) // reserved
	w.write(int16(0), uint16(0))          // metricDataFormat, numberOfHMetrics
	return w.buffer.Bytes()
}

// Maxp builds a maxp table header with the given glyph count.
func Maxp(numGlyphs uint16) []byte {
	w := &byteWriter{}
	w.write(uint32(0x00010000), numGlyphs)
	return w.buffer.Bytes()
}

// OS2 builds a version 1 OS/2 table carrying the given code page and
// Unicode range words; all other fields are zero.
func OS2(codePageRange1, unicodeRange1, unicodeRange2, unicodeRange3 uint32) []byte {
	w := &byteWriter{}
	w.write(uint16(1))                              // version
	w.write(make([]int16, 15))                      // averages through family class
	w.buffer.Write(make([]byte, 10))                // panose
	w.write(unicodeRange1, unicodeRange2, unicodeRange3, uint32(0))
	w.writeTag("TEST")                              // achVendID
	w.write(uint16(0), uint16(0), uint16(0))        // fsSelection, first/last char index
	w.write(int16(0), int16(0), int16(0))           // typo ascender/descender/line gap
	w.write(uint16(0), uint16(0))                   // win ascent/descent
	w.write(codePageRange1, uint32(0))
	return w.buffer.Bytes()
}

// NameEntry is one record for a Name table.
type NameEntry struct {
	NameID uint16
	Value  string
	UTF16  bool // encode as UTF-16BE; Latin-1 otherwise
}

// Name builds a format 0 name table from the given entries.
func Name(entries ...NameEntry) []byte {
	var storage bytes.Buffer
	w := &byteWriter{}
	w.write(uint16(0), uint16(len(entries)), uint16(6+12*len(entries)))

	for _, e := range entries {
		var data []byte
		platformID, encodingID := uint16(1), uint16(0)
		if e.UTF16 {
			platformID, encodingID = 3, 1
			for _, r := range e.Value {
				data = append(data, byte(r>>8), byte(r))
			}
		} else {
			data = []byte(e.Value)
		}
		w.write(platformID, encodingID, uint16(0), e.NameID)
		w.write(uint16(len(data)), uint16(storage.Len()))
		storage.Write(data)
	}

	w.buffer.Write(storage.Bytes())
	return w.buffer.Bytes()
}

// CmapFormat4 builds a cmap table with a single (3,1) format 4 subtable.
// Each segment is {startCode, endCode, startGlyphID}; glyph ids run
// sequentially within a segment. The final 0xFFFF sentinel segment is
// appended automatically.
func CmapFormat4(segments ...[3]uint16) []byte {
	type seg struct {
		start, end, delta uint16
	}
	segs := make([]seg, 0, len(segments)+1)
	for _, s := range segments {
		segs = append(segs, seg{s[0], s[1], s[2] - s[0]})
	}
	segs = append(segs, seg{0xFFFF, 0xFFFF, 1})

	segCount := len(segs)
	length := uint16(16 + 8*segCount)

	w := &byteWriter{}
	w.write(uint16(0), uint16(1))           // cmap header
	w.write(uint16(3), uint16(1), uint32(12)) // encoding record

	w.write(uint16(4), length, uint16(0), uint16(2*segCount))
	w.write(uint16(0), uint16(0), uint16(0)) // searchRange et al, unused by readers
	for _, s := range segs {
		w.write(s.end)
	}
	w.write(uint16(0)) // reservedPad
	for _, s := range segs {
		w.write(s.start)
	}
	for _, s := range segs {
		w.write(s.delta)
	}
	for range segs {
		w.write(uint16(0)) // idRangeOffset
	}
	return w.buffer.Bytes()
}

// CmapFormat12 builds a cmap table with a single (3,10) format 12 subtable.
// Each group is {startCharCode, endCharCode, startGlyphID}.
func CmapFormat12(groups ...[3]uint32) []byte {
	w := &byteWriter{}
	w.write(uint16(0), uint16(1))
	w.write(uint16(3), uint16(10), uint32(12))

	w.write(uint16(12), uint16(0))
	w.write(uint32(16+12*len(groups)), uint32(0), uint32(len(groups)))
	for _, g := range groups {
		w.write(g[0], g[1], g[2])
	}
	return w.buffer.Bytes()
}
