/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxlab/pdffont/internal/fontbuild"
)

func embeddedFont(family string, spec fontSpec) []byte {
	spec.nameEntries = []fontbuild.NameEntry{
		{NameID: 1, Value: family, UTF16: true},
		{NameID: 4, Value: "BCDGEE+" + family},
	}
	return buildFontData(spec)
}

func TestExtract(t *testing.T) {
	refs := []FontRef{
		{Xref: 1, BaseName: "BCDGEE+Calibri-Bold", Ext: "ttf", Buffer: embeddedFont("Calibri", fontSpec{
			unitsPerEm: 1000, ascender: 880, descender: -120, lineGap: 100,
		})},
		{Xref: 2, BaseName: "Times-Roman", Ext: ExtNotEmbedded},
	}

	c := Extract(refs)
	require.Equal(t, 2, c.Len())

	fonts := c.Fonts()
	assert.Equal(t, "Calibri", fonts[0].Name)
	assert.InDelta(t, 1.1, fonts[0].LineHeight, 1e-9)
	assert.Equal(t, Font{Name: "Times-Bold", LineHeight: 1.149}, fonts[1])
}

func TestExtractOrderAndFallback(t *testing.T) {
	refs := []FontRef{
		{Xref: 1, BaseName: "BCDGEE+Calibri", Ext: "ttf", Buffer: embeddedFont("Calibri", fontSpec{
			ascender: 880, descender: -120,
		})},
		{Xref: 2, BaseName: "BCDGEE+Helvetica-Bold", Ext: "ttf", Buffer: []byte("not a font")},
		{Xref: 3, BaseName: "BCDGEE+Arial", Ext: "ttf", Buffer: embeddedFont("Arial", fontSpec{
			ascender: 880, descender: -120,
		})},
	}

	fonts := Extract(refs).Fonts()
	require.Len(t, fonts, 3)
	assert.Equal(t, "Calibri", fonts[0].Name)
	assert.Equal(t, Font{Name: "Helvetica", LineHeight: 1.15}, fonts[1])
	assert.Equal(t, "Arial", fonts[2].Name)
}

func TestExtractTotality(t *testing.T) {
	refs := []FontRef{
		{Xref: 1, BaseName: "Garbage", Ext: "ttf", Buffer: []byte{0xDE, 0xAD}},
		{Xref: 2, BaseName: "Empty", Ext: "ttf"},
		{Xref: 3, BaseName: "NotEmbedded", Ext: ExtNotEmbedded},
		{Xref: 4, BaseName: "", Ext: "ttf", Buffer: nil},
	}

	fonts := Extract(refs).Fonts()
	require.Len(t, fonts, 4)
	for _, f := range fonts {
		assert.True(t, f.LineHeight > 0)
	}

	assert.Equal(t, 0, Extract(nil).Len())
}

func TestExtractDedup(t *testing.T) {
	buf := embeddedFont("Calibri", fontSpec{ascender: 880, descender: -120})
	refs := []FontRef{
		{Xref: 7, BaseName: "BCDGEE+Calibri", Ext: "ttf", Buffer: buf},
		{Xref: 7, BaseName: "BCDGEE+Calibri", Ext: "ttf", Buffer: buf},
		{Xref: 8, BaseName: "Symbol", Ext: ExtNotEmbedded},
	}

	c := Extract(refs)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Calibri", c.Fonts()[0].Name)
}

func TestExtractInvalidTablesFallback(t *testing.T) {
	// Without an OS/2 table the decoded binary is unusable and the
	// reference resolves as if it were not embedded.
	data := fontbuild.SFNT(
		fontbuild.Table{Tag: "head", Data: fontbuild.Head(1000)},
		fontbuild.Table{Tag: "hhea", Data: fontbuild.Hhea(880, -120, 0)},
		fontbuild.Table{Tag: "name", Data: fontbuild.Name(
			fontbuild.NameEntry{NameID: 1, Value: "Courier", UTF16: true},
		)},
	)
	refs := []FontRef{{Xref: 1, BaseName: "BCDGEE+Courier-Bold", Ext: "ttf", Buffer: data}}

	fonts := Extract(refs).Fonts()
	require.Len(t, fonts, 1)
	assert.Equal(t, DefaultCollection().Get("Courier"), fonts[0])
	assert.Equal(t, Font{Name: "Courier", LineHeight: 1.133}, fonts[0])
}

func TestExtractZeroUnitsPerEm(t *testing.T) {
	head := fontbuild.Head(1000)
	// Zero out unitsPerEm without breaking the container.
	head[18], head[19] = 0, 0

	data := buildFontData(fontSpec{ascender: 880, descender: -120})
	refs := []FontRef{{Xref: 1, BaseName: "ZDBAAA+SimSun", Ext: "ttf", Buffer: data}}

	// Sanity: the unmodified font resolves from its tables.
	assert.Equal(t, "TestFamily", Extract(refs).Fonts()[0].Name)

	refs[0].Buffer = fontbuild.SFNT(
		fontbuild.Table{Tag: "head", Data: head},
		fontbuild.Table{Tag: "hhea", Data: fontbuild.Hhea(880, -120, 0)},
		fontbuild.Table{Tag: "maxp", Data: fontbuild.Maxp(10)},
		fontbuild.Table{Tag: "name", Data: fontbuild.Name(
			fontbuild.NameEntry{NameID: 1, Value: "SimSun", UTF16: true},
		)},
		fontbuild.Table{Tag: "OS/2", Data: fontbuild.OS2(0, 0, 0, 0)},
	)
	fonts := Extract(refs).Fonts()
	require.Len(t, fonts, 1)
	assert.Equal(t, Font{Name: "SimSun", LineHeight: 1.2}, fonts[0])
}

func TestExtractNoFamilyName(t *testing.T) {
	// Only the full name (id 4) present; the family name stays empty.
	data := buildFontData(fontSpec{
		ascender: 880, descender: -120,
		nameEntries: []fontbuild.NameEntry{{NameID: 4, Value: "BCDGEE+Calibri-Bold"}},
	})
	refs := []FontRef{{Xref: 1, BaseName: "BCDGEE+Calibri-Bold", Ext: "ttf", Buffer: data}}

	fonts := Extract(refs).Fonts()
	require.Len(t, fonts, 1)
	assert.Equal(t, "", fonts[0].Name)
	assert.InDelta(t, 1.0, fonts[0].LineHeight, 1e-9)
}

func TestExtractCJKLineHeight(t *testing.T) {
	data := buildFontData(fontSpec{
		ascender: 880, descender: -120, lineGap: 100,
		codePage: 1 << 18,
	})
	refs := []FontRef{{Xref: 1, BaseName: "BCDGEE+SimSun", Ext: "ttf", Buffer: data}}

	fonts := Extract(refs).Fonts()
	require.Len(t, fonts, 1)
	assert.InDelta(t, 1.3, fonts[0].LineHeight, 1e-9)
}

func TestNewExtractorCustomConfig(t *testing.T) {
	cfg := &Config{
		BaseFontLineHeights: map[string]float64{"MyBase": 1.5},
	}
	e := NewExtractor(cfg)

	refs := []FontRef{
		{Xref: 1, BaseName: "MyBase-Bold", Ext: ExtNotEmbedded},
		{Xref: 2, BaseName: "Helvetica", Ext: ExtNotEmbedded},
	}
	fonts := e.Extract(refs).Fonts()
	require.Len(t, fonts, 2)
	assert.Equal(t, Font{Name: "MyBase", LineHeight: 1.5}, fonts[0])
	// Not in the custom table; universal fallback applies.
	assert.Equal(t, Font{Name: "Helvetica", LineHeight: 1.2}, fonts[1])
}
