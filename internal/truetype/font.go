/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

// font is a data model for the metadata tables of a truetype font.
//
// Required tables for the purposes of this package are "name", "head",
// "hhea" and "OS/2"; see IsValid. The "cmap" and "maxp" tables are decoded
// on a best-effort basis and their absence does not make a font unusable.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	hhea *hheaTable
	maxp *maxpTable
	name *nameTable
	os2  *os2Table
	cmap *cmapTable
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	// maxp before cmap: the glyph count bounds cmap glyph indices.
	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	f.os2, err = f.parseOS2Table(r)
	if err != nil {
		return nil, err
	}

	f.cmap, err = f.parseCmap(r)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// isValid checks that the tables needed to resolve a family name and compute
// vertical metrics were all present and parsed. cmap and maxp are not required.
func (f *font) isValid() bool {
	return f.name != nil && f.head != nil && f.hhea != nil && f.os2 != nil
}
