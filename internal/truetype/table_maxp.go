/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/docxlab/pdffont/common"

// maxpTable represents the Maximum Profile (maxp) table.
// Only the glyph count is of interest here; it bounds the glyph indices
// that a well formed cmap may produce.
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

func (f *font) parseMaxp(r *byteReader) (*maxpTable, error) {
	_, has, err := f.seekToTable(r, "maxp")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("maxp table not present")
		return nil, nil
	}

	t := &maxpTable{}
	return t, r.read(&t.version, &t.numGlyphs)
}
