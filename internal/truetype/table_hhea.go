/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/docxlab/pdffont/common"

// hheaTable represents the horizontal header table (hhea).
// This table contains information for horizontal layout, in particular the
// ascender/descender/line gap values that drive line spacing.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type hheaTable struct {
	majorVersion        uint16
	minorVersion        uint16
	ascender            fword
	descender           fword
	lineGap             fword
	advanceWidthMax     ufword
	minLeftSideBearing  fword
	minRightSideBearing fword
	xMaxExtent          fword
	caretSlopeRise      int16
	caretSlopeRun       int16
	caretOffset         int16
	metricDataFormat    int16
	numberOfHMetrics    uint16
}

func (f *font) parseHhea(r *byteReader) (*hheaTable, error) {
	_, has, err := f.seekToTable(r, "hhea")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("hhea table absent")
		return nil, nil
	}

	t := &hheaTable{}
	err = r.read(&t.majorVersion, &t.minorVersion)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.ascender, &t.descender, &t.lineGap)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.advanceWidthMax, &t.minLeftSideBearing, &t.minRightSideBearing, &t.xMaxExtent)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.caretSlopeRise, &t.caretSlopeRun, &t.caretOffset)
	if err != nil {
		return nil, err
	}

	// Skip over reserved bytes.
	err = r.Skip(4 * 2)
	if err != nil {
		return nil, err
	}

	return t, r.read(&t.metricDataFormat, &t.numberOfHMetrics)
}
