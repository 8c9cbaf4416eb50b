/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"math"

	"github.com/docxlab/pdffont/internal/truetype"
)

// lineHeightFactor computes the line-height ratio from the hhea vertical
// metrics. The descender is typically negative, so its absolute value
// contributes to the total span. CJK fonts scale the span by a fixed factor
// instead of adding the line gap. The caller must have checked that the
// units per em are non-zero.
func lineHeightFactor(fnt *truetype.Font, cjk bool) float64 {
	ascender, descender, lineGap := fnt.HheaMetrics()
	unitsPerEm := float64(fnt.UnitsPerEm())

	total := float64(ascender) + math.Abs(float64(descender))
	if cjk {
		return cjkLineScale * total / unitsPerEm
	}
	return (total + float64(lineGap)) / unitsPerEm
}
