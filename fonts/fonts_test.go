/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFontName(t *testing.T) {
	testcases := []struct {
		name     string
		expected string
	}{
		{"BCDGEE+Calibri-Bold", "Calibri"},
		{"BCDGEE+Calibri", "Calibri"},
		{"Calibri-Light", "Calibri"},
		{"Arial", "Arial"},
		{"BCDGEE+-Bold", ""},
		{"", ""},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeFontName(tc.name)
			assert.Equal(t, tc.expected, got)

			// Normalization is idempotent.
			assert.Equal(t, got, NormalizeFontName(got))
		})
	}
}

func TestCollectionGet(t *testing.T) {
	c := NewCollection(Font{Name: "Calibri", LineHeight: 1.18})

	// Case-insensitive, space-insensitive, containment either direction.
	for _, name := range []string{"Calibri", "Calibri-Bold", "CALIBRI", "calibri bold", "Cal"} {
		assert.Equal(t, Font{Name: "Calibri", LineHeight: 1.18}, c.Get(name), name)
	}
}

func TestCollectionGetFallback(t *testing.T) {
	c := NewCollection()
	assert.Equal(t, Font{Name: "Anything", LineHeight: 1.2}, c.Get("Anything"))

	c = NewCollection(Font{Name: "Calibri", LineHeight: 1.18})
	assert.Equal(t, Font{Name: "Wingdings", LineHeight: 1.2}, c.Get("Wingdings"))
}

func TestCollectionGetFirstMatch(t *testing.T) {
	c := NewCollection(
		Font{Name: "Arial", LineHeight: 1.15},
		Font{Name: "ArialNarrow", LineHeight: 1.1},
	)

	// Containment matching means a short entry shadows its extensions.
	assert.Equal(t, "Arial", c.Get("ArialNarrow").Name)
}

func TestCollectionFonts(t *testing.T) {
	fonts := []Font{
		{Name: "A", LineHeight: 1.0},
		{Name: "B", LineHeight: 1.1},
	}
	c := NewCollection(fonts...)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, fonts, c.Fonts())
}

func TestDefaultCollection(t *testing.T) {
	c := DefaultCollection()
	assert.Equal(t, 14, c.Len())

	f := c.Get("Helvetica")
	assert.Equal(t, "Helvetica", f.Name)
	assert.Equal(t, 1.15, f.LineHeight)

	// Shared instance, built once.
	assert.True(t, c == DefaultCollection())
}
