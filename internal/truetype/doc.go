/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype decodes the metadata tables of truetype/opentype font programs.
// Specifically intended for deriving font family names and vertical metrics from
// fonts embedded in PDF files; glyph outlines and horizontal metrics are not parsed.
package truetype
