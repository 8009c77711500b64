// Package domain models the Yale Bright Star Catalogue (BSC5) and the
// simplified starfile derived from it.
//
// # Data Source
//
// The catalog is the fifth revised edition of the Bright Star Catalogue,
// distributed as bsc5.dat: one fixed-width ASCII record per line, 197 columns
// wide. Trailing blanks are often stripped, so every line is right-padded to
// [RecordWidth] before columns are sliced. Blank columns mean "no value".
//
// Column conventions:
//
//	0:4     Harvard Revised number (HR), always present.
//	14:25   Durchmusterung designation, e.g. "BD+44 4550": a five character
//	        zone followed by the star number within the zone.
//	60:75   B1900 position, 75:90 J2000 position. Each is seven sub-fields:
//	        RA hours, minutes, seconds (with one decimal), declination sign,
//	        degrees, arcminutes, arcseconds. Non-stellar entries (novae,
//	        clusters, objects removed from the catalog) leave them blank.
//	102:107 Visual magnitude, 109:114 B-V color index.
//	160     "D" marks a dynamical parallax, anything else trigonometric.
//
// # Color
//
// Stellar color is approximated from the B-V index through an effective
// temperature, T = 7000 / (B-V + 0.56) Kelvin, clamped to [1000, 40000] and
// rounded to the nearest 100 K. The temperature is then looked up in Mitchell
// Charity's blackbody color table (TempToColor.dat), using its 2 degree CIE
// 1931 color matching rows:
//
//	  5000 K   2deg  0.3451 0.3516  1.0000 0.7992 0.6045  255 228 205  #ffe4cd
//
// The three space padded integers before the hex color are the 8-bit RGB
// triple. Lines beginning with "#" are comments.
//
// # Starfile
//
// The starfile carries one line per renderable star, joining the J2000
// position, the RGB triple and the visual magnitude with "::::":
//
//	0:8:23.3 +29:5:26::::(177, 204, 255)::::2.06
//
// A body is written only when all three are known; everything else is
// counted and reported as skipped.
package domain
