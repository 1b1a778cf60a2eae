// Package domain models Fatality Analysis Reporting System (FARS) accident data.
//
// # Data Source
//
// FARS is the National Highway Traffic Safety Administration's (NHTSA)
// census of fatal motor-vehicle traffic crashes on US public roads,
// published yearly since 1975. Each reporting year ships as a set of CSV
// extracts; this toolkit reads the accident-level extract, one row per
// fatal crash, distributed bzip2-compressed as
//
//	accident_<year>.csv.bz2  →  e.g. accident_2013.csv.bz2
//
// with the year as an unpadded decimal integer.
//
// # FARS Data Conventions
//
// State numbers ("STATE" column):
//
//	GSA geographic location codes, not postal abbreviations:
//	1 = Alabama, 6 = California, 48 = Texas, 56 = Wyoming.
//	Codes are validated against the data actually present in a year's
//	extract, never against a fixed roster; territories come and go.
//
// Month ("MONTH" column):
//
//	Calendar month of the crash as an integer, 1–12. Values are passed
//	through unvalidated; a malformed extract surfaces as odd summary rows
//	rather than a load failure.
//
// Coordinates ("LONGITUD" and "LATITUDE" columns):
//
//	Decimal degrees. Unknown positions are encoded as out-of-range
//	sentinels rather than empty cells:
//
//	  LONGITUD > 900  →  not reported (e.g. 999.9999)
//	  LATITUDE > 90   →  not reported (e.g. 99.9999)
//
//	Sentinel cells are dropped per axis by [NewCoord]; a point is drawn
//	on a map only when both axes survive.
//
// Missing values:
//
//	Empty cells and the literal "NA" both mean missing, matching the
//	conventions of the tooling the extracts are prepared with.
//
// # Value Construction
//
// Years and state numbers arriving as text (CLI flags, file names) are
// converted through [ParseYear] and [ParseStateCode], which reject
// non-integer input with a [ConversionError] instead of letting a mangled
// value propagate into file names or filters.
package domain
