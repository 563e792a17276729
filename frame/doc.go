// Package frame provides an in-memory columnar table for survey-style
// profile data.
//
// Columns carry explicit missing-value masks (Roaring bitmaps) instead of
// sentinel values, so downstream computations branch on missingness
// explicitly. Derived columns are appended to a Frame, never removed.
package frame
