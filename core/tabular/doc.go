// Package tabular reads uploaded extracts (XLSX, CSV, and CSV-formatted
// text files) into reconcile.Dataset values.
//
// The first row of every file is the header and is never treated as a data
// row. Header names must be unique and non-blank, because downstream column
// mappings address cells by name. Data rows may be ragged; cells beyond the
// header width are dropped and short rows simply leave the remaining
// columns absent.
//
// All cell values are ingested as strings. The reconciliation engine's
// normalizer owns every further interpretation step, so the readers never
// guess at types.
package tabular
