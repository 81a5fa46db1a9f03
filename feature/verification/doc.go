// Package verification exposes the comparison workflow: accept two uploaded
// extracts, run the reconciliation engine against the active mapping
// profile, export a highlighted result workbook to object storage, and
// record the run in history.
//
// The package owns no comparison logic itself; all classification comes
// from core/reconcile. What lives here is the glue the engine deliberately
// stays free of: upload handling, report rendering, and persistence of
// completed runs.
package verification
