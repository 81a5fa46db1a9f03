// Package history persists completed verification runs.
//
// Each run stores the uploaded filenames, the summary counts, and the
// object name of the exported result workbook. Deleting a history entry
// also removes its workbook from object storage.
package history
