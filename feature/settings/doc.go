// Package settings manages the column mapping profile that drives every
// comparison.
//
// A mapping profile names the ordered source and target columns to compare,
// how many leading pairs form the row key, and the default duplicate policy.
// The active profile is stored in the database and cached with a short TTL
// so the compare endpoint does not hit the database on every request.
package settings
