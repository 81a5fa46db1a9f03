// Package utils provides small conversion helpers for loosely-typed values
// arriving from HTTP forms and query strings.
package utils
