// Package server holds the HTTP server configuration.
//
// The main application entry point handles server startup; this package only
// defines the configuration structure: the HTTP port, the API key guarding
// every endpoint, and the preview row cap applied to inline compare
// responses.
package server
