package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// PreviewRows is the maximum number of result rows returned inline in
	// a compare response. Full results always go into the exported report.
	PreviewRows int `mapstructure:"preview_rows" default:"100"`
}

// PreviewLimit returns the configured preview row cap, falling back to the
// default when unset or invalid.
func (c Config) PreviewLimit() int {
	if c.PreviewRows <= 0 {
		return 100
	}
	return c.PreviewRows
}
