// Package config provides configuration management for the verification
// service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections owned by their packages:
//   - Server: HTTP server settings (port, API key, preview row cap)
//   - Database: MySQL/sqlite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
