// Package config provides configuration management for civic-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: driver and connection details (mysql, postgres, sqlite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Sync: record source, jurisdiction catalog, cache size and metrics output
//
// Every key maps to an environment variable, e.g. sync.data_dir -> SYNC_DATA_DIR.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.DataDir)
package config
