// Package config provides configuration management for the IPO tracker.
//
// It loads an optional .env file with godotenv, registers defaults from the
// `default` struct tags and maps environment variables onto nested keys with Viper.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, sync trigger throttle, environment
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: MinIO credentials and the snapshot bucket
//   - Log: level, format and optional rotating file
//   - IPO: upstream sources (finnhub, hkex) and sync settings
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. IPO_FINNHUB_API_KEY sets ipo.finnhub.api_key.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
