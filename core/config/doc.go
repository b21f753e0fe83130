// Package config provides configuration management for the Furnidata Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared on the partial config structs through
// `default` tags and registered by reflection, so every key is reachable through
// AutomaticEnv (SECTION_KEY, e.g. FETCH_URL or DATABASE_EMULATOR).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Fetch: default furnidata URL, user agent and request timeout
//   - Storage: S3/MinIO credentials, bucket and default furnidata object
//   - Log: logging level and format
//   - Database: emulator database connection and emulator type
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Fetch.URL)
package config
