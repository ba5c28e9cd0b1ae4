// Package config provides configuration management for a databoard host
// process.
//
// # Overview
//
// The config package uses Viper to load configuration from YAML files and
// environment variables. It provides a type-safe configuration structure with
// validation, default values, and automatic file creation.
//
// # Configuration File
//
// The configuration is stored at ~/.databoard/config.yaml and is
// automatically created with sensible defaults on first use. The file
// structure mirrors the Go structs defined in this package.
//
// # Environment Variables
//
// All configuration values can be overridden using environment variables
// with the DATABOARD_ prefix. Nested fields are separated by underscores.
//
// Examples:
//   - DATABOARD_LOGGING_LEVEL=debug
//   - DATABOARD_BOARD_AUTOREMAP=false
//   - DATABOARD_DEMO_DEPTH=3
//
// # Usage Example
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/normanking/databoard/internal/config"
//	)
//
//	func main() {
//	    cfg, err := config.Load()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := cfg.EnsureDirectories(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := cfg.Validate(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    log.Printf("root board %q, autoremap=%v", cfg.Board.RootName, cfg.Board.Autoremap)
//	}
//
// # Configuration Sections
//
//   - Board: root board naming, default autoremap setting, preconfigured remapping rules
//   - Logging: log level, output file, and console pretty-printing
//   - Demo: parameters for the sample hierarchy built by the demo command
//
// # Path Expansion
//
// The package automatically expands ~ to the user's home directory in
// all path configurations, making config files portable across systems.
//
// # Validation
//
// The Validate() method checks configuration for common errors:
//   - Valid log level
//   - Non-empty root board name
//   - Non-negative demo depth
//   - No duplicate remapping sources
//
// # Thread Safety
//
// Config instances are not thread-safe. If you need concurrent access,
// wrap the config in a sync.RWMutex or create separate instances.
//
// # Testing
//
// The package includes tests demonstrating all functionality. Run tests with:
//
//	go test ./internal/config/
//
// See example_test.go for usage examples and patterns.
package config
