// Package config provides YAML schema definitions, parsing and validation
// for the modelgen configuration file.
//
// The config file is optional; when absent the generator scans "./..."
// with defaults. The schema:
//
//	version: "1"
//	packages:
//	  - ./internal/...
//	  - example.com/app/api
//	log:
//	  level: info
package config
