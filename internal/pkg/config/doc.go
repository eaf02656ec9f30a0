// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from YAML files and environment variables, validated with
// struct tags and a few cross-field checks, and then handed to the logger,
// the database layer and the key generator.
package config
