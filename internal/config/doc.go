// Package config provides configuration structures and utilities for
// passcheck. It defines the options shared by the CLI commands and the web
// server, YAML config file loading, and wordlist file parsing.
package config
