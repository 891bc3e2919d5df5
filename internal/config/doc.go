// Package config provides the run configuration for resparse: where the
// document is read from, where the report goes, which report format is
// used and how the document is scanned.
//
// Values come from three layers, lowest priority first: the defaults of
// NewConfig, an optional configuration file (YAML, or INI when the file name
// ends in .ini), and explicitly set command line flags.
package config
