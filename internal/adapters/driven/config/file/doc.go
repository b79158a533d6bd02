// Package file stores hyperless settings as a TOML document on disk.
//
// Keys are dotted ("excerpt.max_length") and map onto TOML tables.
// Writes go to a temporary file that is renamed over config.toml.
package file
