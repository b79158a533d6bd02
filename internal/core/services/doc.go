// Package services implements the driving ports on top of the markup
// parser, the normaliser registry, the post-processor pipeline and the
// driven stores.
//
//   - MarkupService: parse, render, strip, excerpt and attribute queries
//   - DocumentService: loading, indexing and reading stored documents
//   - SettingsService: typed, validated access to the config store
package services
