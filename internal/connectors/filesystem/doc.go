// Package filesystem loads documents from local files and watches files
// and directories for changes with fsnotify.
package filesystem
