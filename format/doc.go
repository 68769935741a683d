// Package format names the textual encodings of a linter configuration.
package format
