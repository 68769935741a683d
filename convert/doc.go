// Package convert converts linter configurations between JSON text, YAML
// text and module-export text.
//
// Each of the six directed conversions is available as a function
// returning an error. [Convert] wraps them for speculative use: it never
// fails and returns its input unchanged when a conversion is not
// possible, for example when a module exports a value which cannot be
// resolved statically.
//
// Comments survive conversions between YAML and module-export text. JSON
// carries no comments.
package convert
