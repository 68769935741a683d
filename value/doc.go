// Package value is the JSON data model shared by the converters and the
// installers.
//
// A value is one of nil, bool, float64, string, []any or Object. Object
// keeps its members in insertion order with unique keys.
package value
