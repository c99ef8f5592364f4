// Package ui renders classification results in terminal, text, JSON and
// YAML formats.
//
// Terminal output colors each entry by its group using a fixed palette of
// adaptive colors. Unclassified entries are printed unstyled. Text output
// carries the same columns without any styling, and is chosen
// automatically when stdout is not a terminal or NO_COLOR is set.
package ui
