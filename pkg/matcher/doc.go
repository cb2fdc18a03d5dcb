// Package matcher extracts typed mentions from free text.
//
// Each enabled pattern is compiled once and run over the whole text. When a
// regex defines capture groups the first group is the extracted value,
// otherwise the whole match is. Empty values are dropped.
//
// Results are ordered by match position, rightmost first, so a chooser
// showing a short list puts the most recent output on top. Identical
// (type, value) pairs collapse to the rightmost occurrence. Mentions from
// different patterns at the same position are all kept and appear in
// configuration order.
//
// A pattern whose regex does not compile is skipped; scanning continues with
// the remaining patterns.
package matcher
