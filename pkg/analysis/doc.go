// Package analysis turns a user's normalized content history into scored
// signals. It runs independent keyword and pattern passes over the item
// text (demographics, interests, personality), computes activity
// statistics, and reduces the citation evidence to best-guess
// demographic conclusions.
//
// All heuristics are keyword tables and regular expressions; the results
// are signals, not verified facts.
package analysis
