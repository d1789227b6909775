// Package buttify implements the word mutation behind buttsbot.
//
// A word is split into syllable-like pieces by a simple vowel/consonant heuristic,
// and one piece chosen at random is replaced with "butt".
// The heuristic approximates English syllables for common words and makes no attempt to be linguistically correct.
//
// Everything in this package is pure and synchronous: it performs no I/O and holds no shared mutable state,
// so the functions may be called from any number of goroutines.
package buttify
