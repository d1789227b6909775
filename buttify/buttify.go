package buttify

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Token is the text that replaces a syllable.
const Token = "butt"

// Rand is a source of uniformly distributed values in [0.0, 1.0).
// *rand.Rand satisfies this interface, but is not safe for concurrent use.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

// DefaultRand returns the process-wide source, which is safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

// FixedRand is a Rand that always returns its own value.
type FixedRand float64

// Float64 returns f.
func (f FixedRand) Float64() float64 {
	return float64(f)
}

// Option defines a function signature for Buttifier's functional options.
type Option func(*Buttifier)

// WithRand sets the source used to pick syllables and words.
func WithRand(r Rand) Option {
	return func(b *Buttifier) {
		b.rand = r
	}
}

// Buttifier replaces a random syllable of a random word with Token.
// With the default source, a Buttifier is safe for concurrent use.
type Buttifier struct {
	rand Rand
}

// New creates a new Buttifier with the given options.
func New(options ...Option) *Buttifier {
	b := &Buttifier{
		rand: DefaultRand(),
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

var defaultButtifier = New()

// Word buttifies word with a Buttifier using the process-wide random source.
func Word(word string) (string, bool) {
	return defaultButtifier.Word(word)
}

// Sentence buttifies sentence with a Buttifier using the process-wide random source.
func Sentence(sentence string) (string, bool) {
	return defaultButtifier.Sentence(sentence)
}

// Word replaces one randomly chosen syllable of word with Token.
// The second return value is false when word has no syllables.
func (b *Buttifier) Word(word string) (string, bool) {
	syllables := Syllables(word)
	if len(syllables) == 0 {
		return "", false
	}

	syllables[b.index(len(syllables))] = Token

	return strings.Join(syllables, ""), true
}

// Sentence buttifies one randomly chosen word of sentence.
// Words are separated by runs of ASCII whitespace and rejoined with single spaces.
// The second return value is false when sentence has no words or the chosen word cannot be buttified.
func (b *Buttifier) Sentence(sentence string) (string, bool) {
	words := strings.FieldsFunc(sentence, isASCIISpace)
	if len(words) == 0 {
		return "", false
	}

	i := b.index(len(words))
	buttified, ok := b.Word(words[i])
	if !ok {
		return "", false
	}
	words[i] = buttified

	return strings.Join(words, " "), true
}

// index maps a draw from the random source onto [0, n).
func (b *Buttifier) index(n int) int {
	i := int(math.Floor(b.rand.Float64() * float64(n)))
	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}

// IsDegenerate reports whether s collapsed entirely into Token and carries nothing worth sending.
func IsDegenerate(s string) bool {
	return s == Token
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}
