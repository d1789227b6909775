package buttify

// Syllables splits word into syllable-like substrings whose concatenation is word.
//
// A syllable ends where a vowel is followed by a consonant, unless fewer than two bytes of the word remain,
// in which case the rest of the word is folded into the last syllable.
// Simple cases come out fine, such as "banana" -> "ba", "na", "na" and "moon" -> "moon".
// An empty word yields a single empty syllable.
func Syllables(word string) []string {
	var syllables []string
	bound := 0
	wasVowel := false

	for i, r := range word {
		if wasVowel && !IsVowel(r) {
			if len(word)-i < 2 {
				break
			}
			syllables = append(syllables, word[bound:i])
			bound = i
			wasVowel = false
			continue
		}
		wasVowel = IsVowel(r)
	}

	return append(syllables, word[bound:])
}

// IsVowel reports whether r is one of a, e, i, o, u in either case.
// 'y' is treated as a consonant.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}
