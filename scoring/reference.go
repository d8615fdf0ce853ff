package scoring

import (
	"math"
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var wordDistance = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// ReferenceAccuracy scores recognized against reference as round(100*(1-WER)),
// floored at 0. ok is false when the reference has no words.
func ReferenceAccuracy(reference, recognized string) (accuracy Score, ok bool) {
	ref, hyp := encodeWords(words(reference), words(recognized))
	if len(ref) == 0 {
		return 0, false
	}

	distance := levenshtein.DistanceForStrings(ref, hyp, wordDistance)
	wer := float64(distance) / float64(len(ref))

	return Score(math.Round(100 * (1 - wer))).clamp(), true
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// encodeWords maps every distinct word to its own rune so the rune based
// distance works on whole words.
func encodeWords(ref, hyp []string) ([]rune, []rune) {
	dict := map[string]rune{}
	encode := func(list []string) []rune {
		out := make([]rune, 0, len(list))
		for _, w := range list {
			r, ok := dict[w]
			if !ok {
				r = unicode.MaxRune + 1 + rune(len(dict))
				dict[w] = r
			}
			out = append(out, r)
		}
		return out
	}

	return encode(ref), encode(hyp)
}
