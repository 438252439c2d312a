package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,."

	// similarChars are characters easily confused with one another when read.
	similarChars = "0Oo1lI"
)

// CharacterClass is one of the fixed groups of selectable characters.
type CharacterClass uint8

const (
	Lowercase CharacterClass = 1 << iota
	Uppercase
	Digit
	Symbol
)

// AllClasses lists every class in canonical order.
var AllClasses = [...]CharacterClass{Lowercase, Uppercase, Digit, Symbol}

// Chars returns the literal character set of the class.
func (c CharacterClass) Chars() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digit:
		return numberChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// ClassSet is a set of character classes.
type ClassSet uint8

// Classes builds a ClassSet from the given classes.
func Classes(cs ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range cs {
		s |= ClassSet(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c CharacterClass) bool {
	return s&ClassSet(c) != 0
}

// Len returns the number of classes in the set.
func (s ClassSet) Len() int {
	n := 0
	for _, c := range AllClasses {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Members returns the classes in the set in canonical order.
func (s ClassSet) Members() []CharacterClass {
	members := make([]CharacterClass, 0, len(AllClasses))
	for _, c := range AllClasses {
		if s.Has(c) {
			members = append(members, c)
		}
	}
	return members
}

// GenerationConfig describes what to generate. It is not validated on construction;
// consumers handle empty alphabets and infeasible requirements themselves.
type GenerationConfig struct {
	Length           int
	Classes          ClassSet
	ExcludeSimilar   bool
	RequireEachClass bool
}

// Alphabet is the ordered sequence of characters eligible for sampling.
// Characters shared between classes are not deduplicated.
type Alphabet string

// Size returns the number of characters in the alphabet.
func (a Alphabet) Size() int {
	return len(a)
}

// BuildCharset returns the effective alphabet for cfg: the selected classes in
// canonical order, with similar-looking characters removed if requested.
func BuildCharset(cfg GenerationConfig) Alphabet {
	var sb strings.Builder
	for _, c := range cfg.Classes.Members() {
		sb.WriteString(ClassCharset(c, cfg.ExcludeSimilar))
	}
	return Alphabet(sb.String())
}

// ClassCharset returns the characters of a single class, filtered the same way
// BuildCharset filters the whole alphabet.
func ClassCharset(c CharacterClass, excludeSimilar bool) string {
	chars := c.Chars()
	if !excludeSimilar {
		return chars
	}
	return removeSimilar(chars)
}

func removeSimilar(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(similarChars, s[i]) < 0 {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
