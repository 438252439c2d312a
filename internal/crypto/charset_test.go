package crypto

import (
	"strings"
	"testing"
)

func TestBuildCharset(t *testing.T) {
	tests := []struct {
		name string
		cfg  GenerationConfig
		want Alphabet
	}{
		{
			name: "no classes",
			cfg:  GenerationConfig{Length: 16},
			want: "",
		},
		{
			name: "lowercase only",
			cfg:  GenerationConfig{Classes: Classes(Lowercase)},
			want: lowercaseChars,
		},
		{
			name: "canonical order regardless of argument order",
			cfg:  GenerationConfig{Classes: Classes(Symbol, Digit, Uppercase, Lowercase)},
			want: lowercaseChars + uppercaseChars + numberChars + symbolChars,
		},
		{
			name: "digits without similar",
			cfg:  GenerationConfig{Classes: Classes(Digit), ExcludeSimilar: true},
			want: "23456789",
		},
		{
			name: "symbols unaffected by exclusion",
			cfg:  GenerationConfig{Classes: Classes(Symbol), ExcludeSimilar: true},
			want: symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildCharset(tt.cfg); got != tt.want {
				t.Errorf("BuildCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCharsetSizes(t *testing.T) {
	all := Classes(Lowercase, Uppercase, Digit, Symbol)

	if got := BuildCharset(GenerationConfig{Classes: all}).Size(); got != 84 {
		t.Errorf("all classes size = %d, want 84", got)
	}
	if got := BuildCharset(GenerationConfig{Classes: all, ExcludeSimilar: true}).Size(); got != 78 {
		t.Errorf("all classes without similar size = %d, want 78", got)
	}
}

func TestBuildCharsetExcludeSimilar(t *testing.T) {
	cfg := GenerationConfig{
		Classes:        Classes(Lowercase, Uppercase, Digit, Symbol),
		ExcludeSimilar: true,
	}
	alphabet := string(BuildCharset(cfg))

	if strings.ContainsAny(alphabet, similarChars) {
		t.Errorf("alphabet %q contains similar-looking characters", alphabet)
	}
	// Relative order survives filtering.
	if !strings.HasPrefix(alphabet, "abcdefghijkmnpqrstuvwxyz") {
		t.Errorf("alphabet %q lost lowercase ordering", alphabet)
	}
}

func TestClassCharset(t *testing.T) {
	if got := ClassCharset(Uppercase, true); strings.ContainsAny(got, "OI") || len(got) != 24 {
		t.Errorf("ClassCharset(Uppercase, true) = %q", got)
	}
	if got := ClassCharset(Uppercase, false); got != uppercaseChars {
		t.Errorf("ClassCharset(Uppercase, false) = %q, want %q", got, uppercaseChars)
	}
	if got := ClassCharset(CharacterClass(0), false); got != "" {
		t.Errorf("ClassCharset(unknown) = %q, want empty", got)
	}
}

func TestClassSet(t *testing.T) {
	s := Classes(Digit, Lowercase, Digit)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(Lowercase) || !s.Has(Digit) || s.Has(Uppercase) || s.Has(Symbol) {
		t.Errorf("Has() reports wrong membership for %08b", s)
	}

	members := s.Members()
	if len(members) != 2 || members[0] != Lowercase || members[1] != Digit {
		t.Errorf("Members() = %v, want [lowercase digit]", members)
	}
	if Classes().Len() != 0 {
		t.Error("empty set should have no members")
	}
}
