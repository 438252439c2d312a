package crypto

// Generator produces random strings from a GenerationConfig.
type Generator struct {
	rnd *Random
}

// NewGenerator creates a Generator drawing from rnd.
func NewGenerator(rnd *Random) *Generator {
	return &Generator{rnd: rnd}
}

// Generate creates a random password for cfg using crypto/rand.
func Generate(cfg GenerationConfig) (string, error) {
	return NewGenerator(DefaultRandom()).Generate(cfg)
}

// Generate creates a random string of cfg.Length characters over the alphabet
// derived from cfg.
//
// An empty alphabet or non-positive length yields "" and no error. Callers
// must check for it. When RequireEachClass is set but more classes are selected
// than there are positions, the requirement is dropped and every position is
// drawn independently from the full alphabet.
func (g *Generator) Generate(cfg GenerationConfig) (string, error) {
	alphabet := BuildCharset(cfg)
	if alphabet.Size() == 0 || cfg.Length <= 0 {
		return "", nil
	}

	if !cfg.RequireEachClass || cfg.Classes.Len() > cfg.Length {
		return g.generateIndependent(alphabet, cfg.Length)
	}

	result := make([]byte, 0, cfg.Length)

	// One guaranteed character per selected class. A class whose characters
	// were all filtered out contributes nothing.
	for _, c := range cfg.Classes.Members() {
		chars := ClassCharset(c, cfg.ExcludeSimilar)
		if len(chars) == 0 {
			continue
		}
		ch, err := g.randChar(chars)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for len(result) < cfg.Length {
		ch, err := g.randChar(string(alphabet))
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func (g *Generator) generateIndependent(alphabet Alphabet, length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		ch, err := g.randChar(string(alphabet))
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	idx, err := g.rnd.UniformInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[idx], nil
}

// shuffle performs a Fisher-Yates shuffle in place.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.rnd.UniformInt(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
