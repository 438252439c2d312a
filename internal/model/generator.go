package model

// GenerateRequest represents a password generation or strength preview request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Lowercase      *bool `json:"lowercase"`
	Uppercase      *bool `json:"uppercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar *bool `json:"exclude_similar"`
	RequireEach    *bool `json:"require_each"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthResponse describes the estimated strength of a configuration.
type StrengthResponse struct {
	Level       int     `json:"level"`
	Label       string  `json:"label"`
	Percent     int     `json:"percent"`
	EntropyBits float64 `json:"entropy_bits"`
	BitsPerChar float64 `json:"bits_per_char"`
}
