package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

const (
	DefaultLength = 16
	MinLength     = 4
	MaxLength     = 128
)

var (
	ErrLengthTooShort = fmt.Errorf("password length must be at least %d", MinLength)
	ErrLengthTooLong  = errors.New("password length exceeds the configured maximum")
	ErrEmptyAlphabet  = errors.New("no usable characters for the selected options")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen       *crypto.Generator
	maxLength int
}

// NewGeneratorService creates a GeneratorService drawing from gen.
// A maxLength below MinLength would reject every request, so it selects MaxLength instead.
func NewGeneratorService(gen *crypto.Generator, maxLength int) *GeneratorService {
	if maxLength < MinLength {
		if maxLength > 0 {
			slog.Warn("max length below minimum, using default", "max_length", maxLength, "min_length", MinLength, "default", MaxLength)
		}
		maxLength = MaxLength
	}
	return &GeneratorService{gen: gen, maxLength: maxLength}
}

// Generate produces a password and its strength estimate for the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg, err := s.configFor(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	if password == "" {
		return model.GenerateResponse{}, ErrEmptyAlphabet
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strengthResponse(crypto.EstimateStrength(cfg)),
	}, nil
}

// Strength estimates the strength of the requested configuration without generating anything.
// An empty selection is not an error here: it rates as very weak with zero entropy.
func (s *GeneratorService) Strength(req model.GenerateRequest) (model.StrengthResponse, error) {
	cfg, err := s.configFor(req)
	if err != nil {
		return model.StrengthResponse{}, err
	}
	return strengthResponse(crypto.EstimateStrength(cfg)), nil
}

// IsValidationError reports whether err was caused by the request itself.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrEmptyAlphabet)
}

func (s *GeneratorService) configFor(req model.GenerateRequest) (crypto.GenerationConfig, error) {
	length := req.Length
	if length == 0 {
		length = min(DefaultLength, s.maxLength)
	}
	if length < MinLength {
		return crypto.GenerationConfig{}, ErrLengthTooShort
	}
	if length > s.maxLength {
		return crypto.GenerationConfig{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	var classes crypto.ClassSet
	if boolOrDefault(req.Lowercase, true) {
		classes |= crypto.Classes(crypto.Lowercase)
	}
	if boolOrDefault(req.Uppercase, true) {
		classes |= crypto.Classes(crypto.Uppercase)
	}
	if boolOrDefault(req.Numbers, true) {
		classes |= crypto.Classes(crypto.Digit)
	}
	if boolOrDefault(req.Symbols, true) {
		classes |= crypto.Classes(crypto.Symbol)
	}

	cfg := crypto.GenerationConfig{
		Length:           length,
		Classes:          classes,
		ExcludeSimilar:   boolOrDefault(req.ExcludeSimilar, false),
		RequireEachClass: boolOrDefault(req.RequireEach, true),
	}
	return cfg, nil
}

func strengthResponse(t crypto.StrengthTier) model.StrengthResponse {
	return model.StrengthResponse{
		Level:       int(t.Level),
		Label:       t.Label(),
		Percent:     t.Percent,
		EntropyBits: math.Round(t.EntropyBits*10) / 10,
		BitsPerChar: math.Round(t.BitsPerChar*1000) / 1000,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
