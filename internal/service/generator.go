package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// GeneratorService handles password generation requests from the HTTP API.
type GeneratorService struct {
	generator     *crypto.Generator
	hasher        *crypto.Hasher
	defaultLength int
	maxLength     int
}

// NewGeneratorService creates a new GeneratorService. Requests without a
// length get defaultLength; longer than maxLength are rejected.
func NewGeneratorService(gen *crypto.Generator, hasher *crypto.Hasher, defaultLength, maxLength int) *GeneratorService {
	return &GeneratorService{generator: gen, hasher: hasher, defaultLength: defaultLength, maxLength: maxLength}
}

// Generate produces the passwords described by req. maxCount caps the batch
// size; zero or less leaves only the generator's own ceiling.
func (s *GeneratorService) Generate(req model.GenerateRequest, maxCount int) (model.GenerateResponse, error) {
	cfg := crypto.Config{
		Length:         req.Length,
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Digits:         boolOrDefault(req.Digits, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: req.ExcludeSimilar,
	}
	if cfg.Length == 0 {
		cfg.Length = s.defaultLength
	}
	if s.maxLength > 0 && cfg.Length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", crypto.ErrLengthTooLong, s.maxLength)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if maxCount > 0 && count > maxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", crypto.ErrCountTooLarge, maxCount)
	}

	passwords, err := s.generator.GenerateMany(cfg, count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Passwords: make([]model.GeneratedPassword, len(passwords)),
		Length:    cfg.Length,
	}
	for i, pw := range passwords {
		resp.Passwords[i].Password = pw
	}

	if req.Hash {
		hashes, err := s.hasher.HashAll(passwords)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing passwords: %w", err)
		}
		for i, h := range hashes {
			resp.Passwords[i].Hash = h
		}
	}

	return resp, nil
}

// IsValidationError reports whether err was caused by the request rather than the server.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidConfig) ||
		errors.Is(err, crypto.ErrEmptyPool) ||
		errors.Is(err, crypto.ErrInvalidCount) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrCountTooLarge)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
