package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// SimilarChars are filtered out of the filler pool when ExcludeSimilar is set.
	SimilarChars = "il1Lo0O"

	MinLength     = 4
	DefaultLength = 12

	// MaxLength and MaxCount bound a single call so that oversized input
	// fails with an error instead of an allocation panic.
	MaxLength = 4096
	MaxCount  = 100000
)

var (
	ErrInvalidConfig = errors.New("password length must be at least 4 characters")
	ErrEmptyPool     = errors.New("character pool is empty")
	ErrInvalidCount  = errors.New("password count must not be negative")
	ErrLengthTooLong = errors.New("password length exceeds the allowed maximum")
	ErrCountTooLarge = errors.New("password count exceeds the allowed maximum")
)

// CharacterClass is a category of characters a password can be required to contain.
type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digit
	Symbol
)

// Chars returns the full, unfiltered character set of the class.
func (c CharacterClass) Chars() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digit:
		return digitChars
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
	return fmt.Sprintf("CharacterClass(%d)", int(c))
}

// Config configures a single password generation. Lowercase letters are
// always included.
type Config struct {
	Length         int
	Uppercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultConfig returns 12 characters with every class enabled.
func DefaultConfig() Config {
	return Config{
		Length:    DefaultLength,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Validate reports ErrInvalidConfig when the length is below MinLength and
// ErrLengthTooLong when it is above MaxLength.
func (c Config) Validate() error {
	if c.Length < MinLength {
		return ErrInvalidConfig
	}
	if c.Length > MaxLength {
		return fmt.Errorf("%w (%d)", ErrLengthTooLong, MaxLength)
	}
	return nil
}

// Classes returns the classes that get a guaranteed seed character, in draw
// order: the enabled optional classes followed by Lowercase.
func (c Config) Classes() []CharacterClass {
	classes := make([]CharacterClass, 0, 4)
	if c.Uppercase {
		classes = append(classes, Uppercase)
	}
	if c.Digits {
		classes = append(classes, Digit)
	}
	if c.Symbols {
		classes = append(classes, Symbol)
	}
	return append(classes, Lowercase)
}

// Pool returns the characters filler positions are drawn from.
func (c Config) Pool() string {
	var sb strings.Builder
	for _, class := range []CharacterClass{Lowercase, Uppercase, Digit, Symbol} {
		if class != Lowercase && !c.enabled(class) {
			continue
		}
		for _, ch := range class.Chars() {
			if c.ExcludeSimilar && strings.ContainsRune(SimilarChars, ch) {
				continue
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func (c Config) enabled(class CharacterClass) bool {
	switch class {
	case Uppercase:
		return c.Uppercase
	case Digit:
		return c.Digits
	case Symbol:
		return c.Symbols
	}
	return true
}

// Generator produces passwords from an owned random source.
type Generator struct {
	src Source
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{src: CryptoSource{}}
}

// NewWithSource returns a Generator that draws from src.
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate creates a password of exactly cfg.Length characters containing at
// least one character of every enabled class.
//
// Seed characters come from the unfiltered class sets, so with
// ExcludeSimilar a seed may still be one of SimilarChars. Only the filler
// pool is filtered.
func (g *Generator) Generate(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	return g.compose(cfg.Length, cfg.Classes(), cfg.Pool())
}

// compose draws one seed per class, fills the rest from pool and shuffles.
func (g *Generator) compose(length int, classes []CharacterClass, pool string) (string, error) {
	fill := length - len(classes)
	if fill > 0 && pool == "" {
		return "", ErrEmptyPool
	}

	result := make([]byte, 0, min(length, MaxLength))
	for _, class := range classes {
		ch, err := g.pick(class.Chars())
		if err != nil {
			return "", fmt.Errorf("drawing %s seed: %w", class, err)
		}
		result = append(result, ch)
	}

	for i := 0; i < fill; i++ {
		ch, err := g.pick(pool)
		if err != nil {
			return "", fmt.Errorf("drawing filler: %w", err)
		}
		result = append(result, ch)
	}

	if err := g.shuffle(result); err != nil {
		return "", fmt.Errorf("shuffling password: %w", err)
	}

	return string(result), nil
}

// GenerateMany returns count independent passwords. A count of zero yields
// an empty slice.
func (g *Generator) GenerateMany(cfg Config, count int) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrInvalidCount
	}
	if count > MaxCount {
		return nil, fmt.Errorf("%w (%d)", ErrCountTooLarge, MaxCount)
	}

	passwords := make([]string, 0, min(count, 64))
	for i := 0; i < count; i++ {
		pw, err := g.Generate(cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func (g *Generator) pick(charset string) (byte, error) {
	n, err := g.src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
