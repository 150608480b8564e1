package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
)

func newTestApp() *App {
	return &App{
		Config: config.Config{
			Length:    crypto.DefaultLength,
			Count:     1,
			JWTExpiry: time.Hour,
		},
		Generator: crypto.NewWithSource(crypto.NewSeededSource(1)),
		Hasher:    crypto.NewHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}),
	}
}

func run(t *testing.T, app *App, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(context.Background(), app, args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestGenerateSingle(t *testing.T) {
	code, stdout, stderr := run(t, newTestApp())
	require.Equal(t, 0, code, stderr)

	out := lines(stdout)
	require.Len(t, out, 1)
	assert.Len(t, out[0], crypto.DefaultLength)
	assert.Empty(t, stderr)
}

func TestGenerateNumbered(t *testing.T) {
	code, stdout, stderr := run(t, newTestApp(), "-n", "3", "--length", "16", "--no-symbols")
	require.Equal(t, 0, code, stderr)

	out := lines(stdout)
	require.Len(t, out, 3)
	for i, line := range out {
		prefix := []string{"1. ", "2. ", "3. "}[i]
		require.True(t, strings.HasPrefix(line, prefix), line)
		pw := strings.TrimPrefix(line, prefix)
		assert.Len(t, pw, 16)
		assert.False(t, strings.ContainsAny(pw, "!#$%&*+-./:;<=>?@^_~"), pw)
	}
}

func TestGenerateFlags(t *testing.T) {
	code, stdout, _ := run(t, newTestApp(), "-l", "40", "--no-uppercase", "--no-digits", "--no-symbols")
	require.Equal(t, 0, code)

	pw := lines(stdout)[0]
	assert.Len(t, pw, 40)
	for _, ch := range pw {
		assert.True(t, ch >= 'a' && ch <= 'z', "unexpected character %q", ch)
	}
}

func TestGenerateZeroCount(t *testing.T) {
	code, stdout, stderr := run(t, newTestApp(), "-n", "0")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestGenerateLengthTooShort(t *testing.T) {
	code, stdout, stderr := run(t, newTestApp(), "-l", "3", "-n", "5")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: password length must be at least 4 characters\n", stderr)
}

func TestGenerateNegativeCount(t *testing.T) {
	code, stdout, stderr := run(t, newTestApp(), "--number=-1")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, crypto.ErrInvalidCount.Error())
}

func TestGenerateOversizedInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "huge count", args: []string{"-n", "1125899906842624"}, wantErr: crypto.ErrCountTooLarge},
		{name: "huge length", args: []string{"-l", "1125899906842624"}, wantErr: crypto.ErrLengthTooLong},
		{name: "length over ceiling", args: []string{"-l", "4097"}, wantErr: crypto.ErrLengthTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, newTestApp(), tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "Error: "+tt.wantErr.Error()), stderr)
		})
	}
}

func TestGenerateDefaultsFromConfig(t *testing.T) {
	app := newTestApp()
	app.Config.Length = 20
	app.Config.Count = 2

	code, stdout, _ := run(t, app)
	require.Equal(t, 0, code)

	out := lines(stdout)
	require.Len(t, out, 2)
	assert.Len(t, strings.TrimPrefix(out[0], "1. "), 20)
}

func TestGenerateHashAndVerify(t *testing.T) {
	app := newTestApp()
	code, stdout, stderr := run(t, app, "--hash")
	require.Equal(t, 0, code, stderr)

	pw, hash, found := strings.Cut(lines(stdout)[0], "\t")
	require.True(t, found, stdout)

	code, stdout, stderr = run(t, app, "verify", pw, hash)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "ok\n", stdout)

	code, _, stderr = run(t, app, "verify", pw+"x", hash)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, errMismatch.Error())
}

func TestToken(t *testing.T) {
	app := newTestApp()

	code, _, stderr := run(t, app, "token", "--client", "ci")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, errNoSecret.Error())

	app.Config.JWTSecret = "test-secret"
	code, stdout, stderr := run(t, app, "token", "--client", "ci", "--max-count", "7")
	require.Equal(t, 0, code, stderr)

	claims, err := crypto.ValidateToken(strings.TrimSpace(stdout), "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "ci", claims.Subject)
	assert.Equal(t, 7, claims.MaxCount)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "abcd\n", render([]string{"abcd"}, nil))
	assert.Equal(t, "1. abcd\n2. efgh\n", render([]string{"abcd", "efgh"}, nil))
	assert.Equal(t, "abcd\t$h\n", render([]string{"abcd"}, []string{"$h"}))
	assert.Empty(t, render(nil, nil))
}
