package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_GenerateCode(t *testing.T) {
	gen := NewCodeGenerator()

	for range 1000 {
		code := gen.GenerateCode().String()

		assert.Len(t, code, CodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(AllowedChars, c), "unexpected char %q in %s", c, code)
		}
	}
}

func TestCodeGenerator_Deterministic(t *testing.T) {
	// Подменённый источник случайности выдаёт индексы по порядку
	next := 0
	gen := &CodeGenerator{intN: func(n int) int {
		i := next % n
		next++
		return i
	}}

	assert.Equal(t, "ABCDEF", gen.GenerateCode().String())
	assert.Equal(t, "GHIJKL", gen.GenerateCode().String())
}

func TestCodeGenerator_CoversAlphabet(t *testing.T) {
	gen := NewCodeGenerator()
	seen := make(map[rune]bool)

	for range 5000 {
		for _, c := range gen.GenerateCode().String() {
			seen[c] = true
		}
	}

	assert.Len(t, seen, len(AllowedChars))
}

func TestCodeGenerator_Concurrent(t *testing.T) {
	gen := NewCodeGenerator()
	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Len(t, gen.GenerateCode().String(), CodeLength)
			}
		}()
	}
	wg.Wait()
}
