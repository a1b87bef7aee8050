package service

import (
	"math/rand/v2"

	"github.com/avc-dev/shortlinks/internal/model"
)

const (
	CodeLength   = 6
	AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Generator генерирует короткие коды
type Generator interface {
	GenerateCode() model.Code
}

// CodeGenerator выдаёт равномерно случайные коды; уникальность не гарантирует.
// Безопасен для конкурентного использования.
type CodeGenerator struct {
	intN func(n int) int
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		intN: rand.IntN,
	}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	return model.Code(g.generateRandomString())
}

// generateRandomString генерирует случайную строку заданной длины
func (g *CodeGenerator) generateRandomString() string {
	result := make([]byte, CodeLength)

	for i := range result {
		result[i] = AllowedChars[g.intN(len(AllowedChars))]
	}

	return string(result)
}
