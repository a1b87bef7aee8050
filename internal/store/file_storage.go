package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	opSet = "set"
	opDel = "del"
)

// logEntry одна строка журнала операций
type logEntry struct {
	Op        string     `json:"op"`
	Key       string     `json:"key"`
	Value     string     `json:"value,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// FileStorage управляет журналом операций в файле (JSON lines)
type FileStorage struct {
	filePath string
	mu       sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load читает все операции из файла в порядке записи
func (fs *FileStorage) Load() ([]logEntry, error) {
	file, err := os.Open(fs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return []logEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Decoder не ограничивает длину строки, в отличие от bufio.Scanner
	var entries []logEntry
	decoder := json.NewDecoder(bufio.NewReader(file))
	for {
		var e logEntry
		err := decoder.Decode(&e)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Append дописывает одну операцию в конец файла
func (fs *FileStorage) Append(e logEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
