package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pooltags/pkg/models"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Writer persists generated tags to disk, either as one indented JSON array
// or as JSON lines.
type Writer struct {
	path   string
	format string
}

func NewWriter(path, format string) *Writer {
	return &Writer{path: path, format: format}
}

// Write stores the tags, creating parent directories as needed.
func (w *Writer) Write(tags []models.ContractTag) error {
	dir := filepath.Dir(w.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if w.format == FormatJSONL {
		return w.writeLines(tags)
	}
	return w.writeArray(tags)
}

func (w *Writer) writeArray(tags []models.ContractTag) error {
	data, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	if err := os.WriteFile(w.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

func (w *Writer) writeLines(tags []models.ContractTag) error {
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, tag := range tags {
		line, err := json.Marshal(tag)
		if err != nil {
			return fmt.Errorf("marshal tag: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write tag: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
