package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatRegister formats a register as JSON
func (f *Formatter) FormatRegister(reg RegisterDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reg)
}

// FormatResult formats any query result as JSON
func (f *Formatter) FormatResult(result any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// FormatLines writes pre-formatted, newline-terminated output as-is
func (f *Formatter) FormatLines(lines string) error {
	_, err := io.WriteString(f.writer, lines)
	return err
}

// FormatText writes the styled text rendering of a register
func (f *Formatter) FormatText(reg RegisterDTO) error {
	_, err := io.WriteString(f.writer, RenderRegister(reg)+"\n")
	return err
}
