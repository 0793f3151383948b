package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Record is the output for one PDF file. Field order is the JSON key order.
type Record struct {
	Hashtags  []string `json:"hashtags"`
	Summary   string   `json:"summary"`
	WordCount int      `json:"word_count"`
	FileName  string   `json:"file_name"`
}

// WriteJSON encodes records as an indented JSON array. Non-ASCII text and HTML
// characters are written as is.
func WriteJSON(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}

// WriteFile writes records to path, replacing any previous content.
func WriteFile(path string, records []Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if err := WriteJSON(f, records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
