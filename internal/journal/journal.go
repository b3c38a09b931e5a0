// Package journal records and replays lists of state messages. A journal is
// a list of dictionaries, each holding a "kind" and the variant's payload,
// stored as bencode or JSON.
package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/prxssh/mutator/internal/bencode"
	"github.com/prxssh/mutator/internal/state"
)

type Format string

const (
	FormatBencode Format = "bencode"
	FormatJSON    Format = "json"
)

var (
	ErrUnknownKind   = errors.New("unknown message kind")
	ErrUnknownFormat = errors.New("unknown format")
	ErrTrailingData  = errors.New("unexpected data after the message list")
)

// ParseFormat accepts "bencode" or "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatBencode, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("journal: %w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks JSON for ".json" files and bencode for anything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatBencode
}

func Encode(w io.Writer, format Format, msgs []state.Message) error {
	entries := make([]any, 0, len(msgs))
	for i, msg := range msgs {
		entry, err := toEntry(msg)
		if err != nil {
			return fmt.Errorf("journal: entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	switch format {
	case FormatBencode:
		return bencode.NewEncoder(w).Encode(entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("journal: %w: %q", ErrUnknownFormat, format)
	}
}

func Decode(r io.Reader, format Format) ([]state.Message, error) {
	var raw any

	switch format {
	case FormatBencode:
		dec := bencode.NewDecoder(r)
		v, err := dec.Decode()
		if err != nil {
			return nil, fmt.Errorf("journal: decode bencode: %w", err)
		}
		if err := dec.Done(); err != nil {
			return nil, fmt.Errorf("journal: decode bencode: %w", err)
		}
		raw = v
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("journal: decode json: %w", err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("journal: decode json: %w", ErrTrailingData)
		}
	default:
		return nil, fmt.Errorf("journal: %w: %q", ErrUnknownFormat, format)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("journal: expected a list of messages, got %T", raw)
	}

	msgs := make([]state.Message, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("journal: entry %d: expected a dictionary, got %T", i, item)
		}

		msg, err := fromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("journal: entry %d: %w", i, err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

// ReadFile decodes the journal at path, choosing the format from its extension.
func ReadFile(path string) ([]state.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f), FormatFromPath(path))
}

// WriteFile encodes msgs to path, choosing the format from its extension.
func WriteFile(path string, msgs []state.Message) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, FormatFromPath(path), msgs); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
