package bencode

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected any
		err      bool
	}{
		// --- Integers ---
		{name: "positive integer", input: "i42e", expected: int64(42)},
		{name: "negative integer", input: "i-42e", expected: int64(-42)},
		{name: "zero integer", input: "i0e", expected: int64(0)},
		{
			name:     "integer above int64 range",
			input:    "i18446744073709551615e",
			expected: uint64(math.MaxUint64),
		},
		{name: "integer above uint64 range", input: "i18446744073709551616e", err: true},
		{name: "negative integer below int64 range", input: "i-9223372036854775809e", err: true},
		{name: "invalid integer format", input: "i42ae", err: true},
		{name: "integer not terminated", input: "i42", err: true},

		// --- Strings ---
		{name: "simple string", input: "5:hello", expected: "hello"},
		{name: "empty string", input: "0:", expected: ""},
		{name: "string length too short", input: "5:hell", err: true},
		{name: "negative length", input: "-1:a", err: true},
		{name: "no colon", input: "5hello", err: true},
		{name: "length beyond input", input: "999999999999999:x", err: true},

		// --- Lists ---
		{name: "list of strings", input: "l4:spam4:eggse", expected: []any{"spam", "eggs"}},
		{name: "empty list", input: "le", expected: []any{}},
		{name: "nested list", input: "l4:spaml1:a1:bee", expected: []any{"spam", []any{"a", "b"}}},
		{name: "unterminated list", input: "l4:spami1e", err: true},

		// --- Dictionaries ---
		{
			name:     "message dictionary",
			input:    "d4:kind4:move1xi10e1yi15ee",
			expected: map[string]any{"kind": "move", "x": int64(10), "y": int64(15)},
		},
		{name: "empty dictionary", input: "de", expected: map[string]any{}},
		{name: "unterminated dictionary", input: "d3:key5:value", err: true},
		{name: "dictionary key without value", input: "d3:keye", err: true},

		// --- General ---
		{name: "empty input", input: "", err: true},
		{name: "invalid top-level type", input: "x", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewDecoder(strings.NewReader(tc.input)).Decode()

			if !tc.err && err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}
			if tc.err {
				if err == nil {
					t.Fatalf("expected error, but got none")
				}
				return
			}

			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf(
					"decoded value is incorrect:\ngot:      %#v (%T)\nexpected: %#v (%T)",
					got, got, tc.expected, tc.expected,
				)
			}
		})
	}
}

func TestEncodeDecodeUint64Boundaries(t *testing.T) {
	for _, n := range []uint64{0, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64} {
		var buf bytes.Buffer
		if err := NewEncoder(&buf).Encode(n); err != nil {
			t.Fatalf("encode %d: %v", n, err)
		}

		got, err := NewDecoder(&buf).Decode()
		if err != nil {
			t.Fatalf("decode %d: %v", n, err)
		}

		var back uint64
		switch v := got.(type) {
		case int64:
			back = uint64(v)
		case uint64:
			back = v
		default:
			t.Fatalf("decode %d: unexpected type %T", n, got)
		}
		if back != n {
			t.Errorf("expected %d, got %d", n, back)
		}
	}
}

func TestDecodeLengthBeyondInput(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("999999999999999:x")).Decode()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestDone(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		err   bool
	}{
		{name: "end of input", input: "i1e"},
		{name: "trailing newline", input: "i1e\r\n"},
		{name: "trailing value", input: "i1ei2e", err: true},
		{name: "trailing garbage", input: "lexyz", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(strings.NewReader(tc.input))
			if _, err := d.Decode(); err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}

			err := d.Done()
			if tc.err && err == nil {
				t.Fatalf("expected error, but got none")
			}
			if !tc.err && err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}
		})
	}
}
