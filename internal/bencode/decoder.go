package bencode

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decoder reads bencoded values from a stream. Integers decode as int64,
// or as uint64 when they are positive and do not fit in an int64.
type Decoder struct {
	r *bufio.Reader
}

type bencodedType byte

const (
	bInteger    bencodedType = 'i'
	bDict       bencodedType = 'd'
	bList       bencodedType = 'l'
	bTerminator bencodedType = 'e'
)

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

func (d *Decoder) Decode() (any, error) {
	btype, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch bencodedType(btype) {
	case bInteger:
		return d.readInteger()
	case bDict:
		return d.readDict()
	case bList:
		return d.readList()
	default:
		if err := d.r.UnreadByte(); err != nil {
			return nil, err
		}
		return d.readString()
	}
}

// Done reports an error unless only whitespace is left in the stream.
func (d *Decoder) Done() error {
	for {
		b, err := d.r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return fmt.Errorf("bencode: unexpected data %q after value", b)
		}
	}
}

/////////////// Private ///////////////

func (d *Decoder) readInteger() (any, error) {
	digits, err := d.readUntil(bTerminator)
	if err != nil {
		return nil, err
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(digits, "-") {
		u, uerr := strconv.ParseUint(digits, 10, 64)
		if uerr == nil {
			return u, nil
		}
	}

	return nil, fmt.Errorf("bencode: invalid integer %q: %w", digits, err)
}

func (d *Decoder) readString() (string, error) {
	digits, err := d.readUntil(':')
	if err != nil {
		return "", err
	}

	size, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("bencode: invalid string length %q: %w", digits, err)
	}
	if size < 0 {
		return "", errors.New("bencode: invalid string, negative length")
	}
	if size == 0 {
		return "", nil
	}

	// The buffer grows with the bytes actually read, so a bogus length
	// fails on the short read instead of allocating up front.
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, d.r, int64(size)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("bencode: string of length %d: %w", size, err)
	}

	return buf.String(), nil
}

func (d *Decoder) readList() ([]any, error) {
	list := make([]any, 0)

	for {
		end, err := d.atTerminator()
		if err != nil {
			return nil, err
		}
		if end {
			return list, nil
		}

		v, err := d.Decode()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
}

func (d *Decoder) readDict() (map[string]any, error) {
	dict := make(map[string]any)

	for {
		end, err := d.atTerminator()
		if err != nil {
			return nil, err
		}
		if end {
			return dict, nil
		}

		key, err := d.readString()
		if err != nil {
			return nil, err
		}

		val, err := d.Decode()
		if err != nil {
			return nil, err
		}

		dict[key] = val
	}
}

// atTerminator consumes the next byte if it ends a list or dictionary.
func (d *Decoder) atTerminator() (bool, error) {
	peek, err := d.r.Peek(1)
	if err != nil {
		return false, err
	}
	if peek[0] != byte(bTerminator) {
		return false, nil
	}

	_, err = d.r.ReadByte()
	return true, err
}

func (d *Decoder) readUntil(delim bencodedType) (string, error) {
	read, err := d.r.ReadBytes(byte(delim))
	if err != nil {
		return "", err
	}

	return string(read[:len(read)-1]), nil
}
