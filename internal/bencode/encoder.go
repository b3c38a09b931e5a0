package bencode

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Encoder writes bencoded values to a stream. Supported Go types are the
// signed and unsigned integers, string, []any and map[string]any.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(v any) error {
	switch vt := v.(type) {
	case int:
		return e.writeInt(strconv.FormatInt(int64(vt), 10))
	case int64:
		return e.writeInt(strconv.FormatInt(vt, 10))
	case uint8:
		return e.writeInt(strconv.FormatUint(uint64(vt), 10))
	case uint64:
		return e.writeInt(strconv.FormatUint(vt, 10))
	case string:
		return e.writeString(vt)
	case []any:
		return e.writeList(vt)
	case map[string]any:
		return e.writeDict(vt)
	default:
		return fmt.Errorf("bencode: unsupported type %T", vt)
	}
}

/////////////// Private ///////////////

func (e *Encoder) write(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *Encoder) writeByte(b bencodedType) error {
	_, err := e.w.Write([]byte{byte(b)})
	return err
}

func (e *Encoder) writeInt(digits string) error {
	return e.write("i" + digits + "e")
}

func (e *Encoder) writeString(s string) error {
	return e.write(strconv.Itoa(len(s)) + ":" + s)
}

func (e *Encoder) writeList(list []any) error {
	if err := e.writeByte(bList); err != nil {
		return err
	}

	for _, item := range list {
		if err := e.Encode(item); err != nil {
			return err
		}
	}

	return e.writeByte(bTerminator)
}

func (e *Encoder) writeDict(dict map[string]any) error {
	if err := e.writeByte(bDict); err != nil {
		return err
	}

	// Keys must appear in lexicographic order.
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := e.writeString(k); err != nil {
			return err
		}
		if err := e.Encode(dict[k]); err != nil {
			return err
		}
	}

	return e.writeByte(bTerminator)
}
