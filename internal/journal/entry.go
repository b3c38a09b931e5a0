package journal

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/prxssh/mutator/internal/state"
)

const kindKey = "kind"

// toEntry flattens a message into the dictionary stored in a journal.
func toEntry(msg state.Message) (map[string]any, error) {
	entry := make(map[string]any)

	switch m := msg.(type) {
	case state.Resize:
		entry["width"] = m.Width
		entry["height"] = m.Height
	case state.Move:
		entry["x"] = m.Position.X
		entry["y"] = m.Position.Y
	case state.Echo:
		entry["text"] = m.Text
	case state.ChangeColor:
		entry["r"] = m.R
		entry["g"] = m.G
		entry["b"] = m.B
	case state.Quit:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, msg)
	}

	entry[kindKey] = string(msg.Kind())
	return entry, nil
}

func fromEntry(entry map[string]any) (state.Message, error) {
	kind, err := getString(entry, kindKey)
	if err != nil {
		return nil, err
	}

	switch state.Kind(kind) {
	case state.KindResize:
		w, err := getUint(entry, "width", 64)
		if err != nil {
			return nil, err
		}
		h, err := getUint(entry, "height", 64)
		if err != nil {
			return nil, err
		}
		return state.Resize{Width: w, Height: h}, nil

	case state.KindMove:
		x, err := getUint(entry, "x", 64)
		if err != nil {
			return nil, err
		}
		y, err := getUint(entry, "y", 64)
		if err != nil {
			return nil, err
		}
		return state.Move{Position: state.Position{X: x, Y: y}}, nil

	case state.KindEcho:
		text, err := getString(entry, "text")
		if err != nil {
			return nil, err
		}
		return state.Echo{Text: text}, nil

	case state.KindChangeColor:
		var rgb [3]uint8
		for i, key := range []string{"r", "g", "b"} {
			c, err := getUint(entry, key, 8)
			if err != nil {
				return nil, err
			}
			rgb[i] = uint8(c)
		}
		return state.ChangeColor{R: rgb[0], G: rgb[1], B: rgb[2]}, nil

	case state.KindQuit:
		return state.Quit{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

/////////////// Private ///////////////

func getString(entry map[string]any, key string) (string, error) {
	raw, ok := entry[key]
	if !ok {
		return "", fmt.Errorf("missing required key %q", key)
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("key %q: value is not a string", key)
	}

	return s, nil
}

// getUint reads an unsigned integer that must fit in bits. Bencode yields
// int64 or uint64, JSON yields json.Number.
func getUint(entry map[string]any, key string, bits int) (uint64, error) {
	raw, ok := entry[key]
	if !ok {
		return 0, fmt.Errorf("missing required key %q", key)
	}

	var n uint64
	switch v := raw.(type) {
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("key %q: negative value %d", key, v)
		}
		n = uint64(v)
	case uint64:
		n = v
	case json.Number:
		parsed, err := strconv.ParseUint(v.String(), 10, bits)
		if err != nil {
			return 0, fmt.Errorf("key %q: %w", key, err)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("key %q: value is not an integer", key)
	}

	if bits < 64 && n >= 1<<bits {
		return 0, fmt.Errorf("key %q: value %d out of range", key, n)
	}

	return n, nil
}
