// Package ingest reads request bodies carrying raw platform payloads.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

var (
	ErrEmptyBody    = errors.New("empty body")
	ErrBodyTooLarge = errors.New("body too large")
	ErrMalformed    = errors.New("malformed json")
)

// Decode reads at most limit bytes from r into dst. Syntactically broken
// JSON (trailing commas, single quotes) is repaired once before giving up;
// repaired reports whether that happened. A body that ends early is never
// repaired: closing its brackets would yield a half-filled payload.
func Decode(r io.Reader, limit int64, dst any) (repaired bool, err error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return false, err
	}
	if int64(len(b)) > limit {
		return false, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, limit)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return false, ErrEmptyBody
	}

	err = json.Unmarshal(b, dst)
	var syn *json.SyntaxError
	if err == nil || !errors.As(err, &syn) {
		return false, wrap(err)
	}
	if truncated(syn) {
		return false, fmt.Errorf("%w: truncated body: %v", ErrMalformed, err)
	}
	fixed, rerr := jsonrepair.RepairJSON(string(b))
	if rerr != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal([]byte(fixed), dst); err != nil {
		return true, wrap(err)
	}
	return true, nil
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}

// truncated reports a syntax error raised by running out of input.
func truncated(syn *json.SyntaxError) bool {
	return syn.Error() == "unexpected end of JSON input"
}
