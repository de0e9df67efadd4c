package record

import "errors"

// ErrMalformedRecord indicates a block whose first line does not open a key.
var ErrMalformedRecord = errors.New("malformed record")

// BlockError records a tokenizer failure together with the offending block.
type BlockError struct {
	Line  string // First line of the block
	Block string // Raw block text
	Err   error
}

// Error returns the failure with the first line of the block for context.
func (e *BlockError) Error() string {
	return e.Err.Error() + ": no key separator in " + quoteLine(e.Line)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *BlockError) Unwrap() error {
	return e.Err
}

func quoteLine(s string) string {
	const limit = 60
	r := []rune(s)
	if len(r) > limit {
		return `"` + string(r[:limit]) + `..."`
	}
	return `"` + s + `"`
}
