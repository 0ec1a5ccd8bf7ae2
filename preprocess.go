package tokenizer

import (
    "bufio"
    "io"
    "strings"

    "golang.org/x/text/transform"

    "github.com/go-css/tokenizer/filter"
    "github.com/go-css/tokenizer/must"
)

// preprocess reads r to completion, applying the CSS input preprocessing
// filter (CSS Syntax Module Level 3, section 3.3), and returns the result as
// a code-point slice ready for a scanner. The whole input is read eagerly:
// a Scanner needs random-access marker/rollback over the full stream (see
// scanner.go), so nothing here can be lazy.
func preprocess(r io.Reader) (src []rune, err error) {
    defer func() {
        if rec := recover(); rec != nil {
            err = rec.(error)
        }
    }()

    tr := transform.NewReader(bufio.NewReader(r), filter.Transformer())
    data := must.Result(io.ReadAll(tr))
    return []rune(string(data)), nil
}

// preprocessString is the same pipeline specialized for an in-memory
// string, used by TokenizeString/NewFromString where reading can't fail.
func preprocessString(s string) []rune {
    src, err := preprocess(strings.NewReader(s))
    if err != nil {
        // strings.Reader and the filter Transformer never fail for
        // ErrShortSrc/ErrShortDst reasons on a fully-buffered string; any
        // error here would indicate a bug in the filter, not bad input.
        panic(err)
    }
    return src
}
