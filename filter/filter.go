// Package filter implements a [transform.Transformer] that performs the
// Unicode code point filtering preprocessing step defined in
// [CSS Syntax Module Level 3, section 3.3]:
//
// "To filter code points from a stream of (unfiltered) code points input:
//
// "Replace any U+000D CARRIAGE RETURN (CR) code points, U+000C FORM FEED (FF)
// code points, or pairs of U+000D CARRIAGE RETURN (CR) followed by U+000A
// LINE FEED (LF) in input by a single U+000A LINE FEED (LF) code point.
//
// "Replace any U+0000 NULL code points in input with U+FFFD REPLACEMENT
// CHARACTER (�)."
//
// Bytes that are not valid UTF-8 are also replaced, byte by byte, with
// U+FFFD rather than surfaced as an error: the tokenizer this package feeds
// never rejects input (see [CSS Syntax Module Level 3, section 4]).
//
// [CSS Syntax Module Level 3, section 3.3]: https://www.w3.org/TR/css-syntax-3/#input-preprocessing
package filter

import (
    "unicode/utf8"

    "golang.org/x/text/transform"
)

type filter struct {
    last rune
}

// Transformer returns a new [transform.Transformer] implementing CSS input
// preprocessing. It never returns a non-ErrShortSrc/ErrShortDst error: bad
// encoding is repaired in place with U+FFFD, not reported.
func Transformer() transform.Transformer {
    return &filter{}
}

func (t *filter) Reset() {
    t.last = 0
}

func emit(r rune, dst []byte, nDst *int, err *error) {
    size := utf8.RuneLen(r)
    if *nDst+size > len(dst) {
        *err = transform.ErrShortDst
        return
    }
    utf8.EncodeRune(dst[*nDst:], r)
    *nDst += size
}

func (t *filter) Transform(dst, src []byte, atEOF bool) (nDst int, nSrc int, err error) {
    for nSrc < len(src) {
        r, size := utf8.DecodeRune(src[nSrc:])

        if !atEOF && !utf8.FullRune(src[nSrc:]) {
            err = transform.ErrShortSrc
            break
        }
        if size == 0 {
            break
        }

        if (r != '\n') && (t.last == '\r') {
            emit('\n', dst, &nDst, &err)
            if err != nil {
                break
            }
            t.last = 0
        }
        if r != '\r' {
            t.last = 0
        }

        switch {
        case r == '\r':
            t.last = '\r'
        case r == '\f':
            emit('\n', dst, &nDst, &err)
        case r == 0:
            emit(utf8.RuneError, dst, &nDst, &err)
        case r == utf8.RuneError && size == 1:
            // an invalid or incomplete encoding: substitute one replacement
            // character and advance past the single offending byte.
            emit(utf8.RuneError, dst, &nDst, &err)
        default:
            emit(r, dst, &nDst, &err)
        }
        if err != nil {
            break
        }

        nSrc += size
    }

    if atEOF && (t.last == '\r') && (err == nil) {
        emit('\n', dst, &nDst, &err)
        t.last = 0
    }

    return
}
