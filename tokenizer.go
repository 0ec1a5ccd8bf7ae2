// Package tokenizer performs the tokenization step defined in
// [CSS Syntax Module Level 3] (part 4).
//
// The main elements of this package are the [New] / [NewFromString]
// constructors, which return a [Tokenizer], and that Tokenizer's
// [Tokenizer.Next] method. [Tokenize] and [TokenizeString] are one-shot
// convenience wrappers that drain a Tokenizer into a slice.
//
// The specific algorithms from the CSS specification are implemented as
// unexported "consume" functions; they are not part of the public API, so
// callers drive the state machine only through a Tokenizer.
//
// Note that reading the input (in [New]) may fail with an I/O error; once
// a Tokenizer exists, [Tokenizer.Next] itself never fails — CSS parse
// errors are reported as flags on tokens (see the token package) and
// collected via [Tokenizer.Errors].
//
// [CSS Syntax Module Level 3]: https://www.w3.org/TR/css-syntax-3/
//
// Portions Copyright © 2022 W3C® (MIT, ERCIM, Keio, Beihang)
package tokenizer

import (
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/go-css/tokenizer/token"
)

var (
    ErrUnexpectedEOF       = fmt.Errorf("unexpected end of file")
    ErrUnexpectedLinebreak = fmt.Errorf("unexpected linebreak")
    ErrUnexpectedInput     = fmt.Errorf("unexpected input")
    ErrBadUrl              = fmt.Errorf("invalid URL syntax")
)

// Options configures a Tokenizer. The zero value disables both
// vendor-compatibility allowances.
type Options struct {
    // PreserveComments causes comment tokens to be emitted instead of
    // silently discarded.
    PreserveComments bool

    // PreserveHacks enables two non-standard allowances: a '*' before a
    // name-start code point begins an identifier (the IE "star hack"),
    // and inside a name, a '*' may be followed by any single code point,
    // appended verbatim.
    PreserveHacks bool
}

// Tokenizer implements the CSS Syntax Module Level 3 token consumption
// state machine over a single, fully-preprocessed input.
type Tokenizer struct {
    sc   *scanner
    opts Options
    errs []error
}

// New reads r to completion, applies input preprocessing, and returns a
// Tokenizer ready to scan it.
func New(r io.Reader, opts Options) (*Tokenizer, error) {
    src, err := preprocess(r)
    if err != nil {
        return nil, err
    }
    return &Tokenizer{sc: newScanner(src), opts: opts}, nil
}

// NewFromString is New specialized for an in-memory string, which can
// never fail to read.
func NewFromString(s string, opts Options) *Tokenizer {
    return &Tokenizer{sc: newScanner(preprocessString(s)), opts: opts}
}

// Tokenize reads r, preprocesses it, and returns every token it produces,
// in order.
func Tokenize(r io.Reader, opts Options) ([]token.Token, error) {
    z, err := New(r, opts)
    if err != nil {
        return nil, err
    }
    return z.All(), nil
}

// TokenizeString is Tokenize specialized for an in-memory string.
func TokenizeString(s string, opts Options) []token.Token {
    return NewFromString(s, opts).All()
}

// Errors returns every parse error recorded so far. Parse errors never
// halt tokenization; see the token.Token.Error flag for a per-token
// equivalent.
func (z *Tokenizer) Errors() []error {
    return z.errs
}

func (z *Tokenizer) error(err error) {
    z.errs = append(z.errs, err)
}

// NextExcept is Next, but silently skips tokens whose Type is in except.
func (z *Tokenizer) NextExcept(except ...token.Type) (token.Token, bool) {
    for {
        t, ok := z.Next()
        if !ok {
            return t, false
        }
        skip := false
        for _, x := range except {
            if t.Is(x) {
                skip = true
                break
            }
        }
        if !skip {
            return t, true
        }
    }
}

// All drains the Tokenizer, returning every remaining token in order.
func (z *Tokenizer) All() []token.Token {
    var out []token.Token
    for {
        t, ok := z.Next()
        if !ok {
            break
        }
        out = append(out, t)
    }
    return out
}

// finish stamps t with the position and raw text of the span marked at the
// start of the current Next() call.
func (z *Tokenizer) finish(t token.Token) token.Token {
    raw, _ := z.sc.marked()
    return t.WithPosition(z.sc.marker, raw)
}

// Next returns the next token from the input, or (zero, false) once the
// stream is exhausted.
func (z *Tokenizer) Next() (token.Token, bool) {
    sc := z.sc

    for {
        if sc.eos() {
            return token.Token{}, false
        }
        sc.mark()

        had, text, unterminated := consumeComments(sc)
        if !had {
            break
        }
        if z.opts.PreserveComments {
            tok := token.Comment(text)
            if unterminated {
                z.error(ErrUnexpectedEOF)
                tok = tok.WithError()
            }
            return z.finish(tok), true
        }
        // discard the comment and restart: either more comments follow,
        // or real content does.
    }

    c := sc.consume()

    switch {
    case runeIsWhitespace(c):
        // A run of whitespace yields one whitespace token per code point;
        // a downstream parser coalesces them.
        return z.finish(token.Whitespace()), true

    case c == '"', c == '\'':
        t, err := consumeString(sc, c)
        if err != nil {
            z.error(err)
        }
        return z.finish(t), true

    case c == '#':
        a, b, cc := sc.peek(), sc.peek1(), sc.peekAt(2)
        if runeIsNameChar(a) || isValidEscape(a, b) {
            ht := token.HashTypeUnrestricted
            if isStartOfIdentSequence(a, b, cc) {
                ht = token.HashTypeID
            }
            return z.finish(token.Hash(ht, consumeName(sc, z.opts))), true
        }
        return z.finish(token.Delim(c)), true

    case c == '(':
        return z.finish(token.LeftParen()), true
    case c == ')':
        return z.finish(token.RightParen()), true
    case c == '[':
        return z.finish(token.LeftSquareBracket()), true
    case c == ']':
        return z.finish(token.RightSquareBracket()), true
    case c == '{':
        return z.finish(token.LeftCurlyBracket()), true
    case c == '}':
        return z.finish(token.RightCurlyBracket()), true
    case c == ',':
        return z.finish(token.Comma()), true
    case c == ':':
        return z.finish(token.Colon()), true
    case c == ';':
        return z.finish(token.Semicolon()), true

    case c == '+', c == '.':
        if isStartOfNumber(sc.current, sc.peek(), sc.peek1()) {
            sc.reconsume()
            return z.finish(consumeNumeric(sc, z.opts)), true
        }
        return z.finish(token.Delim(c)), true

    case c == '-':
        a, b := sc.peek(), sc.peek1()
        switch {
        case isStartOfNumber(c, a, b):
            sc.reconsume()
            return z.finish(consumeNumeric(sc, z.opts)), true
        case a == '-' && b == '>':
            sc.consume()
            sc.consume()
            return z.finish(token.CDC()), true
        case isStartOfIdentSequence(c, a, b):
            sc.reconsume()
            t, err := consumeIdentLike(sc, z.opts)
            if err != nil {
                z.error(err)
            }
            return z.finish(t), true
        default:
            return z.finish(token.Delim(c)), true
        }

    case c == '<':
        if sc.peekn(3) == "!--" {
            sc.consume()
            sc.consume()
            sc.consume()
            return z.finish(token.CDO()), true
        }
        return z.finish(token.Delim(c)), true

    case c == '@':
        if isStartOfIdentSequence(sc.peek(), sc.peek1(), sc.peekAt(2)) {
            return z.finish(token.AtKeyword(consumeName(sc, z.opts))), true
        }
        return z.finish(token.Delim(c)), true

    case c == '\\':
        if isValidEscape(c, sc.peek()) {
            sc.reconsume()
            t, err := consumeIdentLike(sc, z.opts)
            if err != nil {
                z.error(err)
            }
            return z.finish(t), true
        }
        z.error(ErrUnexpectedInput)
        return z.finish(token.Delim(c).WithError()), true

    case c == '$', c == '^', c == '~', c == '|':
        if sc.peek() == '=' {
            sc.consume()
            return z.finish(matchToken(c)), true
        }
        if c == '|' && sc.peek() == '|' {
            sc.consume()
            return z.finish(token.Column()), true
        }
        return z.finish(token.Delim(c)), true

    case c == '*':
        if sc.peek() == '=' {
            sc.consume()
            return z.finish(token.SubstringMatch()), true
        }
        if z.opts.PreserveHacks && runeIsNameStart(sc.peek()) {
            sc.reconsume()
            t, err := consumeIdentLike(sc, z.opts)
            if err != nil {
                z.error(err)
            }
            return z.finish(t), true
        }
        return z.finish(token.Delim(c)), true

    case c == 'u', c == 'U':
        if sc.unicodeRangeStart() {
            sc.consume() // '+'
            return z.finish(consumeUnicodeRange(sc)), true
        }
        sc.reconsume()
        t, err := consumeIdentLike(sc, z.opts)
        if err != nil {
            z.error(err)
        }
        return z.finish(t), true

    case runeIsDigit(c):
        sc.reconsume()
        return z.finish(consumeNumeric(sc, z.opts)), true

    case runeIsNameStart(c):
        sc.reconsume()
        t, err := consumeIdentLike(sc, z.opts)
        if err != nil {
            z.error(err)
        }
        return z.finish(t), true

    default:
        return z.finish(token.Delim(c)), true
    }
}

func matchToken(c rune) token.Token {
    switch c {
    case '$':
        return token.SuffixMatch()
    case '^':
        return token.PrefixMatch()
    case '~':
        return token.IncludeMatch()
    case '|':
        return token.DashMatch()
    }
    panic(fmt.Sprintf("matchToken: unexpected delimiter %q", c))
}

// consumeComments consumes at most one CSS comment starting at the
// scanner's current position. had reports whether a comment was present;
// text is its body (without the surrounding "/*" "*/"); unterminated
// reports whether end-of-stream was reached before a closing "*/".
func consumeComments(sc *scanner) (had bool, text string, unterminated bool) {
    if sc.peek() != '/' || sc.peek1() != '*' {
        return false, "", false
    }
    sc.consume()
    sc.consume()

    text, ok := sc.marking(func() bool {
        for {
            if sc.eos() {
                return false
            }
            if sc.peek() == '*' && sc.peek1() == '/' {
                return true
            }
            sc.consume()
        }
    })
    if ok {
        sc.consume() // '*'
        sc.consume() // '/'
        return true, text, false
    }
    // unterminated: consume whatever remains as the comment's body.
    text += sc.consumeRest()
    return true, text, true
}

// consumeEscaped consumes an escaped code point. It assumes the '\' has
// already been consumed and that the next code point has already been
// verified to start a valid escape (or is end-of-stream).
func consumeEscaped(sc *scanner) rune {
    if sc.eos() {
        return unicodeReplacementChar
    }

    hex := sc.scanHex()
    if hex == "" {
        return sc.consume()
    }
    if runeIsWhitespace(sc.peek()) {
        sc.consume()
    }

    n, err := strconv.ParseInt(hex, 16, 64)
    if err != nil || n == 0 || n > maxCodePoint || runeIsSurrogate(rune(n)) {
        return unicodeReplacementChar
    }
    return rune(n)
}

const (
    unicodeReplacementChar = rune(0xFFFD)
    maxCodePoint           = 0x10FFFF
)

// consumeName consumes a CSS name: the largest run of name characters and
// decoded escapes starting at the scanner's position.
func consumeName(sc *scanner, opts Options) string {
    var sb strings.Builder

    for {
        run := sc.scanWhile(runeIsNameChar)
        sb.WriteString(run)

        if sc.eos() {
            return sb.String()
        }

        c := sc.consume()
        if isValidEscape(c, sc.peek()) {
            sb.WriteRune(consumeEscaped(sc))
            continue
        }
        if opts.PreserveHacks && c == '*' {
            sb.WriteRune(c)
            if !sc.eos() {
                sb.WriteRune(sc.consume())
            }
            continue
        }
        sc.reconsume()
        return sb.String()
    }
}

// consumeNumber consumes a number, returning its literal representation,
// numeric value, and type flag.
func consumeNumber(sc *scanner) (repr string, value float64, nt token.NumberType) {
    var sb strings.Builder
    nt = token.NumberTypeInteger

    if c := sc.peek(); runeIsPlusMinus(c) {
        sc.consume()
        sb.WriteRune(c)
    }

    sb.WriteString(sc.scanDigits())

    if frac := sc.scanDecimal(); frac != "" {
        sb.WriteString(frac)
        nt = token.NumberTypeNumber
    }

    if exp, ok := sc.scanNumberExponent(); ok {
        sb.WriteString(exp)
        nt = token.NumberTypeNumber
    }

    repr = sb.String()
    value = convertStringToNumber(repr)
    return
}

// consumeNumeric consumes a numeric token: a <number-token>,
// <percentage-token>, or <dimension-token>.
func consumeNumeric(sc *scanner, opts Options) token.Token {
    repr, value, nt := consumeNumber(sc)

    a, b, c := sc.peek(), sc.peek1(), sc.peekAt(2)
    if isStartOfIdentSequence(a, b, c) {
        unit := consumeName(sc, opts)
        return token.Dimension(nt, repr, value, unit)
    }
    if a == '%' {
        sc.consume()
        return token.Percentage(nt, repr, value)
    }
    return token.Number(nt, repr, value)
}

// consumeIdentLike consumes an <ident-token>, <function-token>,
// <url-token>, or <bad-url-token>.
func consumeIdentLike(sc *scanner, opts Options) (token.Token, error) {
    name := consumeName(sc, opts)

    if sc.peek() != '(' {
        return token.Ident(name), nil
    }
    sc.consume() // '('

    if !strings.EqualFold(name, "url") {
        return token.Function(name), nil
    }

    sc.scanWhile(runeIsWhitespace)
    if sc.quotedURLStart() {
        return token.Function(name), nil
    }
    return consumeUrl(sc)
}

// consumeUrl consumes a <url-token> or <bad-url-token>. It assumes the
// initial "url(" and any following whitespace have already been consumed,
// and that the stream does not start with a quote (a quoted argument is
// tokenized as a <function-token> by consumeIdentLike).
func consumeUrl(sc *scanner) (token.Token, error) {
    var sb strings.Builder

    for {
        c := sc.consume()
        switch {
        case c == ')':
            return token.Url(sb.String()), nil
        case c == noRune:
            return token.Url(sb.String()), ErrUnexpectedEOF
        case runeIsWhitespace(c):
            sc.scanWhile(runeIsWhitespace)
            switch p := sc.peek(); {
            case p == ')':
                sc.consume()
                return token.Url(sb.String()), nil
            case p == noRune:
                return token.Url(sb.String()), ErrUnexpectedEOF
            default:
                consumeBadUrl(sc)
                return token.BadUrl().WithError(), ErrBadUrl
            }
        case c == '"', c == '\'', c == '(', runeIsNonPrintable(c):
            consumeBadUrl(sc)
            return token.BadUrl().WithError(), ErrBadUrl
        case c == '\\':
            if isValidEscape(c, sc.peek()) {
                sb.WriteRune(consumeEscaped(sc))
            } else {
                consumeBadUrl(sc)
                return token.BadUrl().WithError(), ErrBadUrl
            }
        default:
            sb.WriteRune(c)
        }
    }
}

// consumeBadUrl consumes the remnants of a bad url, reaching a recovery
// point where normal tokenizing can resume.
func consumeBadUrl(sc *scanner) {
    for {
        c := sc.consume()
        if c == ')' || c == noRune {
            return
        }
        if isValidEscape(c, sc.peek()) {
            consumeEscaped(sc)
        }
    }
}

// consumeString consumes a <string-token> or <bad-string-token>. It
// assumes the opening quote has already been consumed; ending is that
// quote character.
func consumeString(sc *scanner, ending rune) (token.Token, error) {
    var sb strings.Builder

    for {
        c := sc.consume()
        switch {
        case c == ending:
            return token.String(sb.String()), nil
        case c == noRune:
            // unterminated strings at EOF are accepted, not an error.
            return token.String(sb.String()), nil
        case runeIsNewline(c):
            sc.reconsume()
            return token.BadString(sb.String()).WithError(), ErrUnexpectedLinebreak
        case c == '\\':
            n := sc.peek()
            switch {
            case n == noRune:
                // nothing to do; the loop will terminate on the next
                // iteration's end-of-stream check.
            case runeIsNewline(n):
                sc.consume() // line continuation
            default:
                sb.WriteRune(consumeEscaped(sc))
            }
        default:
            sb.WriteRune(c)
        }
    }
}

// consumeUnicodeRange consumes a <unicode-range-token>. It assumes the
// leading 'u'/'U' and '+' have already been consumed.
func consumeUnicodeRange(sc *scanner) token.Token {
    value := sc.scanHex()
    for len(value) < 6 && sc.peek() == '?' {
        sc.consume()
        value += "?"
    }

    if strings.ContainsRune(value, '?') {
        start := hexToCodePoint(strings.ReplaceAll(value, "?", "0"))
        end := hexToCodePoint(strings.ReplaceAll(value, "?", "F"))
        return token.UnicodeRange(start, end)
    }

    start := hexToCodePoint(value)
    end := start
    if sc.unicodeRangeEnd() {
        sc.consume() // '-'
        end = hexToCodePoint(sc.scanHex())
    }
    return token.UnicodeRange(start, end)
}

func hexToCodePoint(hex string) uint32 {
    if hex == "" {
        return 0
    }
    n, err := strconv.ParseUint(hex, 16, 32)
    if err != nil {
        return 0
    }
    return uint32(n)
}
