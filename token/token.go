// Package token defines the CSS tokens produced by the tokenizer package.
//
// A Token is an opaque, immutable value. Which fields are meaningful depends
// on its Type — see the accessor methods below and the CSS Syntax Module
// Level 3 grammar.
//
// Portions Copyright © 2022 W3C® (MIT, ERCIM, Keio, Beihang)
package token

import (
    "fmt"
    "unicode/utf8"
)

type Type string

const (
    TypeWhitespace         = Type("whitespace-token")
    TypeString             = Type("string-token")
    TypeBadString          = Type("bad-string-token")
    TypeDelim              = Type("delim-token")
    TypeComma              = Type("comma-token")
    TypeHash               = Type("hash-token")
    TypeLeftParen          = Type("(-token")
    TypeRightParen         = Type(")-token")
    TypeNumber             = Type("number-token")
    TypeDimension          = Type("dimension-token")
    TypePercentage         = Type("percentage-token")
    TypeCDC                = Type("CDC-token")
    TypeIdent              = Type("ident-token")
    TypeFunction           = Type("function-token")
    TypeUrl                = Type("url-token")
    TypeBadUrl             = Type("bad-url-token")
    TypeColon              = Type("colon-token")
    TypeSemicolon          = Type("semicolon-token")
    TypeCDO                = Type("CDO-token")
    TypeAtKeyword          = Type("at-keyword-token")
    TypeLeftSquareBracket  = Type("[-token")
    TypeRightSquareBracket = Type("]-token")
    TypeLeftCurlyBracket   = Type("{-token")
    TypeRightCurlyBracket  = Type("}-token")
    TypeUnicodeRange       = Type("unicode-range-token")
    TypeIncludeMatch       = Type("include-match-token")
    TypeDashMatch          = Type("dash-match-token")
    TypePrefixMatch        = Type("prefix-match-token")
    TypeSuffixMatch        = Type("suffix-match-token")
    TypeSubstringMatch     = Type("substring-match-token")
    TypeColumn             = Type("column-token")
    TypeComment            = Type("comment-token")
)

type HashType string

const (
    HashTypeID           = HashType("id")
    HashTypeUnrestricted = HashType("unrestricted")
)

type NumberType string

const (
    NumberTypeInteger = NumberType("integer")
    NumberTypeNumber  = NumberType("number")
)

// Token is an immutable CSS token as produced by [tokenizer.Tokenizer.Next].
//
// Every token carries a source position and the raw lexeme it was read
// from (see Pos and Raw); concatenating every token's Raw, in order,
// reproduces the preprocessed input exactly.
type Token struct {
    _type Type

    pos int
    raw string
    err bool

    // repr preserves details such as whether .009 was written as .009 or
    // 9e-3, and whether a character was written literally or as a CSS
    // escape. Only used by <number-token>, <dimension-token>,
    // <percentage-token>.
    repr string

    // stringValue is used by <ident-token>, <function-token>,
    // <at-keyword-token>, <hash-token>, <string-token>, <bad-string-token>,
    // <url-token>, and <comment-token>.
    stringValue string

    unit string // used by <dimension-token>.

    hashType HashType // used by <hash-token>; set by the Hash constructor.

    numberType NumberType // "integer" or "number".

    delim rune // used by <delim-token>.

    numberValue float64 // used by <number-token>, <dimension-token>, <percentage-token>.

    rangeStart uint32 // used by <unicode-range-token>.
    rangeEnd   uint32 // used by <unicode-range-token>.
}

func (t Token) Is(x Type) bool {
    return t._type == x
}

func (t Token) Type() Type {
    return t._type
}

// Pos returns the code-point index, into the preprocessed input, at which
// this token begins.
func (t Token) Pos() int {
    return t.pos
}

// Raw returns the literal source text this token was built from. The
// concatenation of every emitted token's Raw reproduces the preprocessed
// input exactly (see the tokenizer package's raw-fidelity invariant).
func (t Token) Raw() string {
    return t.raw
}

// Error reports whether this token carries a CSS parse-error flag. Parse
// errors never halt tokenization; they are informational.
func (t Token) Error() bool {
    return t.err
}

// WithPosition returns a copy of t with its Pos and Raw fields set. It is
// called by the tokenizer at the point a token is emitted; callers
// constructing tokens directly (e.g. in tests) do not normally need it.
func (t Token) WithPosition(pos int, raw string) Token {
    t.pos = pos
    t.raw = raw
    return t
}

// WithError returns a copy of t with its parse-error flag set.
func (t Token) WithError() Token {
    t.err = true
    return t
}

func (t Token) String() string {
    switch t._type {
    case TypeString, TypeAtKeyword, TypeUrl, TypeFunction, TypeIdent, TypeComment:
        return fmt.Sprintf("<%s>{value: %q}", t._type, t.stringValue)
    case TypeDelim:
        return fmt.Sprintf("<%s>{delim: %q}", t._type, t.delim)
    case TypeHash:
        return fmt.Sprintf("<%s>{type: %q, value: %q}", t._type, t.hashType, t.stringValue)
    case TypeNumber, TypePercentage:
        return fmt.Sprintf("<%s>{type: %q, value: %f, repr: %q}", t._type, t.numberType, t.numberValue, t.repr)
    case TypeDimension:
        return fmt.Sprintf("<%s>{type: %q, value: %f, unit: %q, repr: %q}", t._type, t.numberType, t.numberValue, t.unit, t.repr)
    case TypeUnicodeRange:
        return fmt.Sprintf("<%s>{start: U+%04X, end: U+%04X}", t._type, t.rangeStart, t.rangeEnd)
    default:
        return fmt.Sprintf("<%s>", t._type)
    }
}

// Equals returns true iff the given two tokens are of the same type and of
// the same value (and other applicable details, such as hash type, number
// type, dimension unit, etc). Position and raw text are deliberately not
// compared, so that tests can construct expected tokens without specifying
// them.
//
// In the case of <number-token>, <percentage-token>, and <dimension-token>,
// the tokens are also only considered equal if their underlying
// representation (the result of the [Token.Repr] method) is exactly equal.
func Equals(a Token, b Token) bool {
    if a._type != b._type {
        return false
    }
    switch a._type {
    case TypeHash:
        if a.hashType != b.hashType {
            return false
        }
        return a.stringValue == b.stringValue
    case TypeString, TypeAtKeyword, TypeUrl, TypeFunction, TypeIdent, TypeComment, TypeBadString, TypeBadUrl:
        return a.stringValue == b.stringValue
    case TypeDelim:
        return a.delim == b.delim
    case TypeDimension:
        if a.unit != b.unit {
            return false
        }
        fallthrough
    case TypeNumber, TypePercentage:
        return (a.numberType == b.numberType) && (a.repr == b.repr)
    case TypeUnicodeRange:
        return (a.rangeStart == b.rangeStart) && (a.rangeEnd == b.rangeEnd)
    default:
        return true
    }
}

// Repr returns the original representation of a numeric token. This
// preserves details such as whether .009 was written as .009 or 9e-3. Only
// valid for <number-token>, <percentage-token>, and <dimension-token>;
// returns "" otherwise.
func (t Token) Repr() string {
    switch t._type {
    case TypeNumber, TypePercentage, TypeDimension:
        return t.repr
    }
    return ""
}

// StringValue returns the string value of a <ident-token>, <function-token>,
// <at-keyword-token>, <hash-token>, <string-token>, <bad-string-token>,
// <url-token>, <bad-url-token>, or <comment-token>, or "" if the token is
// not one of these types.
func (t Token) StringValue() string {
    switch t._type {
    case TypeHash, TypeString, TypeAtKeyword, TypeUrl, TypeFunction, TypeIdent, TypeComment, TypeBadString, TypeBadUrl:
        return t.stringValue
    }
    return ""
}

// NumericValue returns the numeric value of a <number-token>,
// <percentage-token>, or <dimension-token>, plus its NumberType. Returns
// (0, "") for any other token type.
func (t Token) NumericValue() (float64, NumberType) {
    switch t._type {
    case TypeNumber, TypePercentage, TypeDimension:
        return t.numberValue, t.numberType
    }
    return 0, ""
}

// IsNumeric returns true if a token is a <number-token>, <percentage-token>,
// or <dimension-token>.
func (t Token) IsNumeric() bool {
    switch t._type {
    case TypeNumber, TypePercentage, TypeDimension:
        return true
    }
    return false
}

// Unit returns the unit of a <dimension-token>, or "" otherwise.
func (t Token) Unit() string {
    if t._type == TypeDimension {
        return t.unit
    }
    return ""
}

// HashType returns the hash type of a <hash-token>, or HashType("")
// otherwise.
func (t Token) HashType() HashType {
    if t._type == TypeHash {
        return t.hashType
    }
    return ""
}

// Delim returns the delimiter of a <delim-token>, or utf8.RuneError
// otherwise.
func (t Token) Delim() rune {
    if t._type == TypeDelim {
        return t.delim
    }
    return utf8.RuneError
}

// UnicodeRange returns the (start, end) code point bounds of a
// <unicode-range-token>, or (0, 0) otherwise.
func (t Token) UnicodeRange() (uint32, uint32) {
    if t._type == TypeUnicodeRange {
        return t.rangeStart, t.rangeEnd
    }
    return 0, 0
}

func Whitespace() Token        { return Token{_type: TypeWhitespace} }
func CDC() Token                { return Token{_type: TypeCDC} }
func CDO() Token                { return Token{_type: TypeCDO} }
func Colon() Token              { return Token{_type: TypeColon} }
func Comma() Token              { return Token{_type: TypeComma} }
func Semicolon() Token          { return Token{_type: TypeSemicolon} }
func Column() Token             { return Token{_type: TypeColumn} }
func LeftParen() Token          { return Token{_type: TypeLeftParen} }
func RightParen() Token         { return Token{_type: TypeRightParen} }
func LeftSquareBracket() Token  { return Token{_type: TypeLeftSquareBracket} }
func RightSquareBracket() Token { return Token{_type: TypeRightSquareBracket} }
func LeftCurlyBracket() Token   { return Token{_type: TypeLeftCurlyBracket} }
func RightCurlyBracket() Token  { return Token{_type: TypeRightCurlyBracket} }
func IncludeMatch() Token       { return Token{_type: TypeIncludeMatch} }
func DashMatch() Token          { return Token{_type: TypeDashMatch} }
func PrefixMatch() Token        { return Token{_type: TypePrefixMatch} }
func SuffixMatch() Token        { return Token{_type: TypeSuffixMatch} }
func SubstringMatch() Token     { return Token{_type: TypeSubstringMatch} }

func BadString(s string) Token {
    return Token{_type: TypeBadString, stringValue: s}
}

func BadUrl() Token {
    return Token{_type: TypeBadUrl}
}

func String(s string) Token {
    return Token{_type: TypeString, stringValue: s}
}

func Comment(s string) Token {
    return Token{_type: TypeComment, stringValue: s}
}

func Delim(x rune) Token {
    return Token{_type: TypeDelim, delim: x}
}

func Hash(t HashType, s string) Token {
    return Token{_type: TypeHash, stringValue: s, hashType: t}
}

func Number(nt NumberType, repr string, value float64) Token {
    return Token{_type: TypeNumber, repr: repr, numberValue: value, numberType: nt}
}

func Percentage(nt NumberType, repr string, value float64) Token {
    return Token{_type: TypePercentage, repr: repr, numberValue: value, numberType: nt}
}

func Dimension(nt NumberType, repr string, value float64, unit string) Token {
    return Token{_type: TypeDimension, repr: repr, numberValue: value, numberType: nt, unit: unit}
}

func Ident(s string) Token {
    return Token{_type: TypeIdent, stringValue: s}
}

func Function(s string) Token {
    return Token{_type: TypeFunction, stringValue: s}
}

func Url(s string) Token {
    return Token{_type: TypeUrl, stringValue: s}
}

func AtKeyword(s string) Token {
    return Token{_type: TypeAtKeyword, stringValue: s}
}

func UnicodeRange(start, end uint32) Token {
    return Token{_type: TypeUnicodeRange, rangeStart: start, rangeEnd: end}
}
