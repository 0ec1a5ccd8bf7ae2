package token_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/go-css/tokenizer/token"
)

func TestToken_Accessors(t *testing.T) {
    tok := token.Ident("foo").WithPosition(3, "foo")
    assert.True(t, tok.Is(token.TypeIdent))
    assert.Equal(t, 3, tok.Pos())
    assert.Equal(t, "foo", tok.Raw())
    assert.Equal(t, "foo", tok.StringValue())
    assert.False(t, tok.Error())
}

func TestToken_WithError(t *testing.T) {
    tok := token.BadString("abc").WithError()
    assert.True(t, tok.Error())
    assert.Equal(t, "abc", tok.StringValue())
}

func TestToken_Equals(t *testing.T) {
    assert.True(t, token.Equals(token.Ident("a"), token.Ident("a")))
    assert.False(t, token.Equals(token.Ident("a"), token.Ident("b")))
    assert.True(t, token.Equals(token.Delim('~'), token.Delim('~')))
    assert.False(t, token.Equals(token.Delim('~'), token.Delim('^')))
    assert.True(t, token.Equals(
        token.Hash(token.HashTypeID, "x"),
        token.Hash(token.HashTypeID, "x"),
    ))
    assert.False(t, token.Equals(
        token.Hash(token.HashTypeID, "x"),
        token.Hash(token.HashTypeUnrestricted, "x"),
    ))
    assert.True(t, token.Equals(
        token.Number(token.NumberTypeNumber, "3.14", 3.14),
        token.Number(token.NumberTypeNumber, "3.14", 3.14),
    ))
    assert.False(t, token.Equals(
        token.Number(token.NumberTypeNumber, "3.140", 3.14),
        token.Number(token.NumberTypeNumber, "3.14", 3.14),
    ))
    assert.True(t, token.Equals(
        token.UnicodeRange(0x260, 0x26F),
        token.UnicodeRange(0x260, 0x26F),
    ))
}

func TestToken_NumericAccessors(t *testing.T) {
    tok := token.Dimension(token.NumberTypeNumber, "3.14", 3.14, "em")
    assert.True(t, tok.IsNumeric())
    v, nt := tok.NumericValue()
    assert.Equal(t, 3.14, v)
    assert.Equal(t, token.NumberTypeNumber, nt)
    assert.Equal(t, "em", tok.Unit())
    assert.Equal(t, "3.14", tok.Repr())
}

func TestToken_UnicodeRangeAccessor(t *testing.T) {
    tok := token.UnicodeRange(0x260, 0x26F)
    start, end := tok.UnicodeRange()
    assert.Equal(t, uint32(0x260), start)
    assert.Equal(t, uint32(0x26F), end)
}

func TestToken_String(t *testing.T) {
    assert.Equal(t, `<ident-token>{value: "a"}`, token.Ident("a").String())
    assert.Equal(t, `<delim-token>{delim: '~'}`, token.Delim('~').String())
    assert.Equal(t, `<(-token>`, token.LeftParen().String())
}
