package tokenizer

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestScanner_PeekAndConsume(t *testing.T) {
    s := newScanner([]rune("abc"))
    assert.False(t, s.eos())
    assert.Equal(t, 'a', s.peek())
    assert.Equal(t, 'b', s.peek1())
    assert.Equal(t, 'c', s.peekAt(2))
    assert.Equal(t, noRune, s.peekAt(3))

    assert.Equal(t, 'a', s.consume())
    assert.Equal(t, 'b', s.consume())
    s.reconsume()
    assert.Equal(t, 'b', s.consume())
    assert.Equal(t, 'c', s.consume())
    assert.True(t, s.eos())
    assert.Equal(t, noRune, s.consume())
}

func TestScanner_PeekN(t *testing.T) {
    s := newScanner([]rune("abcdef"))
    assert.Equal(t, "abc", s.peekn(3))
    assert.Equal(t, "abcdef", s.peekn(100))
    assert.Equal(t, "", s.peekn(0))
}

func TestScanner_MarkAndMarked(t *testing.T) {
    s := newScanner([]rune("hello world"))
    s.mark()
    s.consume()
    s.consume()
    text, ok := s.marked()
    assert.True(t, ok)
    assert.Equal(t, "he", text)

    s.mark()
    _, ok = s.marked()
    assert.False(t, ok)
}

func TestScanner_Marking(t *testing.T) {
    s := newScanner([]rune("123abc"))
    text, ok := s.marking(func() bool {
        for runeIsDigit(s.peek()) {
            s.consume()
        }
        return true
    })
    assert.True(t, ok)
    assert.Equal(t, "123", text)
    assert.Equal(t, "abc", s.peekn(3))
}

func TestScanner_WithRollback(t *testing.T) {
    s := newScanner([]rune("abc"))
    s.consume()
    pos := s.pos

    _, ok := withRollback(s, func() (string, bool) {
        s.consume()
        s.consume()
        return "", false
    })
    assert.False(t, ok)
    assert.Equal(t, pos, s.pos)

    v, ok := withRollback(s, func() (string, bool) {
        s.consume()
        return "x", true
    })
    assert.True(t, ok)
    assert.Equal(t, "x", v)
    assert.Equal(t, pos+1, s.pos)
}

func TestScanner_ScanDigitsAndHex(t *testing.T) {
    s := newScanner([]rune("123xyz"))
    assert.Equal(t, "123", s.scanDigits())

    h := newScanner([]rune("1F4a9ZZ"))
    assert.Equal(t, "1F4a9", h.scanHex())
    h2 := newScanner([]rune("1F"))
    assert.Equal(t, "1F", h2.scanHex())
    h3 := newScanner([]rune("1234567"))
    assert.Equal(t, "123456", h3.scanHex())
}

func TestScanner_ScanDecimal(t *testing.T) {
    s := newScanner([]rune(".5px"))
    assert.Equal(t, ".5", s.scanDecimal())

    s2 := newScanner([]rune(".px"))
    assert.Equal(t, "", s2.scanDecimal())
}

func TestScanner_ScanNumberExponent(t *testing.T) {
    s := newScanner([]rune("e10px"))
    text, ok := s.scanNumberExponent()
    assert.True(t, ok)
    assert.Equal(t, "e10", text)

    s2 := newScanner([]rune("epx"))
    _, ok = s2.scanNumberExponent()
    assert.False(t, ok)
    assert.Equal(t, 0, s2.pos)
}

func TestScanner_UnicodeRangeStartAndEnd(t *testing.T) {
    s := newScanner([]rune("+1F-2A"))
    assert.True(t, s.unicodeRangeStart())
    s.consume()
    s.consume()
    s.consume()
    assert.True(t, s.unicodeRangeEnd())

    s2 := newScanner([]rune("+?"))
    assert.True(t, s2.unicodeRangeStart())

    s3 := newScanner([]rune("+z"))
    assert.False(t, s3.unicodeRangeStart())

    s4 := newScanner([]rune("+|"))
    assert.True(t, s4.unicodeRangeStart())
}

func TestScanner_QuotedURLStart(t *testing.T) {
    s := newScanner([]rune(`"foo"`))
    assert.True(t, s.quotedURLStart())

    s2 := newScanner([]rune(` "foo"`))
    assert.True(t, s2.quotedURLStart())

    s3 := newScanner([]rune(`foo.png`))
    assert.False(t, s3.quotedURLStart())
}
