package pgcodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgio"
)

// Weight represents tsvector position weight (A, B, C, or D)
type Weight uint8

const (
	WeightD Weight = 0 // Default weight
	WeightC Weight = 1
	WeightB Weight = 2
	WeightA Weight = 3
)

// String returns the weight as a string (A, B, C, or D)
func (w Weight) String() string {
	switch w & 0x03 {
	case WeightA:
		return "A"
	case WeightB:
		return "B"
	case WeightC:
		return "C"
	default:
		return "D"
	}
}

// MaxPosition is the largest position a WordEntryPos can hold.
const MaxPosition = 0x3FFF

// LexemePosition represents a position with optional weight
type LexemePosition struct {
	Position uint16 // 0-16383 (14 bits)
	Weight   Weight // A, B, C, or D
}

// Lexeme represents a single lexeme with its positions
type Lexeme struct {
	Word      string
	Positions []LexemePosition
}

// TSVector represents a PostgreSQL tsvector value. Lexemes are kept in the order given; the codec neither sorts nor
// deduplicates them.
type TSVector struct {
	Lexemes []Lexeme
}

func (tsv TSVector) String() string {
	var sb strings.Builder
	for i, lexeme := range tsv.Lexemes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeQuotedLexeme(&sb, lexeme.Word)

		for j, pos := range lexeme.Positions {
			if j == 0 {
				sb.WriteByte(':')
			} else {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(pos.Position)))
			if pos.Weight != WeightD {
				sb.WriteString(pos.Weight.String())
			}
		}
	}
	return sb.String()
}

func writeQuotedLexeme(sb *strings.Builder, word string) {
	sb.WriteByte('\'')
	for _, r := range word {
		switch r {
		case '\'':
			sb.WriteString("''")
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
}

// TSVectorCodec encodes and decodes tsvector. Each lexeme is written as its NUL terminated text, a 16-bit position
// count, and the packed positions.
type TSVectorCodec struct{}

func (TSVectorCodec) AppendBinary(buf []byte, v TSVector) ([]byte, error) {
	buf = pgio.AppendInt32(buf, int32(len(v.Lexemes)))

	for i, lexeme := range v.Lexemes {
		if err := validateLexeme("tsvector", lexeme.Word); err != nil {
			err.Detail = fmt.Sprintf("lexeme %d: %s", i, err.Detail)
			return nil, err
		}
		if len(lexeme.Positions) > math.MaxUint16 {
			return nil, newEncodeError("tsvector", ErrLengthMismatch, fmt.Sprintf("lexeme %d: %d positions exceeds %d", i, len(lexeme.Positions), math.MaxUint16))
		}

		buf = append(buf, lexeme.Word...)
		buf = append(buf, 0)
		buf = pgio.AppendUint16(buf, uint16(len(lexeme.Positions)))
		for _, pos := range lexeme.Positions {
			buf = pgio.AppendUint16(buf, packWordEntryPos(pos.Position, pos.Weight))
		}
	}

	return buf, nil
}

func (TSVectorCodec) DecodeBinary(src []byte) (TSVector, error) {
	r := NewValueReader("tsvector", src)

	// The smallest lexeme is an empty word: the terminator and a position count.
	n := r.ReadCount(3)

	var lexemes []Lexeme
	if n > 0 {
		lexemes = make([]Lexeme, 0, n)
	}
	for i := 0; i < n && r.Err() == nil; i++ {
		word := r.ReadCString()
		numPositions := int(r.ReadUint16())
		if r.Err() == nil && numPositions*2 > r.Len() {
			r.Fail(ErrTruncated, fmt.Sprintf("lexeme %d declares %d positions", i, numPositions))
		}
		if r.Err() != nil {
			break
		}

		var positions []LexemePosition
		if numPositions > 0 {
			positions = make([]LexemePosition, numPositions)
			for j := range positions {
				pos, weight := unpackWordEntryPos(r.ReadUint16())
				positions[j] = LexemePosition{Position: pos, Weight: weight}
			}
		}
		lexemes = append(lexemes, Lexeme{Word: word, Positions: positions})
	}

	if err := r.Finish(); err != nil {
		return TSVector{}, err
	}
	return TSVector{Lexemes: lexemes}, nil
}

// packWordEntryPos packs a position and weight into a WordEntryPos. Positions beyond MaxPosition are clamped.
func packWordEntryPos(pos uint16, weight Weight) uint16 {
	if pos > MaxPosition {
		pos = MaxPosition
	}
	return (uint16(weight&0x03) << 14) | pos
}

func unpackWordEntryPos(packed uint16) (pos uint16, weight Weight) {
	weight = Weight((packed >> 14) & 0x03)
	pos = packed & MaxPosition
	return
}

// validateLexeme checks that word can be written as NUL terminated text.
func validateLexeme(typeName, word string) *Error {
	if strings.IndexByte(word, 0) >= 0 {
		return newEncodeError(typeName, ErrInvalidLexeme, fmt.Sprintf("%q contains a NUL byte", word))
	}
	if !utf8.ValidString(word) {
		return newEncodeError(typeName, ErrInvalidLexeme, fmt.Sprintf("%q is not valid UTF-8", word))
	}
	return nil
}
