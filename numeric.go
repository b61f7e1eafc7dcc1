package pgcodec

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/jackc/pgio"
)

// PostgreSQL internal numeric storage uses 16-bit "digits" with base of 10,000
const nbase = 10000

const (
	pgNumericPos     = 0x0000
	pgNumericNeg     = 0x4000
	pgNumericNaNSign = 0xc000

	pgNumericPosInfSign = 0xd000
	pgNumericNegInfSign = 0xf000
)

var (
	big0     = big.NewInt(0)
	big1     = big.NewInt(1)
	big10    = big.NewInt(10)
	big100   = big.NewInt(100)
	big1000  = big.NewInt(1000)
	bigNBase = big.NewInt(nbase)
)

// Numeric is a PostgreSQL numeric. Its finite value is Int * 10^Exp. A nil Int is zero.
type Numeric struct {
	Int              *big.Int
	Exp              int32
	NaN              bool
	InfinityModifier InfinityModifier
}

func (n Numeric) String() string {
	switch {
	case n.NaN:
		return "NaN"
	case n.InfinityModifier == Infinity:
		return "Infinity"
	case n.InfinityModifier == NegativeInfinity:
		return "-Infinity"
	}
	if n.Int == nil {
		return "0"
	}
	return n.Int.String() + "e" + strconv.FormatInt(int64(n.Exp), 10)
}

// Cmp compares the finite values of n and other. It returns -1, 0, or +1. NaN and infinities are not ordered by Cmp.
func (n Numeric) Cmp(other Numeric) int {
	a, b := n.bigRat(), other.bigRat()
	return a.Cmp(b)
}

func (n Numeric) bigRat() *big.Rat {
	num := new(big.Int)
	if n.Int != nil {
		num.Set(n.Int)
	}
	scale := new(big.Int).Exp(big10, big.NewInt(int64(abs32(n.Exp))), nil)
	if n.Exp >= 0 {
		return new(big.Rat).SetInt(num.Mul(num, scale))
	}
	return new(big.Rat).SetFrac(num, scale)
}

func abs32(n int32) int64 {
	if n < 0 {
		return -int64(n)
	}
	return int64(n)
}

// NumericCodec encodes and decodes numeric. It is the element codec of numrange.
type NumericCodec struct{}

func (NumericCodec) AppendBinary(buf []byte, v Numeric) ([]byte, error) {
	if v.NaN {
		return appendNumericHeader(buf, 0, 0, pgNumericNaNSign, 0), nil
	} else if v.InfinityModifier == Infinity {
		return appendNumericHeader(buf, 0, 0, pgNumericPosInfSign, 0), nil
	} else if v.InfinityModifier == NegativeInfinity {
		return appendNumericHeader(buf, 0, 0, pgNumericNegInfSign, 0), nil
	}

	var dscale int16
	if v.Exp < 0 {
		dscale = int16(-v.Exp)
	}
	if v.Int == nil || v.Int.Sign() == 0 {
		return appendNumericHeader(buf, 0, 0, pgNumericPos, dscale), nil
	}

	var sign uint16 = pgNumericPos
	if v.Int.Sign() < 0 {
		sign = pgNumericNeg
	}

	absInt := &big.Int{}
	wholePart := &big.Int{}
	fracPart := &big.Int{}
	remainder := &big.Int{}
	absInt.Abs(v.Int)

	// Normalize absInt and exp to where exp is always a multiple of 4. This makes
	// converting to 16-bit base 10,000 digits easier.
	var exp int32
	switch v.Exp % 4 {
	case 1, -3:
		exp = v.Exp - 1
		absInt.Mul(absInt, big10)
	case 2, -2:
		exp = v.Exp - 2
		absInt.Mul(absInt, big100)
	case 3, -1:
		exp = v.Exp - 3
		absInt.Mul(absInt, big1000)
	default:
		exp = v.Exp
	}

	if exp < 0 {
		divisor := &big.Int{}
		divisor.Exp(big10, big.NewInt(int64(-exp)), nil)
		wholePart.DivMod(absInt, divisor, fracPart)
		fracPart.Add(fracPart, divisor)
	} else {
		wholePart = absInt
	}

	var wholeDigits, fracDigits []int16

	for wholePart.Cmp(big0) != 0 {
		wholePart.DivMod(wholePart, bigNBase, remainder)
		wholeDigits = append(wholeDigits, int16(remainder.Int64()))
	}

	if fracPart.Cmp(big0) != 0 {
		for fracPart.Cmp(big1) != 0 {
			fracPart.DivMod(fracPart, bigNBase, remainder)
			fracDigits = append(fracDigits, int16(remainder.Int64()))
		}
	}

	var weight int16
	if len(wholeDigits) > 0 {
		weight = int16(len(wholeDigits) - 1)
		if exp > 0 {
			weight += int16(exp / 4)
		}
	} else {
		weight = int16(exp/4) - 1 + int16(len(fracDigits))
	}

	buf = appendNumericHeader(buf, int16(len(wholeDigits)+len(fracDigits)), weight, sign, dscale)

	for i := len(wholeDigits) - 1; i >= 0; i-- {
		buf = pgio.AppendInt16(buf, wholeDigits[i])
	}

	for i := len(fracDigits) - 1; i >= 0; i-- {
		buf = pgio.AppendInt16(buf, fracDigits[i])
	}

	return buf, nil
}

func appendNumericHeader(buf []byte, ndigits, weight int16, sign uint16, dscale int16) []byte {
	buf = pgio.AppendInt16(buf, ndigits)
	buf = pgio.AppendInt16(buf, weight)
	buf = pgio.AppendUint16(buf, sign)
	return pgio.AppendInt16(buf, dscale)
}

func (NumericCodec) DecodeBinary(src []byte) (Numeric, error) {
	r := NewValueReader("numeric", src)
	ndigits := r.ReadInt16()
	weight := r.ReadInt16()
	sign := r.ReadUint16()
	dscale := r.ReadInt16()
	if r.Err() != nil {
		return Numeric{}, r.Err()
	}

	var special Numeric
	switch sign {
	case pgNumericPos, pgNumericNeg:
	case pgNumericNaNSign:
		special = Numeric{NaN: true}
	case pgNumericPosInfSign:
		special = Numeric{InfinityModifier: Infinity}
	case pgNumericNegInfSign:
		special = Numeric{InfinityModifier: NegativeInfinity}
	default:
		r.Fail(ErrOutOfRange, fmt.Sprintf("invalid sign 0x%04x", sign))
	}
	if ndigits < 0 {
		r.Fail(ErrLengthMismatch, fmt.Sprintf("invalid digit count %d", ndigits))
	}
	digits := r.ReadBytes(int(ndigits) * 2)
	if err := r.Finish(); err != nil {
		return Numeric{}, err
	}
	if special.NaN || special.InfinityModifier != None {
		return special, nil
	}

	// Zero keeps its display scale so that 0.00 re-encodes as 0.00.
	if ndigits == 0 {
		zero := Numeric{Int: big.NewInt(0)}
		if dscale > 0 {
			zero.Exp = -int32(dscale)
		}
		return zero, nil
	}

	accum := &big.Int{}
	for i := 0; i < len(digits); i += 2 {
		accum.Mul(accum, bigNBase)
		accum.Add(accum, big.NewInt(int64(uint16(digits[i])<<8|uint16(digits[i+1]))))
	}

	exp := (int32(weight) - int32(ndigits) + 1) * 4

	if dscale > 0 {
		fracNBaseDigits := int32(ndigits) - int32(weight) - 1
		fracDecimalDigits := fracNBaseDigits * 4

		if int32(dscale) > fracDecimalDigits {
			multCount := int(int32(dscale) - fracDecimalDigits)
			for i := 0; i < multCount; i++ {
				accum.Mul(accum, big10)
				exp--
			}
		} else if int32(dscale) < fracDecimalDigits {
			divCount := int(fracDecimalDigits - int32(dscale))
			for i := 0; i < divCount; i++ {
				accum.Div(accum, big10)
				exp++
			}
		}
	}

	reduced := &big.Int{}
	remainder := &big.Int{}
	if exp >= 0 {
		for accum.Sign() != 0 {
			reduced.DivMod(accum, big10, remainder)
			if remainder.Cmp(big0) != 0 {
				break
			}
			accum.Set(reduced)
			exp++
		}
	}

	if sign == pgNumericNeg {
		accum.Neg(accum)
	}

	return Numeric{Int: accum, Exp: exp}, nil
}
