// Package numeric encodes numeric and numrange as github.com/cockroachdb/apd values. NaN and the infinities are
// represented by apd.Decimal forms.
package numeric

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/jackc/pgcodec"
)

// DecimalCodec encodes and decodes numeric as *apd.Decimal. A nil *apd.Decimal encodes as zero. Signaling NaN encodes
// as NaN.
type DecimalCodec struct{}

func (DecimalCodec) AppendBinary(buf []byte, v *apd.Decimal) ([]byte, error) {
	var num pgcodec.Numeric
	if v != nil {
		switch v.Form {
		case apd.Finite:
			num.Int = new(big.Int).Set(&v.Coeff)
			if v.Negative {
				num.Int.Neg(num.Int)
			}
			num.Exp = v.Exponent
		case apd.Infinite:
			num.InfinityModifier = pgcodec.Infinity
			if v.Negative {
				num.InfinityModifier = pgcodec.NegativeInfinity
			}
		case apd.NaN, apd.NaNSignaling:
			num.NaN = true
		default:
			return nil, fmt.Errorf("cannot encode apd.Decimal with form %v", v.Form)
		}
	}

	return pgcodec.NumericCodec{}.AppendBinary(buf, num)
}

func (DecimalCodec) DecodeBinary(src []byte) (*apd.Decimal, error) {
	num, err := pgcodec.NumericCodec{}.DecodeBinary(src)
	if err != nil {
		return nil, err
	}

	switch {
	case num.NaN:
		return &apd.Decimal{Form: apd.NaN}, nil
	case num.InfinityModifier == pgcodec.Infinity:
		return &apd.Decimal{Form: apd.Infinite}, nil
	case num.InfinityModifier == pgcodec.NegativeInfinity:
		return &apd.Decimal{Form: apd.Infinite, Negative: true}, nil
	}

	// apd keeps the sign in Negative and requires a non-negative Coeff.
	d := &apd.Decimal{Exponent: num.Exp, Negative: num.Int.Sign() < 0}
	d.Coeff.Abs(num.Int)
	return d, nil
}

// NumrangeCodec returns a codec for numrange with *apd.Decimal bounds.
func NumrangeCodec() pgcodec.RangeCodec[*apd.Decimal] {
	return pgcodec.RangeCodec[*apd.Decimal]{TypeName: "numrange", Element: DecimalCodec{}}
}

// Register replaces the numeric and numrange types in m with ones that use *apd.Decimal.
func Register(m *pgcodec.Map) {
	m.RegisterType(pgcodec.NewType[*apd.Decimal]("numeric", pgcodec.NumericOID, DecimalCodec{}))
	m.RegisterType(pgcodec.NewType[pgcodec.Range[*apd.Decimal]]("numrange", pgcodec.NumrangeOID, NumrangeCodec()))
}
