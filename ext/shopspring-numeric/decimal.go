// Package numeric encodes numeric and numrange as github.com/shopspring/decimal values.
package numeric

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgcodec"
	"github.com/shopspring/decimal"
)

// DecimalCodec encodes and decodes numeric as decimal.Decimal. decimal.Decimal has no NaN or infinity, so decoding
// those values fails with pgcodec.ErrOutOfRange.
type DecimalCodec struct{}

func (DecimalCodec) AppendBinary(buf []byte, v decimal.Decimal) ([]byte, error) {
	// For now at least, implement this in terms of pgcodec.Numeric
	exp := v.Exponent()
	coeff, ok := new(big.Int).SetString(v.Mul(decimal.New(1, -exp)).String(), 10)
	if !ok {
		return nil, fmt.Errorf("cannot convert %v to numeric", v)
	}

	return pgcodec.NumericCodec{}.AppendBinary(buf, pgcodec.Numeric{Int: coeff, Exp: exp})
}

func (DecimalCodec) DecodeBinary(src []byte) (decimal.Decimal, error) {
	num, err := pgcodec.NumericCodec{}.DecodeBinary(src)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if num.NaN || num.InfinityModifier != pgcodec.None {
		return decimal.Decimal{}, &pgcodec.Error{
			TypeName: "numeric",
			Kind:     pgcodec.ErrOutOfRange,
			Detail:   fmt.Sprintf("%s cannot be represented by decimal.Decimal", num),
		}
	}

	return decimal.NewFromBigInt(num.Int, num.Exp), nil
}

// NumrangeCodec returns a codec for numrange with decimal.Decimal bounds.
func NumrangeCodec() pgcodec.RangeCodec[decimal.Decimal] {
	return pgcodec.RangeCodec[decimal.Decimal]{TypeName: "numrange", Element: DecimalCodec{}}
}

// Register replaces the numeric and numrange types in m with ones that use decimal.Decimal.
func Register(m *pgcodec.Map) {
	m.RegisterType(pgcodec.NewType[decimal.Decimal]("numeric", pgcodec.NumericOID, DecimalCodec{}))
	m.RegisterType(pgcodec.NewType[pgcodec.Range[decimal.Decimal]]("numrange", pgcodec.NumrangeOID, NumrangeCodec()))
}
