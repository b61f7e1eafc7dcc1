package pgcodec

import (
	"fmt"
	"net/netip"
	"strconv"
)

// Address family values as transmitted by PostgreSQL. They are PGSQL_AF_INET and PGSQL_AF_INET6 from
// src/include/utils/inet.h, not the platform's AF_INET values.
const (
	FamilyInet  uint8 = 2
	FamilyInet6 uint8 = 3
)

// Cidr is a PostgreSQL cidr or inet value in wire form.
type Cidr struct {
	Family uint8
	Bits   uint8

	// IsCIDR is true for cidr values and false for inet values.
	IsCIDR bool

	// Addr holds 4 bytes for FamilyInet and 16 bytes for FamilyInet6.
	Addr []byte
}

// CidrFromPrefix builds a Cidr from prefix.
func CidrFromPrefix(prefix netip.Prefix, isCIDR bool) Cidr {
	addr := prefix.Addr()
	family := FamilyInet6
	if addr.Is4() {
		family = FamilyInet
	}
	return Cidr{
		Family: family,
		Bits:   uint8(prefix.Bits()),
		IsCIDR: isCIDR,
		Addr:   addr.AsSlice(),
	}
}

// Prefix converts c to a netip.Prefix. ok is false if the address bytes do not form a valid address.
func (c Cidr) Prefix() (prefix netip.Prefix, ok bool) {
	addr, ok := netip.AddrFromSlice(c.Addr)
	if !ok {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(addr, int(c.Bits)), true
}

// String renders c the way PostgreSQL does. inet values with a full length mask omit the mask.
func (c Cidr) String() string {
	addr, ok := netip.AddrFromSlice(c.Addr)
	if !ok {
		return fmt.Sprintf("invalid address %x/%d", c.Addr, c.Bits)
	}
	if !c.IsCIDR && int(c.Bits) == addr.BitLen() {
		return addr.String()
	}
	return addr.String() + "/" + strconv.Itoa(int(c.Bits))
}

// CidrCodec encodes and decodes cidr and inet.
type CidrCodec struct{}

// AppendBinary encodes v. The family written is the one implied by the address length and Bits is clamped to the
// address width. An address that is neither 4 nor 16 bytes is an error.
func (CidrCodec) AppendBinary(buf []byte, v Cidr) ([]byte, error) {
	var family uint8
	switch len(v.Addr) {
	case 4:
		family = FamilyInet
	case 16:
		family = FamilyInet6
	default:
		return nil, newEncodeError("cidr", ErrLengthMismatch, fmt.Sprintf("address must be 4 or 16 bytes, got %d", len(v.Addr)))
	}

	bits := v.Bits
	if maxBits := uint8(len(v.Addr) * 8); bits > maxBits {
		bits = maxBits
	}

	buf = append(buf, family, bits)
	buf = appendBool(buf, v.IsCIDR)
	buf = append(buf, byte(len(v.Addr)))
	return append(buf, v.Addr...), nil
}

func (CidrCodec) DecodeBinary(src []byte) (Cidr, error) {
	r := NewValueReader("cidr", src)
	family := r.ReadUint8()
	bits := r.ReadUint8()
	isCIDR := r.ReadUint8() != 0
	nb := r.ReadUint8()
	if r.Err() != nil {
		return Cidr{}, r.Err()
	}

	var width int
	switch family {
	case FamilyInet:
		width = 4
	case FamilyInet6:
		width = 16
	default:
		r.Fail(ErrLengthMismatch, fmt.Sprintf("unknown address family %d", family))
		return Cidr{}, r.Err()
	}
	if int(nb) != width {
		r.Fail(ErrLengthMismatch, fmt.Sprintf("address family %d requires %d address bytes, declared %d", family, width, nb))
		return Cidr{}, r.Err()
	}
	if int(bits) > width*8 {
		r.Fail(ErrLengthMismatch, fmt.Sprintf("invalid mask length %d for address family %d", bits, family))
		return Cidr{}, r.Err()
	}

	addr := r.ReadBytes(int(nb))
	if err := r.Finish(); err != nil {
		return Cidr{}, err
	}

	return Cidr{
		Family: family,
		Bits:   bits,
		IsCIDR: isCIDR,
		Addr:   append([]byte(nil), addr...),
	}, nil
}
