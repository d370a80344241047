package types

import (
	"encoding/binary"
)

const poolRecordVersion byte = 1

// MarshalPool encodes a pool record.
func MarshalPool(p Pool) []byte {
	bz := make([]byte, 0, 64+len(p.ID.AssetX)+len(p.ID.AssetY)+len(p.Authority))
	bz = append(bz, poolRecordVersion)
	bz = append(bz, p.ID.Bytes()...)
	bz = append(bz, byte(len(p.Authority)))
	bz = append(bz, p.Authority...)
	bz = binary.BigEndian.AppendUint64(bz, p.ReserveX)
	bz = binary.BigEndian.AppendUint64(bz, p.ReserveY)
	bz = binary.BigEndian.AppendUint64(bz, p.LPSupply)
	bz = binary.BigEndian.AppendUint16(bz, p.FeeBps)
	bz = append(bz, boolByte(p.Locked), p.Precision)
	return bz
}

// UnmarshalPool decodes a pool record written by MarshalPool.
func UnmarshalPool(bz []byte) (Pool, error) {
	r := reader{bz: bz}
	if v := r.byte(); v != poolRecordVersion && r.err == nil {
		return Pool{}, ErrInvalidState.Wrapf("unknown pool record version %d", v)
	}

	var p Pool
	p.ID.AssetX = string(r.bytes(int(r.byte())))
	p.ID.AssetY = string(r.bytes(int(r.byte())))
	p.ID.Salt = r.uint64()
	if auth := r.bytes(int(r.byte())); len(auth) > 0 {
		p.Authority = append([]byte{}, auth...)
	}
	p.ReserveX = r.uint64()
	p.ReserveY = r.uint64()
	p.LPSupply = r.uint64()
	p.FeeBps = r.uint16()
	p.Locked = r.bool()
	p.Precision = r.byte()

	if err := r.done(); err != nil {
		return Pool{}, err
	}
	return p, nil
}

// MarshalWindow encodes a price window. Each ceiling is a tag byte followed,
// when set, by its 16-byte value.
func MarshalWindow(w PriceWindow) []byte {
	bz := make([]byte, 0, 8+2*17)
	bz = binary.BigEndian.AppendUint64(bz, w.WindowID)
	for _, c := range []Ceiling{w.BuyingXCeiling, w.BuyingYCeiling} {
		p, ok := c.Get()
		if !ok {
			bz = append(bz, 0)
			continue
		}
		raw := p.Bytes()
		bz = append(bz, 1)
		bz = append(bz, raw[:]...)
	}
	return bz
}

// UnmarshalWindow decodes a price window written by MarshalWindow.
func UnmarshalWindow(bz []byte) (PriceWindow, error) {
	r := reader{bz: bz}
	w := PriceWindow{WindowID: r.uint64()}
	w.BuyingXCeiling = r.ceiling()
	w.BuyingYCeiling = r.ceiling()
	if err := r.done(); err != nil {
		return PriceWindow{}, err
	}
	return w, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// reader consumes a byte slice, latching the first error.
type reader struct {
	bz  []byte
	err error
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.bz) < n {
		r.err = ErrInvalidState.Wrapf("record truncated: need %d bytes, have %d", n, len(r.bz))
		return nil
	}
	out := r.bz[:n]
	r.bz = r.bz[n:]
	return out
}

func (r *reader) byte() byte {
	if b := r.bytes(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) uint16() uint16 {
	if b := r.bytes(2); b != nil {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

func (r *reader) uint64() uint64 {
	if b := r.bytes(8); b != nil {
		return binary.BigEndian.Uint64(b)
	}
	return 0
}

func (r *reader) bool() bool {
	switch b := r.byte(); {
	case r.err != nil:
		return false
	case b > 1:
		r.err = ErrInvalidState.Wrapf("invalid boolean byte %d", b)
		return false
	default:
		return b == 1
	}
}

func (r *reader) ceiling() Ceiling {
	switch tag := r.byte(); {
	case r.err != nil:
		return NoCeiling()
	case tag == 0:
		return NoCeiling()
	case tag == 1:
		var raw [16]byte
		copy(raw[:], r.bytes(16))
		if r.err != nil {
			return NoCeiling()
		}
		return SomeCeiling(FixedPriceFromBytes(raw))
	default:
		r.err = ErrInvalidState.Wrapf("invalid ceiling tag %d", tag)
		return NoCeiling()
	}
}

func (r *reader) done() error {
	if r.err != nil {
		return r.err
	}
	if len(r.bz) != 0 {
		return ErrInvalidState.Wrapf("%d trailing bytes in record", len(r.bz))
	}
	return nil
}
