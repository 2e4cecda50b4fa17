package datastreams

import (
	"encoding/binary"
	"math/big"

	"github.com/holiman/uint256"
)

// word is the fixed 32-byte unit every report field is encoded in,
// regardless of its logical bit width.
type word [32]byte

const wordSize = 32

// uint192 range: [0, 2^192). int192 range: [-2^191, 2^191).
var (
	twoPow192 = new(big.Int).Lsh(big.NewInt(1), 192)
	maxInt191 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 191), big.NewInt(1))
	minInt191 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 191))
)

func readWord(data []byte, offset int) (word, error) {
	var w word
	if offset+wordSize > len(data) {
		return w, &DataTooShortError{Field: "word"}
	}
	copy(w[:], data[offset:offset+wordSize])
	return w, nil
}

func readUint8(data []byte, offset int) (uint8, error) {
	w, err := readWord(data, offset)
	if err != nil {
		return 0, &DataTooShortError{Field: "uint8"}
	}
	return w[31], nil
}

func encodeUint8(v uint8) word {
	var w word
	w[31] = v
	return w
}

func readUint32(data []byte, offset int) (uint32, error) {
	w, err := readWord(data, offset)
	if err != nil {
		return 0, &DataTooShortError{Field: "uint32"}
	}
	return binary.BigEndian.Uint32(w[28:32]), nil
}

func encodeUint32(v uint32) word {
	var w word
	binary.BigEndian.PutUint32(w[28:32], v)
	return w
}

func readUint64(data []byte, offset int) (uint64, error) {
	w, err := readWord(data, offset)
	if err != nil {
		return 0, &DataTooShortError{Field: "uint64"}
	}
	return binary.BigEndian.Uint64(w[24:32]), nil
}

func encodeUint64(v uint64) word {
	var w word
	binary.BigEndian.PutUint64(w[24:32], v)
	return w
}

func readInt64(data []byte, offset int) (int64, error) {
	w, err := readWord(data, offset)
	if err != nil {
		return 0, &DataTooShortError{Field: "int64"}
	}
	return int64(binary.BigEndian.Uint64(w[24:32])), nil
}

func encodeInt64(v int64) word {
	var w word
	binary.BigEndian.PutUint64(w[24:32], uint64(v))
	return w
}

// readUint192 decodes the low 24 bytes of the word as an unsigned big-endian
// magnitude, via holiman/uint256 (the fixed-width integer type the broader
// example pack's Ethereum-adjacent stack uses for 256-bit words; it equally
// serves as the carrier for this codec's 192-bit unsigned fields).
func readUint192(data []byte, offset int) (*uint256.Int, error) {
	w, err := readWord(data, offset)
	if err != nil {
		return nil, &DataTooShortError{Field: "uint192"}
	}
	return new(uint256.Int).SetBytes(w[8:32]), nil
}

// encodeUint192 fails InvalidLength if v does not fit in 192 bits.
func encodeUint192(v *uint256.Int) (word, error) {
	var w word
	if v.BitLen() > 192 {
		return w, &InvalidLengthError{Field: "uint192"}
	}
	full := v.Bytes32()
	copy(w[8:32], full[8:32])
	return w, nil
}

// readInt192 decodes the low 24 bytes of the word as a two's-complement
// signed magnitude. *big.Int is used directly (justified in DESIGN.md: no
// library in the example pack exposes arbitrary-width signed two's
// complement compatible with uint256.Int).
func readInt192(data []byte, offset int) (*big.Int, error) {
	w, err := readWord(data, offset)
	if err != nil {
		return nil, &DataTooShortError{Field: "int192"}
	}
	sub := w[8:32]
	v := new(big.Int).SetBytes(sub)
	if sub[0]&0x80 != 0 {
		v.Sub(v, twoPow192)
	}
	return v, nil
}

// encodeInt192 sign-extends v across the full 24-byte logical width and
// fails InvalidLength if it does not fit in the signed 192-bit range.
func encodeInt192(v *big.Int) (word, error) {
	var w word
	if v.Cmp(minInt191) < 0 || v.Cmp(maxInt191) > 0 {
		return w, &InvalidLengthError{Field: "int192"}
	}
	var sub [24]byte
	if v.Sign() < 0 {
		twos := new(big.Int).Add(twoPow192, v)
		twos.FillBytes(sub[:])
	} else {
		v.FillBytes(sub[:])
	}
	copy(w[8:32], sub[:])
	return w, nil
}
