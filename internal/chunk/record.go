// Package chunk decodes lc0 V6 training chunks out of downloaded tar archives.
package chunk

import (
	"encoding/binary"
	"io"
)

// Version is the only training data format this tool understands.
const Version = 6

// RecordSize is the encoded size of one V6 training record in bytes.
const RecordSize = 8356

// Record is one training position in the V6 format, laid out exactly as
// encoded on the wire (little-endian, no padding).
type Record struct {
	Version               uint32
	InputFormat           uint32
	Probabilities         [1858]float32
	Planes                [104]uint64
	CastlingUsOOO         uint8
	CastlingUsOO          uint8
	CastlingThemOOO       uint8
	CastlingThemOO        uint8
	SideToMoveOrEnPassant uint8
	Rule50Count           uint8
	InvarianceInfo        uint8
	Dummy                 uint8
	RootQ                 float32
	BestQ                 float32
	RootD                 float32
	BestD                 float32
	RootM                 float32
	BestM                 float32
	PliesLeft             float32
	ResultQ               float32
	ResultD               float32
	PlayedQ               float32
	PlayedD               float32
	PlayedM               float32
	OrigQ                 float32
	OrigD                 float32
	OrigM                 float32
	Visits                uint32
	PlayedIdx             uint16
	BestIdx               uint16
	PolicyKLD             float32
	Reserved              uint32
}

// ReadRecord decodes a single record from r. The bitboard planes come out
// with their natural bit order restored.
func ReadRecord(r io.Reader) (*Record, error) {
	var rec Record
	if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
		return nil, err
	}
	for i, plane := range rec.Planes {
		rec.Planes[i] = reverseBitsInBytes(plane)
	}
	return &rec, nil
}

// Valid reports whether the side-to-move byte is in range. lc0's own reader
// asserts the same bound on V6 data.
func (r *Record) Valid() bool {
	return r.SideToMoveOrEnPassant < 2
}

// lc0 stores bitboard planes with the bit order reversed inside every byte:
// https://github.com/search?q=repo%3ALeelaChessZero%2Flc0+ReverseBitsInBytes&type=code
func reverseBitsInBytes(v uint64) uint64 {
	v = ((v >> 1) & 0x5555555555555555) | ((v & 0x5555555555555555) << 1)
	v = ((v >> 2) & 0x3333333333333333) | ((v & 0x3333333333333333) << 2)
	v = ((v >> 4) & 0x0F0F0F0F0F0F0F0F) | ((v & 0x0F0F0F0F0F0F0F0F) << 4)
	return v
}
