package chunk

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeRecord(t *testing.T, rec Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &rec))
	return buf.Bytes()
}

func sampleRecord() Record {
	rec := Record{
		Version:               Version,
		InputFormat:           1,
		SideToMoveOrEnPassant: 1,
		Rule50Count:           12,
		BestQ:                 0.25,
		BestD:                 0.5,
		Visits:                800,
		BestIdx:               42,
	}
	rec.Probabilities[0] = 0.75
	rec.Probabilities[1857] = 0.125
	rec.Planes[0] = 0x0000000000000001
	rec.Planes[103] = 0xFF00000000000000
	return rec
}

func TestRecordSize(t *testing.T) {
	require.Equal(t, RecordSize, binary.Size(Record{}))
	require.Equal(t, RecordSize, len(encodeRecord(t, sampleRecord())))
}

func TestReadRecord(t *testing.T) {
	rec := sampleRecord()
	got, err := ReadRecord(bytes.NewReader(encodeRecord(t, rec)))
	require.NoError(t, err)

	assert.Equal(t, uint32(Version), got.Version)
	assert.Equal(t, uint32(1), got.InputFormat)
	assert.Equal(t, uint8(1), got.SideToMoveOrEnPassant)
	assert.Equal(t, uint8(12), got.Rule50Count)
	assert.InDelta(t, 0.25, got.BestQ, 1e-9)
	assert.Equal(t, uint32(800), got.Visits)
	assert.Equal(t, uint16(42), got.BestIdx)
	assert.InDelta(t, 0.75, got.Probabilities[0], 1e-9)
	assert.InDelta(t, 0.125, got.Probabilities[1857], 1e-9)

	// Planes come back with the per-byte bit order restored
	assert.Equal(t, reverseBitsInBytes(rec.Planes[0]), got.Planes[0])
	assert.Equal(t, reverseBitsInBytes(rec.Planes[103]), got.Planes[103])
}

func TestReadRecord_Truncated(t *testing.T) {
	data := encodeRecord(t, sampleRecord())
	_, err := ReadRecord(bytes.NewReader(data[:100]))
	require.Error(t, err)
}

func TestReverseBitsInBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
	}{
		{0x0000000000000000, 0x0000000000000000},
		{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
		{0x0000000000000001, 0x0000000000000080},
		{0x8000000000000000, 0x0100000000000000},
		{0x0F0F0F0F0F0F0F0F, 0xF0F0F0F0F0F0F0F0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reverseBitsInBytes(tt.in), "reverseBitsInBytes(%#x)", tt.in)
	}
}

func TestReverseBitsInBytes_Involution(t *testing.T) {
	for _, v := range []uint64{0x123456789ABCDEF0, 0xDEADBEEFCAFEF00D, 1, 0x8040201008040201} {
		assert.Equal(t, v, reverseBitsInBytes(reverseBitsInBytes(v)))
	}
}

func TestRecordValid(t *testing.T) {
	rec := sampleRecord()
	assert.True(t, rec.Valid())

	rec.SideToMoveOrEnPassant = 2
	assert.False(t, rec.Valid())
}
