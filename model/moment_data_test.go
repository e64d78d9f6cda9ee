package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMomentDataGate8Bit(t *testing.T) {
	m := MomentData{GateCount: 3, WordSize: 8, Raw: []byte{10, 20, 30}, Scale: 2, Offset: 0}
	assert.Equal(t, uint16(10), m.Gate(0))
	assert.Equal(t, uint16(30), m.Gate(2))
	assert.InDelta(t, 5.0, m.Decode(0).Value, 0.0001)
}

func TestMomentDataGate16Bit(t *testing.T) {
	m := MomentData{GateCount: 2, WordSize: 16, Raw: []byte{0x01, 0x02, 0x00, 0x64}}
	assert.Equal(t, uint16(0x0102), m.Gate(0))
	assert.Equal(t, uint16(0x0064), m.Gate(1))
}

func TestMomentDataValuesLength(t *testing.T) {
	m := MomentData{GateCount: 4, WordSize: 8, Raw: []byte{0, 1, 5, 10}, Scale: 1, Offset: 0}
	values := m.Values()
	assert.Len(t, values, 4)
	assert.Equal(t, KindBelowThreshold, values[0].Kind)
	assert.Equal(t, KindRangeFolded, values[1].Kind)
	assert.Equal(t, KindValue, values[2].Kind)
}

func TestMomentDataGateOutOfRange(t *testing.T) {
	m := MomentData{GateCount: 1, WordSize: 8, Raw: []byte{42}}
	assert.Equal(t, uint16(0), m.Gate(5))
	assert.Equal(t, uint16(0), m.Gate(-1))
}
