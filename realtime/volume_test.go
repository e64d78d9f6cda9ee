package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeIndexNextWraps(t *testing.T) {
	v, err := NewVolumeIndex(999)
	assert.NoError(t, err)
	assert.Equal(t, VolumeIndex(1), v.Next())
}

func TestVolumeIndexNextOrdinary(t *testing.T) {
	v, _ := NewVolumeIndex(50)
	assert.Equal(t, VolumeIndex(51), v.Next())
}

func TestVolumeIndexPrevWraps(t *testing.T) {
	v, _ := NewVolumeIndex(1)
	assert.Equal(t, VolumeIndex(999), v.Prev())
}

func TestNewVolumeIndexOutOfRange(t *testing.T) {
	_, err := NewVolumeIndex(0)
	assert.Error(t, err)
	_, err = NewVolumeIndex(1000)
	assert.Error(t, err)
}
