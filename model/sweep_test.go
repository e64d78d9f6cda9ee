package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func radialAt(azimuth uint16) *Radial {
	return &Radial{AzimuthNumber: azimuth, ElevationNumber: 1}
}

func TestSweepMergeSortsByAzimuth(t *testing.T) {
	a := &Sweep{ElevationNumber: 1, Radials: []*Radial{radialAt(3), radialAt(1)}}
	b := &Sweep{ElevationNumber: 1, Radials: []*Radial{radialAt(2), radialAt(4)}}

	merged, err := a.Merge(b)
	require.NoError(t, err)
	require.Len(t, merged.Radials, 4)

	var azimuths []uint16
	for _, r := range merged.Radials {
		azimuths = append(azimuths, r.AzimuthNumber)
	}
	assert.Equal(t, []uint16{1, 2, 3, 4}, azimuths)
}

func TestSweepMergeElevationMismatch(t *testing.T) {
	a := &Sweep{ElevationNumber: 1, Radials: []*Radial{radialAt(1)}}
	b := &Sweep{ElevationNumber: 2, Radials: []*Radial{radialAt(2)}}

	_, err := a.Merge(b)
	require.Error(t, err)
	var mismatch *ElevationMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint8(1), mismatch.A)
	assert.Equal(t, uint8(2), mismatch.B)
}

func TestSweepElevationAngleMedian(t *testing.T) {
	s := &Sweep{
		ElevationNumber: 1,
		Radials: []*Radial{
			{ElevationAngleDeg: 0.5},
			{ElevationAngleDeg: 0.6},
			{ElevationAngleDeg: 0.4},
		},
	}
	assert.InDelta(t, 0.5, s.ElevationAngleDeg(), 0.0001)
}
