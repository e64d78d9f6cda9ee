package realtime

import (
	"testing"

	"github.com/jddeal/nexrad/model"
	"github.com/stretchr/testify/assert"
)

func vcpWithHalfDegreeFlags(flags ...bool) *model.VolumeCoveragePattern {
	vcp := &model.VolumeCoveragePattern{}
	for _, half := range flags {
		control := uint8(0)
		if half {
			control = 0x01
		}
		vcp.Elevations = append(vcp.Elevations, model.ElevationCut{SuperResolutionControl: control})
	}
	return vcp
}

func TestElevationChunkMapperFinalSequence(t *testing.T) {
	vcp := vcpWithHalfDegreeFlags(false, true)
	mapper := NewElevationChunkMapper(vcp)

	assert.Equal(t, 11, mapper.FinalSequence())
	assert.Equal(t, 1, mapper.ElevationOf(2))
	assert.Equal(t, 2, mapper.ElevationOf(5))
	assert.Equal(t, 2, mapper.ElevationOf(11))
}

func TestElevationChunkMapperMetadataChunk(t *testing.T) {
	vcp := vcpWithHalfDegreeFlags(false, true)
	mapper := NewElevationChunkMapper(vcp)
	assert.Equal(t, 0, mapper.ElevationOf(1))
}

func TestElevationChunkMapperAllHalfDegree(t *testing.T) {
	vcp := vcpWithHalfDegreeFlags(true, true, true)
	mapper := NewElevationChunkMapper(vcp)
	// metadata(1) + 6 + 6 + 6 + end(1) = 20
	assert.Equal(t, 20, mapper.FinalSequence())
	assert.Equal(t, 1, mapper.ElevationOf(2))
	assert.Equal(t, 1, mapper.ElevationOf(7))
	assert.Equal(t, 2, mapper.ElevationOf(8))
	assert.Equal(t, 3, mapper.ElevationOf(20))
}
