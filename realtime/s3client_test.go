package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewS3ClientConstructs(t *testing.T) {
	client := NewS3Client("unidata-nexrad-level2-chunks")
	assert.NotNil(t, client)
	assert.Equal(t, "unidata-nexrad-level2-chunks", client.bucket)
	assert.NotNil(t, client.svc)
}
