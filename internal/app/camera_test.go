package app

import (
	"testing"

	"collatz-ant/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestCameraView(t *testing.T) {
	cam := Camera{Cells: 30}
	v := cam.View()
	assert.Equal(t, 30, v.Width())
	assert.Equal(t, 30, v.Height())
	assert.True(t, v.Contains(core.Point{}))
	assert.Equal(t, core.Point{X: -15, Y: -15}, v.Min)
}

func TestCameraPanStopsFollowing(t *testing.T) {
	cam := Camera{Cells: 5, Follow: true}
	cam.Track(core.Point{X: 3, Y: 4})
	assert.Equal(t, core.Point{X: 3, Y: 4}, cam.Center)

	cam.Pan(-1, 0)
	assert.False(t, cam.Follow)
	cam.Track(core.Point{X: 9, Y: 9})
	assert.Equal(t, core.Point{X: 2, Y: 4}, cam.Center)
}
