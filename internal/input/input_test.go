package input

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotIsIsolatedFromLaterEvents(t *testing.T) {
	s := NewState()
	s.Set(Forward, true)

	snap := s.Snapshot()
	s.Set(Forward, false)
	s.Set(TurnLeft, true)

	assert.True(t, snap.Pressed(Forward))
	assert.False(t, snap.Pressed(TurnLeft))
	assert.True(t, s.Snapshot().Pressed(TurnLeft))
}

func TestSnapshotUnknownAction(t *testing.T) {
	snap := NewSnapshot(Forward)
	assert.False(t, snap.Pressed(Action(-1)))
	assert.False(t, snap.Pressed(actionCount))
}

func TestSetPointerClamps(t *testing.T) {
	s := NewState()
	s.SetPointer(3, -2)
	assert.Equal(t, mgl32.Vec2{1, -1}, s.Snapshot().Pointer())
}

func TestReset(t *testing.T) {
	s := NewState()
	s.Set(Forward, true)
	s.Set(Interact, true)
	s.Reset()
	assert.False(t, s.Snapshot().Any())
}

func TestNormalizePointer(t *testing.T) {
	x, y := NormalizePointer(0, 0, 800, 600)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)

	x, y = NormalizePointer(400, 300, 800, 600)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	x, y = NormalizePointer(10, 10, 0, 600)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "turnRight", TurnRight.String())
	assert.Equal(t, "unknown", Action(42).String())
	assert.Len(t, Actions(), int(actionCount))
}

func TestConcurrentWritersAndSnapshots(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.Set(Action(j%int(actionCount)), (i+j)%2 == 0)
				_ = s.Snapshot()
			}
		}(i)
	}
	wg.Wait()
}
