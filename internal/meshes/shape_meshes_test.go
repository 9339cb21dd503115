package meshes

import (
	"testing"

	"StillLife3D/internal/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestDrawUnloadedMeshWarnsOncePerKind(t *testing.T) {
	logs := observeLogs(t)
	shapes := NewShapeMeshes()

	for frame := 0; frame < 3; frame++ {
		shapes.DrawMesh(HalfTorus)
		shapes.DrawMesh(Sphere)
	}

	warnings := logs.FilterMessage("Draw of unloaded mesh skipped").All()
	if assert.Len(t, warnings, 2) {
		assert.Equal(t, "half_torus", warnings[0].ContextMap()["kind"])
		assert.Equal(t, "sphere", warnings[1].ContextMap()["kind"])
	}
	assert.False(t, shapes.Loaded(HalfTorus))
}

func TestLoadUnknownKindFails(t *testing.T) {
	shapes := NewShapeMeshes()

	err := shapes.LoadMesh(Kind(99))

	assert.ErrorIs(t, err, ErrUnknownMesh)
	assert.False(t, shapes.Loaded(Kind(99)))
}
