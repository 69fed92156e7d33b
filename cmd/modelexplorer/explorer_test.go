package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"mjcf-parser/internal/config"
	"mjcf-parser/internal/diag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

const sceneXML = `<mujoco model="scene">
	<worldbody>
		<geom name="floor" type="plane"/>
		<geom name="rod" type="capsule" fromto="0 0 0 0 0 2" size="0.1" rgba="1 0 0 1"/>
		<geom type="box" size="1 2 3" pos="0 0 5"/>
	</worldbody>
</mujoco>`

func writeModel(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.xml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func observedApp(t *testing.T) (*app, *observer.ObservedLogs, *bytes.Buffer) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	return newApp(config.Default(), config.DefaultPath, zap.New(core), &out), logs, &out
}

func TestInspectPrintsDescriptors(t *testing.T) {
	a, _, out := observedApp(t)
	require.NoError(t, a.commands(&bytes.Buffer{}).Execute([]string{"inspect", writeModel(t, sceneXML)}))

	var got modelView
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "scene", got.Model)
	require.Len(t, got.Geoms, 3)

	assert.Equal(t, "plane", got.Geoms[0].Type)
	assert.Empty(t, got.Geoms[0].Size)

	rod := got.Geoms[1]
	assert.Equal(t, "capsule", rod.Type)
	assert.Equal(t, []float64{0.1, 1}, rod.Size)
	assert.Equal(t, [3]float64{0, 0, 1}, rod.Pos)
	assert.Equal(t, [4]float64{0.5, 0.5, 0.5, 1}, rod.RGBA)

	box := got.Geoms[2]
	assert.Equal(t, "2", box.Name)
	assert.False(t, box.Named)
	assert.Equal(t, []float64{1, 2, 3}, box.Size)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, box.Quat)
}

func TestCheckCountsWarnings(t *testing.T) {
	a, logs, out := observedApp(t)
	path := writeModel(t, sceneXML)
	require.NoError(t, a.commands(&bytes.Buffer{}).Execute([]string{"check", path}))
	assert.Contains(t, out.String(), `ok, model "scene", 3 geoms, 1 warnings`)

	warned := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warned, 1)
	assert.Equal(t, path, warned[0].ContextMap()["model_file"])
	assert.Equal(t, "rgba", warned[0].ContextMap()["attribute"])

	a, _, _ = observedApp(t)
	assert.ErrorIs(t, a.commands(&bytes.Buffer{}).Execute([]string{"check", "-strict", path}), errWarnings)
}

func TestCheckReportsParseError(t *testing.T) {
	a, logs, _ := observedApp(t)
	err := a.commands(&bytes.Buffer{}).Execute([]string{"check", writeModel(t, `<mujoco><worldbody><joint/></worldbody></mujoco>`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worldbody has invalid children: joint")

	assert.Equal(t, 1, a.recorder.Count(diag.LevelError))
	failed := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, failed, 1)
	assert.Equal(t, "Model parse failed", failed[0].Message)
	assert.Contains(t, failed[0].ContextMap()["error"], "joint")
}

func TestInitWritesEffectiveConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config", "explorer.yaml")
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"-config", cfgPath, "-log-level", "error", "init"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "wrote "+cfgPath)
	got, err := config.Load(cfgPath)
	require.NoError(t, err)
	want := config.Default()
	want.LogLevel = "error"
	assert.Equal(t, want, got)

	assert.Equal(t, 1, run([]string{"-config", cfgPath, "init"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "already exists")
	assert.Equal(t, 0, run([]string{"-config", cfgPath, "-log-level", "debug", "init", "-force"}, &stdout, &stderr))
	got, err = config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", got.LogLevel)

	assert.Equal(t, 2, run([]string{"-config", cfgPath, "init", "extra"}, &stdout, &stderr))
}

func TestRunExitStatus(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "none.yaml")
	good := writeModel(t, sceneXML)
	bad := writeModel(t, `<robot/>`)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-config", cfgPath, "-log-level", "error", "check", good}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "3 geoms")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-config", cfgPath, "-log-level", "error", "check", bad}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "missing required tag mujoco")

	assert.Equal(t, 2, run([]string{"-config", cfgPath, "-log-level", "error"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-config", cfgPath, "-log-level", "error", "grid"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-config", cfgPath, "-log-level", "error", "check"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-config", cfgPath, "-log-level", "loud", "check", good}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-config", cfgPath, "-log-level", "error", "check", "missing.xml"}, &stdout, &stderr))
}

func TestLogFileMirrorsDiagnostics(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "explorer.txt")
	cfg := config.Default()
	cfg.LogFile = logPath
	var out bytes.Buffer
	a := newApp(cfg, config.DefaultPath, zap.NewNop(), &out)
	require.NoError(t, a.commands(&bytes.Buffer{}).Execute([]string{"check", writeModel(t, sceneXML)}))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "warn rgba attribute is currently unsupported")
}
