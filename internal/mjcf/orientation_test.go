package mjcf

import (
	"math"
	"testing"

	"mjcf-parser/internal/geom"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

// assertSameRotation compares rotations by their action on the basis, so q and -q match.
func assertSameRotation(t *testing.T, want, got mgl64.Quat) {
	t.Helper()
	assert.InDelta(t, 1, got.Len(), 1e-12)
	for _, v := range []mgl64.Vec3{unitX, unitY, unitZ} {
		assertVecNear(t, want.Rotate(v), got.Rotate(v))
	}
}

func orientationOf(t *testing.T, attrs map[Attr]string) (mgl64.Quat, error) {
	t.Helper()
	return resolveOrientation(attrSet{values: attrs}, geom.KindBox, nil)
}

func TestOrientationDefault(t *testing.T) {
	q, err := orientationOf(t, nil)
	require.NoError(t, err)
	assert.Equal(t, mgl64.QuatIdent(), q)
}

func TestOrientationQuat(t *testing.T) {
	q, err := orientationOf(t, map[Attr]string{AttrQuat: "2 0 0 0"})
	require.NoError(t, err)
	assert.Equal(t, mgl64.QuatIdent(), q)

	q, err = orientationOf(t, map[Attr]string{AttrQuat: "1 0 0 1"})
	require.NoError(t, err)
	assertSameRotation(t, mgl64.QuatRotate(math.Pi/2, unitZ), q)

	_, err = orientationOf(t, map[Attr]string{AttrQuat: "0 0 0 0"})
	assert.ErrorIs(t, err, ErrDegenerateOrientation)
}

func TestOrientationAxisAngle(t *testing.T) {
	q, err := orientationOf(t, map[Attr]string{AttrAxisangle: "0 0 2 90"})
	require.NoError(t, err)
	assertVecNear(t, unitY, q.Rotate(unitX))

	q, err = orientationOf(t, map[Attr]string{AttrAxisangle: "1 0 0 180"})
	require.NoError(t, err)
	assertVecNear(t, mgl64.Vec3{0, 0, -1}, q.Rotate(unitZ))

	_, err = orientationOf(t, map[Attr]string{AttrAxisangle: "0 0 0 45"})
	assert.ErrorIs(t, err, ErrDegenerateOrientation)
}

func TestOrientationEulerIsIntrinsicXYZ(t *testing.T) {
	q, err := orientationOf(t, map[Attr]string{AttrEuler: "90 0 0"})
	require.NoError(t, err)
	assertVecNear(t, unitZ, q.Rotate(unitY))

	// Intrinsic X then Y: Z ends up on +X. The extrinsic order would give -Y.
	q, err = orientationOf(t, map[Attr]string{AttrEuler: "90 90 0"})
	require.NoError(t, err)
	assertVecNear(t, unitX, q.Rotate(unitZ))

	q, err = orientationOf(t, map[Attr]string{AttrEuler: "30 -45 60"})
	require.NoError(t, err)
	want := mgl64.QuatRotate(mgl64.DegToRad(30), unitX).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(-45), unitY)).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(60), unitZ))
	assertSameRotation(t, want, q)
}

func TestOrientationXYAxes(t *testing.T) {
	q, err := orientationOf(t, map[Attr]string{AttrXyaxes: "0 1 0 -1 0 0"})
	require.NoError(t, err)
	assertVecNear(t, unitY, q.Rotate(unitX))
	assertVecNear(t, mgl64.Vec3{-1, 0, 0}, q.Rotate(unitY))
	assertVecNear(t, unitZ, q.Rotate(unitZ))

	// Y is made orthogonal to X before building the frame.
	q, err = orientationOf(t, map[Attr]string{AttrXyaxes: "2 0 0 1 3 0"})
	require.NoError(t, err)
	assertSameRotation(t, mgl64.QuatIdent(), q)

	for _, bad := range []string{"1 0 0 2 0 0", "0 0 0 0 1 0", "1 0 0 0 0 0"} {
		_, err = orientationOf(t, map[Attr]string{AttrXyaxes: bad})
		assert.ErrorIs(t, err, ErrDegenerateOrientation, bad)
	}
}

func TestOrientationZAxis(t *testing.T) {
	tests := []struct {
		text string
		want mgl64.Vec3
	}{
		{"0 0 1", mgl64.Vec3{0, 0, 1}},
		{"1 0 0", mgl64.Vec3{1, 0, 0}},
		{"0 0 -1", mgl64.Vec3{0, 0, -1}},
		{"1 1 1", mgl64.Vec3{1, 1, 1}},
		{"0.001 0 -1", mgl64.Vec3{0.001, 0, -1}},
	}
	for _, tt := range tests {
		q, err := orientationOf(t, map[Attr]string{AttrZaxis: tt.text})
		require.NoError(t, err, tt.text)
		assertVecNear(t, tt.want.Normalize(), q.Rotate(unitZ))
	}

	q, err := orientationOf(t, map[Attr]string{AttrZaxis: "0 0 1"})
	require.NoError(t, err)
	assertSameRotation(t, mgl64.QuatIdent(), q)

	_, err = orientationOf(t, map[Attr]string{AttrZaxis: "0 0 0"})
	assert.ErrorIs(t, err, ErrDegenerateOrientation)
}

func TestMinimalRotationKeepsPerpendicularAxisFixed(t *testing.T) {
	q := minimalRotation(unitZ, unitX)
	assertVecNear(t, unitY, q.Rotate(unitY))
}

func TestOrientationMalformed(t *testing.T) {
	for k, text := range map[Attr]string{
		AttrQuat:      "1 0 0",
		AttrAxisangle: "0 0 1",
		AttrEuler:     "1 2 3 4",
		AttrXyaxes:    "1 0 0 0 1",
		AttrZaxis:     "a b c",
	} {
		_, err := orientationOf(t, map[Attr]string{k: text})
		assert.ErrorIs(t, err, ErrAttributeVector, k.String())
	}
}

func TestSphereResolvesOrientation(t *testing.T) {
	q, err := resolveOrientation(attrSet{values: map[Attr]string{AttrZaxis: "1 0 0"}}, geom.KindSphere, nil)
	require.NoError(t, err)
	assertVecNear(t, unitX, q.Rotate(unitZ))
}

func TestSegmentOverridesExplicitOrientation(t *testing.T) {
	seg := &segment{a: mgl64.Vec3{0, 0, 0}, b: mgl64.Vec3{0, 3, 0}}
	q, err := resolveOrientation(attrSet{values: map[Attr]string{AttrEuler: "0 0 90"}}, geom.KindCapsule, seg)
	require.NoError(t, err)
	assertVecNear(t, unitY, q.Rotate(unitZ))
}

func TestPlaneNeverReadsOrientation(t *testing.T) {
	q, err := resolveOrientation(attrSet{values: map[Attr]string{AttrQuat: "0 0 0 0", AttrEuler: "x"}}, geom.KindPlane, nil)
	require.NoError(t, err)
	assert.Equal(t, mgl64.QuatIdent(), q)
}
