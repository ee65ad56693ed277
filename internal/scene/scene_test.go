package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/geometry"
)

func sampleScene() *Scene {
	return New(100,
		geometry.Box(0, 0, 100, 100, 1),
		geometry.Gaze{Start: geometry.Point{X: 50, Y: 10}, End: geometry.Point{X: 50, Y: 90}},
		[]geometry.BoundingBox{
			geometry.Box(40, 40, 60, 60, 0.9),
			geometry.Box(200, 200, 210, 210, 0.9),
		})
}

func TestGenerator_ObjectBounds(t *testing.T) {
	g := NewGenerator(1)
	for i := 0; i < 1000; i++ {
		b := g.Object(50)
		assert.GreaterOrEqual(t, b.XMin, 0.0)
		assert.Less(t, b.XMin, b.XMax)
		assert.Less(t, b.XMax, 50.0)
		assert.GreaterOrEqual(t, b.YMin, 0.0)
		assert.Less(t, b.YMin, b.YMax)
		assert.Less(t, b.YMax, 50.0)
		assert.GreaterOrEqual(t, b.Confidence, 0.0)
		assert.Less(t, b.Confidence, 1.0)
	}
}

func TestGenerator_GazeInsideBox(t *testing.T) {
	g := NewGenerator(2)
	box := geometry.Box(10, 20, 14, 22, 1)
	for i := 0; i < 500; i++ {
		gaze, err := g.Gaze(box)
		require.NoError(t, err)
		assert.False(t, gaze.Degenerate())
		for _, p := range []geometry.Point{gaze.Start, gaze.End} {
			assert.GreaterOrEqual(t, p.X, 10.0)
			assert.Less(t, p.X, 14.0)
			assert.GreaterOrEqual(t, p.Y, 20.0)
			assert.Less(t, p.Y, 22.0)
		}
	}
}

func TestGenerator_GazeTooSmall(t *testing.T) {
	g := NewGenerator(3)
	_, err := g.Gaze(geometry.Box(5, 5, 6, 6, 1))
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
}

func TestGenerator_SceneIsReproducible(t *testing.T) {
	a, err := NewGenerator(42).Scene(700, 10)
	require.NoError(t, err)
	b, err := NewGenerator(42).Scene(700, 10)
	require.NoError(t, err)

	assert.Len(t, a.Objects, 10)
	assert.Equal(t, a.Objects, b.Objects)
	assert.Equal(t, a.Context, b.Context)
	assert.Equal(t, a.Gaze, b.Gaze)
	assert.NotEqual(t, a.ID, b.ID)
	require.NoError(t, a.Validate())
}

func TestGenerator_SceneRejectsBadArgs(t *testing.T) {
	g := NewGenerator(0)
	_, err := g.Scene(2, 1)
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
	_, err = g.Scene(100, -1)
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
	_, err = g.Scene(MaxImageSize+1, 1)
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
	_, err = g.Scene(100, MaxObjects+1)
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
	_, err = g.Scene(100, 1<<62)
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
}

func TestGenerator_FOVDegree(t *testing.T) {
	g := NewGenerator(9)
	for i := 0; i < 200; i++ {
		d := g.FOVDegree()
		assert.GreaterOrEqual(t, d, 30.0)
		assert.Less(t, d, 90.0)
		require.NoError(t, fov.Config{FOVDegree: d, ConfThreshold: 0.5, CountThreshold: 1}.Validate())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scene)
	}{
		{"zero size", func(s *Scene) { s.ImageSize = 0 }},
		{"oversized", func(s *Scene) { s.ImageSize = MaxImageSize + 1 }},
		{"bad id", func(s *Scene) { s.ID = "not-a-uuid" }},
		{"degenerate gaze", func(s *Scene) { s.Gaze.End = s.Gaze.Start }},
		{"inverted context", func(s *Scene) { s.Context.XMin = 200 }},
		{"inverted object", func(s *Scene) { s.Objects[0].YMax = 0 }},
		{"confidence above one", func(s *Scene) { s.Objects[1].Confidence = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleScene()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), fov.ErrInvalidInput)
		})
	}

	assert.NoError(t, sampleScene().Validate())
}

func TestSaveLoad(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene"+ext)
			want := sampleScene()

			require.NoError(t, Save(path, want))
			got, err := Load(path)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("scene.toml")
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_JSONSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing gaze", `{"image_size": 10, "context": {"xmin":0,"ymin":0,"xmax":10,"ymax":10}, "objects": []}`},
		{"string coordinate", `{"image_size": 10, "context": {"xmin":"0","ymin":0,"xmax":10,"ymax":10},
			"gaze": {"start":{"x":1,"y":1},"end":{"x":2,"y":2}}, "objects": []}`},
		{"unknown field", `{"image_size": 10, "fov": 30, "context": {"xmin":0,"ymin":0,"xmax":10,"ymax":10},
			"gaze": {"start":{"x":1,"y":1},"end":{"x":2,"y":2}}, "objects": []}`},
		{"confidence above one", `{"image_size": 10, "context": {"xmin":0,"ymin":0,"xmax":10,"ymax":10},
			"gaze": {"start":{"x":1,"y":1},"end":{"x":2,"y":2}}, "objects": [{"xmin":0,"ymin":0,"xmax":1,"ymax":1,"conf":2}]}`},
		{"oversized image", `{"image_size": 100000, "context": {"xmin":0,"ymin":0,"xmax":10,"ymax":10},
			"gaze": {"start":{"x":1,"y":1},"end":{"x":2,"y":2}}, "objects": []}`},
		{"not json", `{image_size`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), FormatJSON)
			assert.ErrorIs(t, err, fov.ErrInvalidInput)
		})
	}
}

func TestDecode_YAML(t *testing.T) {
	doc := `
image_size: 100
context: {xmin: 0, ymin: 0, xmax: 100, ymax: 100, conf: 1}
gaze:
  start: {x: 50, y: 10}
  end: {x: 50, y: 90}
objects:
  - {xmin: 40, ymin: 40, xmax: 60, ymax: 60, conf: 0.9}
`
	s, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.ID)
	require.Len(t, s.Objects, 1)
	assert.Equal(t, 0.9, s.Objects[0].Confidence)

	c, err := fov.New(fov.DefaultConfig())
	require.NoError(t, err)
	res, err := s.Classify(c)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Intersecting)
}

func TestDecode_YAMLUnknownKey(t *testing.T) {
	_, err := Decode([]byte("image_size: 10\nzoom: 2\n"), FormatYAML)
	assert.ErrorIs(t, err, fov.ErrInvalidInput)
}

func TestNew_AssignsUUID(t *testing.T) {
	s := sampleScene()
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
}
