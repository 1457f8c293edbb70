package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// writeTestOBJ writes content to a temporary OBJ file and returns its path
func writeTestOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestLoadOBJ_Triangle(t *testing.T) {
	path := writeTestOBJ(t, `# single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	data, err := LoadOBJ(path, core.NopLogger{})
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if data.TriangleCount() != 1 {
		t.Fatalf("Expected 1 triangle, got %d", data.TriangleCount())
	}
	if len(data.Positions) != 3 {
		t.Fatalf("Expected 3 vertices, got %d", len(data.Positions))
	}

	expected := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}
	for i, idx := range data.Indices {
		if data.Positions[idx] != expected[i] {
			t.Errorf("Corner %d: expected %v, got %v", i, expected[i], data.Positions[idx])
		}
	}
}

func TestLoadOBJ_QuadIsTriangulated(t *testing.T) {
	path := writeTestOBJ(t, `o quad
v -1 0 -1
v 1 0 -1
v 1 0 1
v -1 0 1
f 1 2 3 4
`)

	data, err := LoadOBJ(path, nil)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if data.TriangleCount() != 2 {
		t.Fatalf("Expected the quad to become 2 triangles, got %d", data.TriangleCount())
	}
	for i, idx := range data.Indices {
		if p := data.Positions[idx]; p.Y != 0 {
			t.Errorf("Index %d: vertex %v left the y=0 plane", i, p)
		}
	}
}

func TestLoadOBJ_NonExistentFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), nil)
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
