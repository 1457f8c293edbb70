package loaders

import (
	"fmt"
	"time"

	"github.com/udhos/gwob"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// OBJData contains the triangle data loaded from a Wavefront OBJ file
type OBJData struct {
	Positions []core.Vec3 // Unique vertex positions
	Indices   []int       // Triangle indices (3 per triangle) into Positions
	Groups    []string    // Group names in file order
}

// TriangleCount returns the number of triangles in the data
func (d *OBJData) TriangleCount() int {
	return len(d.Indices) / 3
}

// LoadOBJ loads a Wavefront OBJ file. Polygons are triangulated by the parser,
// normals in the file are ignored and texture coordinates are dropped.
func LoadOBJ(filename string, logger core.Logger) (*OBJData, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	startTime := time.Now()

	options := gwob.ObjParserOptions{
		LogStats:      false,
		Logger:        func(s string) { logger.Printf("obj: %s\n", s) },
		IgnoreNormals: true,
	}

	obj, err := gwob.NewObjFromFile(filename, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", filename, err)
	}

	data, err := fromObj(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read OBJ file %s: %w", filename, err)
	}

	logger.Printf("Loaded OBJ %s: %d vertices, %d triangles in %v\n",
		filename, len(data.Positions), data.TriangleCount(), time.Since(startTime))

	return data, nil
}

// fromObj unpacks the parser's interleaved float32 buffer into positions
func fromObj(obj *gwob.Obj) (*OBJData, error) {
	// Strides are reported in bytes
	stride := obj.StrideSize / 4
	offset := obj.StrideOffsetPosition / 4
	if stride < 3 {
		return nil, fmt.Errorf("unexpected vertex stride %d", stride)
	}

	vertexCount := len(obj.Coord) / stride
	data := &OBJData{
		Positions: make([]core.Vec3, vertexCount),
		Indices:   make([]int, len(obj.Indices)),
		Groups:    make([]string, 0, len(obj.Groups)),
	}

	for i := range vertexCount {
		base := i*stride + offset
		data.Positions[i] = core.NewVec3(obj.Coord64(base), obj.Coord64(base+1), obj.Coord64(base+2))
	}

	if len(obj.Indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(obj.Indices))
	}
	for i, idx := range obj.Indices {
		if idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("index %d out of range [0, %d)", idx, vertexCount)
		}
		data.Indices[i] = idx
	}

	for _, g := range obj.Groups {
		data.Groups = append(data.Groups, g.Name)
	}

	return data, nil
}
