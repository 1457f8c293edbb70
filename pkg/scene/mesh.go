package scene

import (
	"fmt"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/geometry"
	"github.com/df07/go-brdf-raytracer/pkg/loaders"
)

// AddOBJMesh loads an OBJ file into a new triangle mesh.
// The mesh is stored and counted but not rendered, since triangle intersection is unsupported.
func (s *Scene) AddOBJMesh(filename string, cullMode geometry.CullMode, materialIndex int, logger core.Logger) (*geometry.TriangleMesh, error) {
	s.mustNotBeFinalized("AddOBJMesh")

	data, err := loaders.LoadOBJ(filename, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}

	mesh := s.AddTriangleMesh(cullMode, materialIndex)
	mesh.Positions = data.Positions
	mesh.Indices = data.Indices
	mesh.CalculateNormals()
	mesh.UpdateTransforms()

	return mesh, nil
}
