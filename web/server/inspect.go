package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/material"
	"github.com/df07/go-brdf-raytracer/pkg/renderer"
	"github.com/df07/go-brdf-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit           bool                   `json:"hit"`
	MaterialType  string                 `json:"materialType"`
	MaterialIndex int                    `json:"materialIndex"`
	GeometryType  string                 `json:"geometryType"`
	Point         [3]float64             `json:"point"`
	Normal        [3]float64             `json:"normal"`
	Distance      float64                `json:"distance"`
	Properties    map[string]interface{} `json:"properties"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	rgb := renderer.ToRGB(c)
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.SolidColor:
		properties["color"] = hexColor(m.Color)
		return "solid_color", properties

	case *material.Lambert:
		properties["diffuseColor"] = vecJSON(m.DiffuseColor)
		properties["color"] = hexColor(m.DiffuseColor)
		properties["kd"] = m.DiffuseReflectance
		return "lambert", properties

	case *material.LambertPhong:
		properties["diffuseColor"] = vecJSON(m.DiffuseColor)
		properties["color"] = hexColor(m.DiffuseColor)
		properties["kd"] = m.DiffuseReflectance
		properties["ks"] = m.SpecularReflectance
		properties["exponent"] = m.PhongExponent
		return "lambert_phong", properties

	case *material.CookTorrance:
		properties["albedo"] = vecJSON(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["metalness"] = m.Metalness
		properties["roughness"] = m.Roughness
		properties["metal"] = m.IsMetal()
		return "cook_torrance", properties

	default:
		return "unknown", properties
	}
}

// describePrimitive returns the geometry parameters of the referenced primitive
func describePrimitive(sceneObj *scene.Scene, ref scene.PrimitiveRef) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch ref.Kind {
	case scene.SpherePrimitive:
		sphere := sceneObj.Spheres()[ref.Index]
		properties["index"] = ref.Index
		properties["center"] = vecJSON(sphere.Origin)
		properties["radius"] = sphere.Radius
	case scene.PlanePrimitive:
		plane := sceneObj.Planes()[ref.Index]
		properties["index"] = ref.Index
		properties["origin"] = vecJSON(plane.Origin)
		properties["normal"] = vecJSON(plane.Normal)
	}

	return ref.Kind.String(), properties
}

// handleInspect casts the primary ray through one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer sceneObj.Close()

	ray := renderer.NewPrimaryRays(sceneObj.Camera(), req.Width, req.Height).GetRay(pixelX, pixelY)
	hit, ref := sceneObj.GetClosestHitPrimitive(ray)
	if !hit.DidHit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(sceneObj.Material(hit.MaterialIndex))
	geometryType, geometryProps := describePrimitive(sceneObj, ref)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:           true,
		MaterialType:  materialType,
		MaterialIndex: hit.MaterialIndex,
		GeometryType:  geometryType,
		Point:         vecJSON(hit.Origin),
		Normal:        vecJSON(hit.Normal),
		Distance:      hit.T,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
