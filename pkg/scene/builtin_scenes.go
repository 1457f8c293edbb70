package scene

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/material"
)

// NewSolidColorsScene creates two large spheres inside a box of colored planes,
// lit by a single point light at the camera
func NewSolidColorsScene() *Scene {
	s := NewScene()

	const red = 0
	blue := s.AddMaterial(material.NewSolidColor(core.Blue))
	yellow := s.AddMaterial(material.NewSolidColor(core.Yellow))
	green := s.AddMaterial(material.NewSolidColor(core.Green))
	magenta := s.AddMaterial(material.NewSolidColor(core.Magenta))

	s.AddSphere(core.NewVec3(-25, 0, 100), 50, red)
	s.AddSphere(core.NewVec3(25, 0, 100), 50, blue)

	s.AddPlane(core.NewVec3(-75, 0, 0), core.NewVec3(1, 0, 0), green)
	s.AddPlane(core.NewVec3(75, 0, 0), core.NewVec3(-1, 0, 0), green)
	s.AddPlane(core.NewVec3(0, -75, 0), core.NewVec3(0, 1, 0), yellow)
	s.AddPlane(core.NewVec3(0, 75, 0), core.NewVec3(0, -1, 0), yellow)
	s.AddPlane(core.NewVec3(0, 0, 125), core.NewVec3(0, 0, -1), magenta)

	s.AddPointLight(core.Zero, 7500, core.White)

	return s
}

// NewLitSpheresScene creates a 3x2 grid of solid spheres in a room lit from front and back
func NewLitSpheresScene() *Scene {
	s := NewScene()
	s.camera.Origin = core.NewVec3(0, 3, -9)
	s.camera.FovAngle = 45

	const red = 0
	blue := s.AddMaterial(material.NewSolidColor(core.Blue))
	yellow := s.AddMaterial(material.NewSolidColor(core.Yellow))
	green := s.AddMaterial(material.NewSolidColor(core.Green))
	magenta := s.AddMaterial(material.NewSolidColor(core.Magenta))

	addRoom(s, green, yellow, magenta)

	s.AddSphere(core.NewVec3(-1.75, 1, 0), 0.75, red)
	s.AddSphere(core.NewVec3(0, 1, 0), 0.75, blue)
	s.AddSphere(core.NewVec3(1.75, 1, 0), 0.75, red)
	s.AddSphere(core.NewVec3(-1.75, 3, 0), 0.75, blue)
	s.AddSphere(core.NewVec3(0, 3, 0), 0.75, red)
	s.AddSphere(core.NewVec3(1.75, 3, 0), 0.75, blue)

	s.AddPointLight(core.NewVec3(0, 5, -5), 70, core.White)
	s.AddPointLight(core.NewVec3(0, 5, 5), 70, core.White)

	return s
}

// NewCookTorranceScene creates metal (bottom row) and plastic (top row) spheres
// with roughness decreasing left to right, in a gray-blue Lambert room
func NewCookTorranceScene() *Scene {
	s := NewScene()
	s.camera.Origin = core.NewVec3(0, 3, -9)
	s.camera.FovAngle = 45

	silver := core.NewVec3(0.972, 0.960, 0.915)
	gray := core.NewVec3(0.75, 0.75, 0.75)

	roughMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 1))
	mediumMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 0.6))
	smoothMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 0.1))
	roughPlastic := s.AddMaterial(material.NewCookTorrance(gray, 0, 1))
	mediumPlastic := s.AddMaterial(material.NewCookTorrance(gray, 0, 0.6))
	smoothPlastic := s.AddMaterial(material.NewCookTorrance(gray, 0, 0.1))

	wall := s.AddMaterial(material.NewLambert(core.NewVec3(0.49, 0.57, 0.57), 1))
	addRoom(s, wall, wall, wall)

	s.AddSphere(core.NewVec3(-1.75, 1, 0), 0.75, roughMetal)
	s.AddSphere(core.NewVec3(0, 1, 0), 0.75, mediumMetal)
	s.AddSphere(core.NewVec3(1.75, 1, 0), 0.75, smoothMetal)
	s.AddSphere(core.NewVec3(-1.75, 3, 0), 0.75, roughPlastic)
	s.AddSphere(core.NewVec3(0, 3, 0), 0.75, mediumPlastic)
	s.AddSphere(core.NewVec3(1.75, 3, 0), 0.75, smoothPlastic)

	s.AddPointLight(core.NewVec3(0, 5, 5), 50, core.NewVec3(1, 0.61, 0.45))    // back
	s.AddPointLight(core.NewVec3(-2.5, 5, -5), 70, core.NewVec3(1, 0.8, 0.45)) // front left
	s.AddPointLight(core.NewVec3(2.5, 2.5, -5), 50, core.NewVec3(0.34, 0.47, 0.68))

	return s
}

// NewLambertPhongScene creates three Lambert-Phong spheres of increasing exponent
// next to a plain Lambert sphere, on a yellow ground
func NewLambertPhongScene() *Scene {
	s := NewScene()
	s.camera.Origin = core.NewVec3(0, 1, -5)
	s.camera.FovAngle = 45

	red := s.AddMaterial(material.NewLambert(core.Red, 1))
	yellow := s.AddMaterial(material.NewLambert(core.Yellow, 1))
	broad := s.AddMaterial(material.NewLambertPhong(core.Blue, 0.5, 0.5, 3))
	medium := s.AddMaterial(material.NewLambertPhong(core.Blue, 0.5, 0.5, 15))
	tight := s.AddMaterial(material.NewLambertPhong(core.Blue, 0.5, 0.5, 50))

	s.AddSphere(core.NewVec3(-2.25, 0.75, 1), 0.75, red)
	s.AddSphere(core.NewVec3(-0.75, 0.75, 1), 0.75, broad)
	s.AddSphere(core.NewVec3(0.75, 0.75, 1), 0.75, medium)
	s.AddSphere(core.NewVec3(2.25, 0.75, 1), 0.75, tight)

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), yellow)

	s.AddPointLight(core.NewVec3(0, 5, 5), 25, core.White)
	s.AddPointLight(core.NewVec3(0, 2.5, -5), 25, core.White)

	return s
}

// NewSunScene creates spheres on a ground plane lit only by a low directional light
func NewSunScene() *Scene {
	s := NewScene()
	s.camera.Origin = core.NewVec3(0, 2, -7)
	s.camera.FovAngle = 60

	ground := s.AddMaterial(material.NewLambert(core.NewVec3(0.8, 0.8, 0.8), 1))
	copper := s.AddMaterial(material.NewCookTorrance(core.NewVec3(0.955, 0.637, 0.538), 1, 0.4))
	plastic := s.AddMaterial(material.NewCookTorrance(core.NewVec3(0.2, 0.5, 0.9), 0, 0.5))
	matte := s.AddMaterial(material.NewLambert(core.NewVec3(0.9, 0.3, 0.2), 1))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)

	s.AddSphere(core.NewVec3(-2, 1, 1), 1, copper)
	s.AddSphere(core.NewVec3(0, 1, 2), 1, plastic)
	s.AddSphere(core.NewVec3(2, 1, 1), 1, matte)

	s.AddDirectionalLight(core.NewVec3(-0.5, 1, -0.3), 2, core.NewVec3(1, 0.95, 0.85))

	return s
}

// addRoom adds the five walls of a 10x10x10 room open toward -Z
func addRoom(s *Scene, sides, floorCeiling, back int) {
	s.AddPlane(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), sides)
	s.AddPlane(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), sides)
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floorCeiling)
	s.AddPlane(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), floorCeiling)
	s.AddPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), back)
}
