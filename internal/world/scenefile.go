package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Solids []SolidDef `json:"solids"`
	Actors []ActorDef `json:"actors,omitempty"`
}

// SolidDef is authored collision geometry. Faces are convex polygons in world units
// relative to Position.
type SolidDef struct {
	Name        string         `json:"name,omitempty"`
	Position    [3]float32     `json:"position"`
	Rotation    [3]float32     `json:"rotation,omitzero"` // Euler degrees
	Faces       [][][3]float32 `json:"faces"`
	Transparent bool           `json:"transparent,omitempty"`
	Climbable   *bool          `json:"climbable,omitempty"`
	Collidable  *bool          `json:"collidable,omitempty"`
	Velocity    [3]float32     `json:"velocity,omitzero"`
}

// ActorDef places a registered actor type.
type ActorDef struct {
	Type     string         `json:"type"`
	Position [3]float32     `json:"position"`
	Rotation [3]float32     `json:"rotation,omitzero"` // Euler degrees
	Scale    [3]float32     `json:"scale,omitzero"`
	Props    map[string]any `json:"props,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func array3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// QuaternionFromDegrees converts XYZ Euler angles in degrees.
func QuaternionFromDegrees(euler [3]float32) rl.Quaternion {
	if euler == [3]float32{} {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromEuler(euler[0]*rl.Deg2rad, euler[1]*rl.Deg2rad, euler[2]*rl.Deg2rad)
}

// DegreesFromQuaternion is the inverse of QuaternionFromDegrees.
func DegreesFromQuaternion(q rl.Quaternion) [3]float32 {
	e := rl.QuaternionToEuler(q)
	return [3]float32{e.X * rl.Rad2deg, e.Y * rl.Rad2deg, e.Z * rl.Rad2deg}
}

// --- Loading ---

// LoadSceneFile reads and parses a scene file without touching any world.
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// Build creates the solid. Vertices are recentred on their bounds so the solid's
// position is the geometric centre. Polygons with fewer than three vertices are
// dropped.
func (d SolidDef) Build() *Solid {
	polys := make([][]rl.Vector3, 0, len(d.Faces))
	for _, face := range d.Faces {
		poly := make([]rl.Vector3, len(face))
		for i, v := range face {
			poly[i] = vec3(v)
		}
		polys = append(polys, poly)
	}

	verts, faces, center := BuildMesh(polys)
	s := NewSolid(verts, faces)
	s.SetTransform(rl.Vector3Add(vec3(d.Position), center), QuaternionFromDegrees(d.Rotation), rl.Vector3{X: 1, Y: 1, Z: 1})
	s.Transparent = d.Transparent
	if d.Climbable != nil {
		s.Climbable = *d.Climbable
	}
	if d.Collidable != nil {
		s.Collidable = *d.Collidable
	}
	s.Velocity = vec3(d.Velocity)
	return s
}

// Build creates the actor through the registry and applies the transform.
func (d ActorDef) Build() (Actor, error) {
	a := CreateActor(d.Type, d.Props)
	if a == nil {
		return nil, fmt.Errorf("unknown actor type %q", d.Type)
	}
	scale := vec3(d.Scale)
	if d.Scale == [3]float32{} {
		scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	a.Base().SetTransform(vec3(d.Position), QuaternionFromDegrees(d.Rotation), scale)
	return a, nil
}

// LoadScene adds everything in the scene file to the world. Unknown actor types are
// logged and skipped. The additions are pending until the next ResolveChanges.
func (w *World) LoadScene(path string) error {
	sf, err := LoadSceneFile(path)
	if err != nil {
		return err
	}
	solids, actors := w.AddScene(sf)
	log.Printf("World: loaded %d solids, %d actors from %s", solids, actors, path)
	return nil
}

// AddScene adds the contents of sf and reports how many solids and actors were added.
func (w *World) AddScene(sf *SceneFile) (solids, actors int) {
	for _, def := range sf.Solids {
		w.Add(def.Build())
		solids++
	}
	for _, def := range sf.Actors {
		a, err := def.Build()
		if err != nil {
			log.Printf("World: skipping actor: %v", err)
			continue
		}
		w.Add(a)
		actors++
	}
	return solids, actors
}

// --- Saving ---

// Scene captures the live world as a scene file. Plain solids are written as
// geometry, registered actor types through their serializers; anything else is
// runtime state and is skipped.
func (w *World) Scene() *SceneFile {
	var sf SceneFile
	for _, a := range w.actors {
		b := a.Base()
		if name, props, ok := SerializeActor(a); ok {
			sf.Actors = append(sf.Actors, ActorDef{
				Type:     name,
				Position: array3(b.Position()),
				Rotation: DegreesFromQuaternion(b.Rotation()),
				Scale:    array3(b.Scale()),
				Props:    props,
			})
			continue
		}
		if s, ok := a.(*Solid); ok {
			sf.Solids = append(sf.Solids, solidDef(s))
		}
	}
	return &sf
}

func solidDef(s *Solid) SolidDef {
	d := SolidDef{
		Position:    array3(s.Position()),
		Rotation:    DegreesFromQuaternion(s.Rotation()),
		Transparent: s.Transparent,
		Velocity:    array3(s.Velocity),
	}
	if !s.Climbable {
		d.Climbable = &s.Climbable
	}
	if !s.Collidable {
		d.Collidable = &s.Collidable
	}
	for _, f := range s.LocalFaces {
		face := make([][3]float32, f.VertexCount)
		for i := range face {
			face[i] = array3(s.LocalVertices[f.VertexStart+i])
		}
		d.Faces = append(d.Faces, face)
	}
	return d
}

func (w *World) SaveScene(path string) error {
	data, err := json.MarshalIndent(w.Scene(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}
