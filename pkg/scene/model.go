package scene

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// ErrInvalidModel is returned for model files that parse but describe an
// unusable scene
var ErrInvalidModel = errors.New("invalid scene model")

const defaultMaxBounces = 8

// modelFile is the YAML layout of a scene model
type modelFile struct {
	Background struct {
		Top    []float64 `yaml:"top"`
		Bottom []float64 `yaml:"bottom"`
	} `yaml:"background"`
	MaxBounces int          `yaml:"max_bounces"`
	Spheres    []sphereSpec `yaml:"spheres"`
}

type sphereSpec struct {
	Center   []float64    `yaml:"center"`
	Radius   float64      `yaml:"radius"`
	Material materialSpec `yaml:"material"`
}

type materialSpec struct {
	Type     string    `yaml:"type"`
	Albedo   []float64 `yaml:"albedo"`
	Fuzz     float64   `yaml:"fuzz"`
	IOR      float64   `yaml:"ior"`
	Emission []float64 `yaml:"emission"`
}

// parseModel decodes and checks a YAML model. Unknown keys are rejected.
func parseModel(data []byte) (*modelFile, error) {
	model := &modelFile{MaxBounces: defaultMaxBounces}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(model); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	if model.MaxBounces < 0 {
		return nil, fmt.Errorf("%w: max_bounces must be >= 0, got %d", ErrInvalidModel, model.MaxBounces)
	}
	return model, nil
}

// build converts the parsed model into scene geometry
func (m *modelFile) build() (*world, error) {
	top, err := vec3Field("background.top", m.Background.Top, core.NewVec3(0.5, 0.7, 1.0))
	if err != nil {
		return nil, err
	}
	bottom, err := vec3Field("background.bottom", m.Background.Bottom, core.NewVec3(1, 1, 1))
	if err != nil {
		return nil, err
	}

	w := &world{
		top:        top,
		bottom:     bottom,
		maxBounces: m.MaxBounces,
		spheres:    make([]*Sphere, 0, len(m.Spheres)),
	}
	for i, spec := range m.Spheres {
		field := fmt.Sprintf("spheres[%d]", i)
		center, err := vec3Field(field+".center", spec.Center, core.Vec3{})
		if err != nil {
			return nil, err
		}
		if !(spec.Radius > 0) {
			return nil, fmt.Errorf("%w: %s.radius must be > 0, got %g", ErrInvalidModel, field, spec.Radius)
		}
		mat, err := spec.Material.build(field + ".material")
		if err != nil {
			return nil, err
		}
		w.spheres = append(w.spheres, NewSphere(center, spec.Radius, mat))
	}
	return w, nil
}

func (ms materialSpec) build(field string) (material.Material, error) {
	switch ms.Type {
	case "lambertian":
		albedo, err := vec3Field(field+".albedo", ms.Albedo, core.NewVec3(0.5, 0.5, 0.5))
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := vec3Field(field+".albedo", ms.Albedo, core.NewVec3(0.8, 0.8, 0.8))
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, ms.Fuzz), nil
	case "dielectric":
		if !(ms.IOR > 0) {
			return nil, fmt.Errorf("%w: %s.ior must be > 0, got %g", ErrInvalidModel, field, ms.IOR)
		}
		return material.NewDielectric(ms.IOR), nil
	case "emissive":
		emission, err := vec3Field(field+".emission", ms.Emission, core.Vec3{})
		if err != nil {
			return nil, err
		}
		return material.NewEmissive(emission), nil
	default:
		return nil, fmt.Errorf("%w: %s.type %q is not one of lambertian, metal, dielectric, emissive",
			ErrInvalidModel, field, ms.Type)
	}
}

// vec3Field reads an optional three-component vector
func vec3Field(field string, values []float64, fallback core.Vec3) (core.Vec3, error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 3:
		return core.NewVec3(values[0], values[1], values[2]), nil
	default:
		return core.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidModel, field, len(values))
	}
}
