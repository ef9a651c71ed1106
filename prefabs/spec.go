package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/gravity"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/reticle"
	"github.com/milk9111/grapple/surface"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	GrappleToolFile = "grapple_tool.yaml"
	ReticleFile     = "reticle.yaml"
	LevelFile       = "level.yaml"
)

var ErrUnknownLayer = errors.New("prefabs: unknown layer")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type GrappleToolSpec struct {
	Name            string              `yaml:"name"`
	MovementMode    string              `yaml:"movement_mode"`
	PermitByDefault bool                `yaml:"permit_by_default"`
	MaxRange        *float64            `yaml:"max_range"`
	Layers          []string            `yaml:"layers"`
	HaltDistance    *float64            `yaml:"halt_distance"`
	Arc             ArcSpec             `yaml:"arc"`
	ConstantTime    ConstantTimeSpec    `yaml:"constant_time"`
	ConstantSpeed   ConstantSpeedSpec   `yaml:"constant_speed"`
	Up              *VectorSpec         `yaml:"up"`
	Gravity         GravityTrackingSpec `yaml:"gravity"`
}

type ArcSpec struct {
	Enabled bool     `yaml:"enabled"`
	Height  *float64 `yaml:"height"`
}

type ConstantTimeSpec struct {
	TimeToReach *float64 `yaml:"time_to_reach"`
}

type ConstantSpeedSpec struct {
	Speed              *float64 `yaml:"speed"`
	VerticalErrorScale *float64 `yaml:"vertical_error_scale"`
}

// GravityTrackingSpec configures the tracker attached to the grappling body.
type GravityTrackingSpec struct {
	UpdateMode string `yaml:"update_mode"`
	Apply      *bool  `yaml:"apply"`
	// FollowUp makes the grapple arc follow the tracked up direction.
	FollowUp bool `yaml:"follow_up"`
}

func (g GravityTrackingSpec) Mode() (gravity.UpdateMode, error) {
	return gravity.ParseUpdateMode(g.UpdateMode)
}

func (g GravityTrackingSpec) ApplyGravity() bool {
	return g.Apply == nil || *g.Apply
}

func LoadGrappleToolSpec() (*GrappleToolSpec, error) {
	spec, err := LoadSpec[GrappleToolSpec](GrappleToolFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the tool prefab into a validated controller config. Fields left
// out of the YAML keep grapple.DefaultConfig values. The gravity update mode is
// checked here too so a tool that passes Config can always be built.
func (s *GrappleToolSpec) Config() (grapple.Config, error) {
	cfg := grapple.DefaultConfig()
	if s == nil {
		return cfg, nil
	}

	mode, err := grapple.ParseMovementMode(s.MovementMode)
	if err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	mask, err := LayerMask(s.Layers)
	if err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	if _, err := s.Gravity.Mode(); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}

	cfg.MovementMode = mode
	cfg.PermitByDefault = s.PermitByDefault
	cfg.LayerMask = mask
	cfg.EnableArcing = s.Arc.Enabled
	setIf(&cfg.MaxRange, s.MaxRange)
	setIf(&cfg.HaltDistance, s.HaltDistance)
	setIf(&cfg.ArcHeight, s.Arc.Height)
	setIf(&cfg.TimeToReach, s.ConstantTime.TimeToReach)
	setIf(&cfg.Speed, s.ConstantSpeed.Speed)
	setIf(&cfg.VerticalErrorScale, s.ConstantSpeed.VerticalErrorScale)
	if s.Up != nil {
		cfg.Up = s.Up.Vector()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

var layerBits = map[string]uint32{
	"solid":    physics.CategorySolid,
	"actor":    physics.CategoryActor,
	"trigger":  physics.CategoryTrigger,
	"backdrop": physics.CategoryBackdrop,
}

// LayerMask ORs named layers together. No names means every layer.
func LayerMask(names []string) (uint32, error) {
	var mask uint32
	for _, name := range names {
		bit, ok := layerBits[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
		}
		mask |= bit
	}
	return mask, nil
}

type ReticleSpec struct {
	Name          string     `yaml:"name"`
	Radius        float64    `yaml:"radius"`
	Grappling     *YAMLColor `yaml:"grappling_color"`
	CanGrapple    *YAMLColor `yaml:"can_grapple_color"`
	CannotGrapple *YAMLColor `yaml:"cannot_grapple_color"`
}

func LoadReticleSpec() (*ReticleSpec, error) {
	spec, err := LoadSpec[ReticleSpec](ReticleFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Reticle builds a reticle with the YAML values laid over reticle.New.
func (s *ReticleSpec) Reticle() *reticle.Reticle {
	r := reticle.New()
	if s == nil {
		return r
	}
	if s.Radius > 0 {
		r.Radius = s.Radius
	}
	if s.Grappling != nil {
		r.Grappling.Color = s.Grappling.ToRGBA()
	}
	if s.CanGrapple != nil {
		r.CanGrapple.Color = s.CanGrapple.ToRGBA()
	}
	if s.CannotGrapple != nil {
		r.CannotGrapple.Color = s.CannotGrapple.ToRGBA()
	}
	r.OnStatus(false, false)
	return r
}

type LevelSpec struct {
	Name     string              `yaml:"name"`
	Width    float64             `yaml:"width"`
	Height   float64             `yaml:"height"`
	Spawn    VectorSpec          `yaml:"spawn"`
	Player   PlayerSpec          `yaml:"player"`
	Surfaces []SurfaceSpec       `yaml:"surfaces"`
	Gravity  []GravitySourceSpec `yaml:"gravity"`
}

type PlayerSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// SurfaceSpec is one static box. Kind is a surface.Behaviour name, or
// "untagged", "trigger" or "backdrop" for geometry without tagging.
type SurfaceSpec struct {
	Kind      string     `yaml:"kind"`
	X         float64    `yaml:"x"`
	Y         float64    `yaml:"y"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	TimeLimit float64    `yaml:"time_limit"`
	Color     *YAMLColor `yaml:"color"`
}

func (s SurfaceSpec) Rect() physics.Rect {
	return physics.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}

// Surface returns the tagging for tagged kinds and nil for the rest.
func (s SurfaceSpec) Surface() (*surface.Surface, error) {
	switch s.Kind {
	case "untagged", "trigger", "backdrop":
		return nil, nil
	}
	b, err := surface.ParseBehaviour(s.Kind)
	if err != nil {
		return nil, err
	}
	return surface.New(b, s.TimeLimit), nil
}

type GravitySourceSpec struct {
	Type     string     `yaml:"type"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Strength float64    `yaml:"strength"`
	Radius   float64    `yaml:"radius"`
	Vector   VectorSpec `yaml:"vector"`
}

func (g GravitySourceSpec) Source() (gravity.Source, error) {
	switch g.Type {
	case "", "directional":
		return &gravity.Directional{Acceleration: g.Vector.Vector()}, nil
	case "point":
		return &gravity.Point{Center: cp.Vector{X: g.X, Y: g.Y}, Strength: g.Strength, Radius: g.Radius}, nil
	}
	return nil, fmt.Errorf("prefabs: unknown gravity source %q", g.Type)
}

// Populate adds the level's geometry to w and its gravity sources to m. The
// result holds each surface's tagging by index, nil for untagged kinds.
func (s *LevelSpec) Populate(w *physics.World, m *gravity.Manager) ([]*surface.Surface, error) {
	tags := make([]*surface.Surface, len(s.Surfaces))
	for i, ss := range s.Surfaces {
		if ss.Width <= 0 || ss.Height <= 0 {
			return nil, fmt.Errorf("prefabs: level %s: surface %d: empty rect", s.Name, i)
		}
		tag, err := ss.Surface()
		if err != nil {
			return nil, fmt.Errorf("prefabs: level %s: surface %d: %w", s.Name, i, err)
		}
		switch ss.Kind {
		case "trigger":
			w.AddTrigger(ss.Rect())
		case "backdrop":
			w.AddSolid(ss.Rect(), physics.CategoryBackdrop)
		case "untagged":
			w.AddSolid(ss.Rect(), physics.CategorySolid)
		default:
			w.AddSurface(ss.Rect(), tag, physics.CategorySolid)
		}
		tags[i] = tag
	}

	for i, g := range s.Gravity {
		src, err := g.Source()
		if err != nil {
			return nil, fmt.Errorf("prefabs: level %s: gravity %d: %w", s.Name, i, err)
		}
		m.Add(src)
	}
	return tags, nil
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	if name == "" {
		name = LevelFile
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ToRGBA converts to the premultiplied colour ebiten draws with.
func (c *YAMLColor) ToRGBA() color.RGBA {
	if c == nil || c.Color == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}
