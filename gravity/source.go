package gravity

import "github.com/jakecoffman/cp"

// Source contributes gravity at a world position.
type Source interface {
	GravityFor(pos cp.Vector) cp.Vector
}

// Directional is uniform gravity, e.g. a level's default pull.
type Directional struct {
	Acceleration cp.Vector
}

func (d *Directional) GravityFor(cp.Vector) cp.Vector {
	return d.Acceleration
}

// Point pulls toward Center with constant Strength inside Radius. A zero
// Radius reaches everywhere.
type Point struct {
	Center   cp.Vector
	Strength float64
	Radius   float64
}

func (p *Point) GravityFor(pos cp.Vector) cp.Vector {
	d := p.Center.Sub(pos)
	l := d.Length()
	if l == 0 || (p.Radius > 0 && l > p.Radius) {
		return cp.Vector{}
	}
	return d.Mult(p.Strength / l)
}

// Manager is the set of sources every tracker sums over.
type Manager struct {
	sources []Source
}

func NewManager(sources ...Source) *Manager {
	m := &Manager{}
	for _, s := range sources {
		m.Add(s)
	}
	return m
}

func (m *Manager) Add(s Source) {
	if m == nil || s == nil {
		return
	}
	m.sources = append(m.sources, s)
}

// Remove drops s. Sources are compared by identity, so register pointers.
func (m *Manager) Remove(s Source) bool {
	if m == nil {
		return false
	}
	for i, existing := range m.sources {
		if existing == s {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Manager) Sources() []Source {
	if m == nil {
		return nil
	}
	out := make([]Source, 0, len(m.sources))
	return append(out, m.sources...)
}
