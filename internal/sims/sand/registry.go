package sand

// Properties describes how a material interacts with the cells it moves into.
type Properties struct {
	// CanReplace lists materials the owner may move into or overwrite. Air is
	// always included.
	CanReplace MaterialSet
	// CanSinkIn lists lighter materials the owner swaps places with.
	CanSinkIn MaterialSet

	replaceWith [NumMaterials]Material
	hasReplace  MaterialSet
}

// NewProperties builds Properties from plain lists; Air is added to canReplace.
func NewProperties(canReplace []Material, replaceWith map[Material]Material, canSinkIn []Material) Properties {
	p := Properties{CanReplace: SetOf(Air).Union(SetOf(canReplace...)), CanSinkIn: SetOf(canSinkIn...)}
	for dst, result := range replaceWith {
		p.AddReplaceWith(dst, result)
	}
	return p
}

// AddReplaceWith registers that overwriting dst produces result.
func (p *Properties) AddReplaceWith(dst, result Material) {
	p.replaceWith[dst] = result
	p.hasReplace = p.hasReplace.With(dst)
}

// ReplaceWith returns the registered transform for dst.
func (p *Properties) ReplaceWith(dst Material) (Material, bool) {
	if !p.hasReplace.Has(dst) {
		return Air, false
	}
	return p.replaceWith[dst], true
}

// Replace returns what a cell becomes when mover overwrites dst.
func (p *Properties) Replace(mover, dst Material) Material {
	if r, ok := p.ReplaceWith(dst); ok {
		return r
	}
	return mover
}

// Rule advances the cell at (x, y) by one tick. It returns false when the cell
// is settled, meaning no outcome was possible given its neighborhood.
type Rule func(e *Engine, g *Grid, x, y int) bool

// Behavior binds a material to its properties and reaction.
type Behavior struct {
	Props Properties
	Rule  Rule
}

// Registry resolves Material to Behavior. It is read-only once built.
type Registry struct {
	behaviors [NumMaterials]Behavior
}

// NewRegistry returns a registry where every material can only replace Air
// and has no reaction.
func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.behaviors {
		r.behaviors[i].Props = NewProperties(nil, nil, nil)
	}
	return r
}

// Register sets the behavior of m.
func (r *Registry) Register(m Material, props Properties, rule Rule) {
	if int(m) >= NumMaterials {
		return
	}
	r.behaviors[m] = Behavior{Props: props, Rule: rule}
}

// Properties returns the properties of m.
func (r *Registry) Properties(m Material) *Properties {
	if int(m) >= NumMaterials {
		m = OutOfBounds
	}
	return &r.behaviors[m].Props
}

// Rule returns the reaction of m, or nil for inert materials.
func (r *Registry) Rule(m Material) Rule {
	if int(m) >= NumMaterials {
		return nil
	}
	return r.behaviors[m].Rule
}

// DefaultRegistry returns the standard material table.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(Sand, NewProperties(
		[]Material{Fire},
		map[Material]Material{Acid: Acid},
		[]Material{Water, Oil, Acid},
	), (*Engine).updateParticle)

	r.Register(Water, NewProperties(
		[]Material{Fire, Lava},
		map[Material]Material{Lava: Stone},
		[]Material{Oil},
	), (*Engine).updateLiquid)

	r.Register(Wall, NewProperties(nil, nil, nil), nil)

	r.Register(Wood, NewProperties(nil, nil, nil), (*Engine).updateWood)

	r.Register(Fire, NewProperties([]Material{Oil, Wood}, nil, nil), (*Engine).updateFire)

	r.Register(Oil, NewProperties([]Material{Fire}, nil, nil), (*Engine).updateOil)

	r.Register(Acid, NewProperties(
		[]Material{Wood, Sand, Fire, Stone},
		map[Material]Material{Wood: Air, Sand: Air, Fire: Air, Stone: Air},
		[]Material{Water, Oil},
	), (*Engine).updateLiquid)

	r.Register(Lava, NewProperties(
		[]Material{Water},
		map[Material]Material{Water: Stone},
		[]Material{Water, Acid, Oil},
	), (*Engine).updateLiquid)

	r.Register(Stone, NewProperties(
		nil,
		map[Material]Material{Acid: Acid},
		[]Material{Oil, Water, Acid},
	), (*Engine).updateParticle)

	r.Register(Explosive, NewProperties(
		[]Material{Fire},
		nil,
		[]Material{Oil, Water, Acid},
	), (*Engine).updateExplosive)

	r.Register(Explosion, NewProperties(
		[]Material{Water, Wood, Fire, Sand, Explosive, Lava, Oil, Acid},
		nil,
		nil,
	), (*Engine).updateExplosion)

	return r
}
