package engine

import "slices"

// Scene owns the game objects of one level plus the player.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	i := slices.Index(s.GameObjects, g)
	if i < 0 {
		return
	}
	s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
	delete(s.uidMap, g.UID)
	g.Scene = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

// FindByName returns the first object called name.
func (s *Scene) FindByName(name string) *GameObject {
	i := slices.IndexFunc(s.GameObjects, func(g *GameObject) bool { return g.Name == name })
	if i < 0 {
		return nil
	}
	return s.GameObjects[i]
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Start starts every object that has not started yet, including objects
// added by another object's Start.
func (s *Scene) Start() {
	for i := 0; i < len(s.GameObjects); i++ {
		s.GameObjects[i].Start()
	}
}

// Update runs the per-frame pass: input, look, anything not tied to physics.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// FixedUpdate runs the per-physics-step pass, before the physics world
// integrates the forces components queued.
func (s *Scene) FixedUpdate(fixedDelta float32) {
	for _, g := range s.GameObjects {
		g.FixedUpdate(fixedDelta)
	}
}
