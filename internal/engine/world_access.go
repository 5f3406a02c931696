package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast or sphere cast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// LayerMask selects which collider layers a query considers. Layer n is bit n.
type LayerMask uint32

// AllLayers matches every collider.
const AllLayers LayerMask = ^LayerMask(0)

// LayerBit returns the mask for a single layer index (0..31).
func LayerBit(layer int) LayerMask {
	if layer < 0 || layer > 31 {
		return 0
	}
	return 1 << uint(layer)
}

func (m LayerMask) Contains(layer int) bool {
	return m&LayerBit(layer) != 0
}

// PhysicsQuery provides scene queries to components without creating
// circular import dependencies.
type PhysicsQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
}

// ForceMode selects how AddForce turns a vector into a velocity change.
type ForceMode int

const (
	// ForceModeForce is continuous and mass-scaled: dv = f/m * dt.
	ForceModeForce ForceMode = iota
	// ForceModeAcceleration is continuous and ignores mass: dv = f * dt.
	ForceModeAcceleration
	// ForceModeImpulse is instantaneous and mass-scaled: dv = f/m.
	ForceModeImpulse
	// ForceModeVelocityChange is instantaneous and ignores mass: dv = f.
	ForceModeVelocityChange
)

func (m ForceMode) String() string {
	switch m {
	case ForceModeForce:
		return "Force"
	case ForceModeAcceleration:
		return "Acceleration"
	case ForceModeImpulse:
		return "Impulse"
	case ForceModeVelocityChange:
		return "VelocityChange"
	}
	return "Unknown"
}
