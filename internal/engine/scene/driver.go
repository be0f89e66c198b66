package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/skinview/pkg/math"
	"github.com/Faultbox/skinview/pkg/skin"
)

// Driver changes local joint transforms at time t (seconds).
type Driver interface {
	Drive(h *skin.Hierarchy, t float64)
}

// OscillateZ swings a joint about the Z axis by Amplitude*sin(t) radians,
// keeping the joint's translation and scale.
type OscillateZ struct {
	Joint     skin.JointHandle
	Amplitude float32
}

// DefaultAmplitude swings a quarter turn each way.
const DefaultAmplitude = 0.5 * math32.Pi

// Drive implements Driver.
func (o OscillateZ) Drive(h *skin.Hierarchy, t float64) {
	local := h.Local(o.Joint)
	angle := o.Amplitude * math32.Sin(float32(t))
	local.Rotation = math.QuatFromAxisAngle(math.Vec3{Z: 1}, angle)
	h.SetLocal(o.Joint, local)
}
