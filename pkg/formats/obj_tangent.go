package formats

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/webgl-scenes/pkg/math"
)

// TangentSpace computes the flat tangent and bitangent of a triangle from its
// edge vectors and UV deltas. ok is false when the UV triangle has zero area
// or the positions are collinear, in which case the vectors are unusable.
func TangentSpace(p0, p1, p2 math.Vec3, uv0, uv1, uv2 math.Vec2) (tangent, bitangent math.Vec3, ok bool) {
	dp1 := p1.Sub(p0)
	dp2 := p2.Sub(p0)
	duv1 := uv1.Sub(uv0)
	duv2 := uv2.Sub(uv0)

	det := duv1.Cross(duv2)
	if det == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}
	r := 1 / det

	tangent = dp1.Scale(duv2.Y).Sub(dp2.Scale(duv1.Y)).Scale(r).Normalize()
	bitangent = dp2.Scale(duv1.X).Sub(dp1.Scale(duv2.X)).Scale(r).Normalize()

	if !finite(tangent) || !finite(bitangent) || tangent.IsZero() || bitangent.IsZero() {
		return math.Vec3{}, math.Vec3{}, false
	}
	return tangent, bitangent, true
}

// orthonormalBasis returns a tangent and bitangent perpendicular to n.
func orthonormalBasis(n math.Vec3) (tangent, bitangent math.Vec3) {
	n = n.Normalize()
	if n.IsZero() {
		return math.Vec3{X: 1}, math.Vec3{Y: 1}
	}

	if math32.Abs(n.X) < 0.9 {
		tangent = math.Vec3{X: 1}.Sub(n.Scale(n.X))
	} else {
		tangent = math.Vec3{Y: 1}.Sub(n.Scale(n.Y))
	}
	tangent = tangent.Normalize()
	bitangent = n.Cross(tangent)
	return tangent, bitangent
}

func finite(v math.Vec3) bool {
	return math.IsFinite(v.X) && math.IsFinite(v.Y) && math.IsFinite(v.Z)
}
