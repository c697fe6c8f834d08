package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spherical 球坐标（以 Y 轴为极轴）
//
//	x = r * sin(polar) * sin(azimuth)
//	y = r * cos(polar)
//	z = r * sin(polar) * cos(azimuth)
type Spherical struct {
	Radius float64
	// Polar 与 +Y 轴的夹角，范围 [0, π]
	Polar float64
	// Azimuth 绕 Y 轴的角度，0 指向 +Z
	Azimuth float64
}

// polarEpsilon 防止相机越过极点后 LookAt 的 up 向量退化
const polarEpsilon = 1e-6

// SphericalFromVec3 由相对于目标点的偏移向量计算球坐标
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius:  r,
		Polar:   math.Acos(mgl64.Clamp(v.Y()/r, -1, 1)),
		Azimuth: math.Atan2(v.X(), v.Z()),
	}
}

// Vec3 转换回笛卡尔坐标
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPolar := math.Sin(s.Polar)
	return mgl64.Vec3{
		s.Radius * sinPolar * math.Sin(s.Azimuth),
		s.Radius * math.Cos(s.Polar),
		s.Radius * sinPolar * math.Cos(s.Azimuth),
	}
}

// ClampPolar 将极角限制在 (0, π) 内
func ClampPolar(polar float64) float64 {
	return mgl64.Clamp(polar, polarEpsilon, math.Pi-polarEpsilon)
}
