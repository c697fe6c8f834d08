// Package utils 提供场景渲染和相机控制常用的数学工具函数
//
// projection.go 负责世界坐标 → 屏幕坐标的透视投影。
//
// # 坐标系统概述
//
//   - **世界坐标**：右手系，Y 轴向上，轨道位于 X–Z 平面，太阳在原点
//   - **裁剪坐标**：proj * view * (x, y, z, 1)
//   - **屏幕坐标**：相对于渲染表面左上角，Y 轴向下
//
// # 核心转换公式
//
//	ndc     = clip.xyz / clip.w
//	screenX = (ndc.x + 1) / 2 * width
//	screenY = (1 - ndc.y) / 2 * height
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ScreenPoint 投影结果
type ScreenPoint struct {
	X, Y float64

	// Depth 相机空间中的深度（clip.w），越大越远，用于画家算法排序
	Depth float64
}

// WorldToScreen 将世界坐标投影到屏幕坐标
//
// 参数:
//   - p: 世界坐标
//   - view, proj: 相机的视图矩阵和投影矩阵
//   - width, height: 渲染表面尺寸（像素）
//
// 返回:
//   - ScreenPoint: 屏幕坐标和深度
//   - bool: 点位于相机前方且在近/远裁剪面之间时为 true
func WorldToScreen(p mgl64.Vec3, view, proj mgl64.Mat4, width, height float64) (ScreenPoint, bool) {
	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-9 {
		return ScreenPoint{}, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	ndcZ := clip.Z() / w

	sp := ScreenPoint{
		X:     (ndcX + 1) / 2 * width,
		Y:     (1 - ndcY) / 2 * height,
		Depth: w,
	}
	return sp, ndcZ >= -1 && ndcZ <= 1
}

// ProjectedRadius 计算半径为 radius 的球体在屏幕上的近似半径（像素）
//
// fovY 为垂直视角（弧度），depth 为 WorldToScreen 返回的深度。
func ProjectedRadius(radius, depth, fovY, height float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * math.Tan(fovY/2)) * (height / 2)
}

// PerspectiveFromDegrees 按角度制视角构建投影矩阵
func PerspectiveFromDegrees(fovDeg, aspect, near, far float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, near, far)
}
