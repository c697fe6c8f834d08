package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DiscSegments 圆盘的默认分段数
const DiscSegments = 32

// AppendDisc 追加一个以 (cx, cy) 为圆心、半径 r 的圆盘三角扇到顶点/索引数组
//
// 纹理采用等距柱状投影（行星贴图的常见格式），圆盘只显示正对相机的半球：
// 水平方向映射到纹理中间一半宽度，垂直方向映射到整张纹理高度。
//
// 参数:
//   - vs, is: 复用的顶点和索引数组
//   - srcW, srcH: 纹理尺寸（像素）
//   - r, g, b, a: 顶点颜色缩放（光照系数）
//
// 返回追加后的数组；索引基于追加前 vs 的长度。
func AppendDisc(vs []ebiten.Vertex, is []uint16, cx, cy, radius float32, segments int, srcW, srcH float32, r, g, b, a float32) ([]ebiten.Vertex, []uint16) {
	if segments < 3 {
		segments = 3
	}

	base := uint16(len(vs))
	srcCX := srcW / 2
	srcCY := srcH / 2

	// 圆心
	vs = append(vs, ebiten.Vertex{
		DstX: cx, DstY: cy,
		SrcX: srcCX, SrcY: srcCY,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})

	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		vs = append(vs, ebiten.Vertex{
			DstX: cx + radius*cos, DstY: cy + radius*sin,
			SrcX: srcCX + srcW/4*cos, SrcY: srcCY + srcH/2*sin,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		is = append(is, base, base+uint16(i+1), base+uint16(next))
	}
	return vs, is
}
