package components

import "github.com/decker502/solarsystem/pkg/config"

// OrbitComponent 将实体与其天体描述绑定，并记录当前轨道角度。
//
// Body 指向注册表中的只读数据；Angle 是唯一的可变状态，单调递增，
// 不做取模（三角函数自然处理周期）。
type OrbitComponent struct {
	// Body 天体描述（半径、轨道半径、角速度）
	Body *config.Body

	// Angle 当前轨道角（弧度）
	Angle float64
}
