package utils

import "math"

// 缓动函数
//
// 输入进度 t ∈ [0, 1]，越界时先截断；返回缓动后的值。
// 场景用它们做信封展开、弹窗弹出、镜头推进等过渡动画。

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 三次方缓出：开始快，结束慢（信封、窗帘）
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入：开始慢，结束快（镜头推进）
func EaseInCubic(t float64) float64 {
	t = Clamp01(t)
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutBack 回弹缓出：略微越过终点再回来（弹窗出现）
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = Clamp01(t)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Pulse 周期为 period 秒的 0..1 正弦脉动（烛火、爱心跳动）
func Pulse(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*elapsed/period)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
