//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端方式交互（虚拟键盘、触摸）
// 桌面端返回 false；设置 HBD_MOBILE_EMULATE=1 可在桌面上模拟移动端
func IsMobile() bool {
	return os.Getenv("HBD_MOBILE_EMULATE") == "1"
}
