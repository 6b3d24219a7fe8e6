//go:build !mobile

// 普通构建时 mobile 包只剩这个占位文件，
// 真正的入口在 mobile.go，只在 -tags mobile 时编译。
package mobile

// Dummy 空导出函数，让 gomobile bind 在两种构建下都能引用本包
func Dummy() {}
