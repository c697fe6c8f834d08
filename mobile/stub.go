//go:build !mobile

// 桌面端构建 ./... 时 mobile 包只包含这个文件。
// 绑定代码在 mobile.go 和 embed.go 中（-tags mobile，见 Makefile 的 build-android / build-ios）。
package mobile

// Dummy 让包在没有 mobile 标签时仍然非空
func Dummy() {}
