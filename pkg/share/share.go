// Package share 把文字交给系统：复制到剪贴板，并打开 WhatsApp 分享链接。
//
// 浏览器（js/wasm）下使用 navigator.clipboard 和 window.open，
// 桌面端使用 atotto/clipboard 和 pkg/browser。
package share

import (
	"net/url"
	"strings"
)

// BuildURL 拼接分享链接：<base>?text=<urlencoded>
//
// 空格编码为 %20（与浏览器 encodeURIComponent 一致），而不是 "+"。
func BuildURL(base, text string) string {
	if base == "" {
		base = "https://wa.me/"
	}
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return base + "?text=" + encoded
}

// Platform 当前平台的分享实现
type Platform struct{}

// New 创建当前平台的分享实现
func New() *Platform {
	return &Platform{}
}

// CopyText 复制文字到剪贴板
func (p *Platform) CopyText(text string) error {
	return copyText(text)
}

// OpenURL 用系统默认浏览器打开链接
func (p *Platform) OpenURL(u string) error {
	return openURL(u)
}
