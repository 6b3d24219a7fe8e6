//go:build js

package share

import (
	"errors"
	"syscall/js"
)

func copyText(text string) error {
	clipboard := js.Global().Get("navigator").Get("clipboard")
	if clipboard.IsUndefined() || clipboard.IsNull() {
		return errors.New("clipboard API unavailable")
	}
	// writeText 返回 Promise，这里不等待结果
	clipboard.Call("writeText", text)
	return nil
}

func openURL(u string) error {
	win := js.Global().Call("open", u, "_blank")
	if win.IsNull() || win.IsUndefined() {
		return errors.New("popup blocked")
	}
	return nil
}
