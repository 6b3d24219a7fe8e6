//go:build !js

package share

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// 测试中替换
var (
	writeClipboard = clipboard.WriteAll
	openBrowser    = browser.OpenURL
)

func init() {
	// xdg-open 等命令的输出不进终端
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

func copyText(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("failed to copy text: %w", err)
	}
	return nil
}

func openURL(u string) error {
	if err := openBrowser(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}
