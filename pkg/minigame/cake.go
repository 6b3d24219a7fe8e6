package minigame

import (
	"log"
	"strings"

	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/sequence"
	"github.com/hbd-sarah/journey/pkg/share"
)

// CakeLevel 蛋糕关卡编号
const CakeLevel = 6

// 蛋糕关卡的提示文本
const (
	CakeAlertEmpty      = "Tulis sesuatu yang indah dulu dong... 🥺"
	CakeAlertCopied     = "Pesan berhasil disalin! Mengalihkan ke WhatsApp..."
	CakeAlertCopyFailed = "Gagal menyalin teks. Coba salin manual ya sayang."
	CakeConfirmReset    = "Yakin ingin mengulang dari awal? Semua kenangan akan direset!"
)

// Sharer 把愿望交给外部应用
// 生产环境由 share 包按平台实现（剪贴板 + 打开链接）
type Sharer interface {
	CopyText(text string) error
	OpenURL(url string) error
}

// Cake 第 6 关：吹蜡烛，写下愿望并分享
type Cake struct {
	timeline *sequence.Timeline
	progress *guard
	sharer   Sharer

	clicks         int
	candleOut      bool
	showLetter     bool
	wishes         string
	sent           bool
	alert          string
	confirmPending bool
	torndown       bool
}

// NewCake 创建蛋糕关卡，愿望文本从进度中恢复
func NewCake(progress Progress, sharer Sharer) *Cake {
	c := &Cake{
		timeline: sequence.NewTimeline(),
		progress: newGuard(progress),
		sharer:   sharer,
	}
	c.wishes = c.progress.record().Wishes
	return c
}

// Update 推进计时
func (c *Cake) Update(dt float64) {
	c.timeline.Update(dt)
}

// ClickCandle 点击蜡烛，第 5 次吹灭，3 秒后出现信纸
//
// 返回：
//   - bool: 本次点击是否有效
func (c *Cake) ClickCandle() bool {
	if c.torndown || c.candleOut {
		return false
	}
	c.clicks++
	if c.clicks >= config.CakeCandleClicks {
		c.candleOut = true
		log.Printf("[Cake] Candle blown out")
		c.timeline.Then(config.CakeLetterDelay, func() {
			c.showLetter = true
		})
	}
	return true
}

// FlameStrength 火焰强度 1.0 → 0.0，随点击次数减弱
func (c *Cake) FlameStrength() float64 {
	if c.candleOut {
		return 0
	}
	return 1 - float64(c.clicks)*0.2
}

// SetWishes 修改愿望文本
func (c *Cake) SetWishes(text string) {
	if c.torndown || c.wishes == text {
		return
	}
	c.wishes = text
	c.progress.setWishes(text)
}

// Send 发送愿望：复制到剪贴板，再打开 WhatsApp 分享链接
//
// 空文本弹出提示；复制或打开链接失败时弹出手动复制提示。
//
// 返回：
//   - bool: 是否已发送
func (c *Cake) Send() bool {
	if c.torndown || c.alert != "" {
		return false
	}
	if strings.TrimSpace(c.wishes) == "" {
		c.alert = CakeAlertEmpty
		return false
	}
	if c.sharer == nil {
		c.alert = CakeAlertCopyFailed
		return false
	}
	if err := c.sharer.CopyText(c.wishes); err != nil {
		log.Printf("[Cake] Failed to copy text: %v", err)
		c.alert = CakeAlertCopyFailed
		return false
	}

	url := share.BuildURL(config.ShareBaseURL, c.wishes)
	if err := c.sharer.OpenURL(url); err != nil {
		log.Printf("[Cake] Failed to open %s: %v", url, err)
		c.alert = CakeAlertCopyFailed
		return false
	}

	c.alert = CakeAlertCopied
	c.sent = true
	return true
}

// Alert 当前阻塞提示，空字符串表示没有
func (c *Cake) Alert() string {
	return c.alert
}

// DismissAlert 关闭提示
func (c *Cake) DismissAlert() {
	c.alert = ""
}

// Menu 回到地图
func (c *Cake) Menu() {
	if c.torndown {
		return
	}
	c.progress.returnToMap()
}

// RequestReset 弹出重置确认框
func (c *Cake) RequestReset() {
	if !c.torndown {
		c.confirmPending = true
	}
}

// ConfirmPending 确认框是否显示
func (c *Cake) ConfirmPending() bool {
	return c.confirmPending
}

// AnswerReset 回答确认框，确认后清空全部进度
func (c *Cake) AnswerReset(confirmed bool) {
	if !c.confirmPending || c.torndown {
		return
	}
	c.confirmPending = false
	if confirmed {
		log.Printf("[Cake] Progress reset requested")
		c.progress.reset()
	}
}

// Clicks 已点击蜡烛次数
func (c *Cake) Clicks() int {
	return c.clicks
}

// CandleOut 蜡烛是否已熄灭
func (c *Cake) CandleOut() bool {
	return c.candleOut
}

// ShowLetter 信纸是否已显示
func (c *Cake) ShowLetter() bool {
	return c.showLetter
}

// Wishes 当前愿望文本
func (c *Cake) Wishes() string {
	return c.wishes
}

// Sent 是否已发送
func (c *Cake) Sent() bool {
	return c.sent
}

// Teardown 取消计时并屏蔽进度修改
func (c *Cake) Teardown() {
	c.torndown = true
	c.timeline.Cancel()
	c.progress.disable()
}
