package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 44100

// SoundID 音效标识
type SoundID string

const (
	// SoundNice 答对、接住等小成功
	SoundNice SoundID = "nice"
	// SoundWin 通关
	SoundWin SoundID = "win"
)

// toneSpec 合成音效的音符序列（频率 Hz）和每个音符时长（秒）
type toneSpec struct {
	notes    []float64
	noteSecs float64
}

var toneSpecs = map[SoundID]toneSpec{
	SoundNice: {notes: []float64{659.25, 880.00}, noteSecs: 0.09},
	SoundWin:  {notes: []float64{523.25, 659.25, 783.99, 1046.50}, noteSecs: 0.14},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效播放，音效由正弦波即时合成，不依赖音频资源文件
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// audio.Context 为 nil 时所有播放调用都是空操作（测试和无声卡环境）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[SoundID]*audio.Player
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 参数：
//   - id: 音效标识
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(id)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

func (am *AudioManager) getSoundPlayer(id SoundID) *audio.Player {
	if player, ok := am.soundPlayers[id]; ok {
		return player
	}
	spec, ok := toneSpecs[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %s", id)
		return nil
	}
	player := am.context.NewPlayerFromBytes(synthesizeTone(spec, SampleRate))
	am.soundPlayers[id] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// synthesizeTone 生成 16 位小端立体声 PCM 数据
// 每个音符带线性淡出，避免音符衔接处的爆音
func synthesizeTone(spec toneSpec, sampleRate int) []byte {
	perNote := int(spec.noteSecs * float64(sampleRate))
	buf := make([]byte, 0, perNote*len(spec.notes)*4)
	sample := make([]byte, 2)

	for _, freq := range spec.notes {
		for i := 0; i < perNote; i++ {
			t := float64(i) / float64(sampleRate)
			envelope := 1.0 - float64(i)/float64(perNote)
			v := int16(math.Sin(2*math.Pi*freq*t) * envelope * 0.3 * math.MaxInt16)
			binary.LittleEndian.PutUint16(sample, uint16(v))
			buf = append(buf, sample...) // 左声道
			buf = append(buf, sample...) // 右声道
		}
	}
	return buf
}
