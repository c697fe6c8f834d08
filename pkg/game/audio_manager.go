package game

import "log"

// Track 可播放的音乐
// *audio.Player 满足此接口；测试中使用假实现
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// AudioManager 音频管理器
// 职责：
//   - 持有背景音乐（加载完成后由 SetMusic 挂上）
//   - 应用 SettingsManager 中的音量和开关
//   - 提供播放/暂停接口给 PlaybackController
type AudioManager struct {
	settingsManager *SettingsManager // 设置管理器，可为 nil
	defaultVolume   float64          // 无设置时使用的音量
	music           Track            // 当前背景音乐，加载完成前为 nil
	musicID         string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - sm: SettingsManager 实例（可为 nil）
//   - defaultVolume: 无设置管理器时使用的音量
func NewAudioManager(sm *SettingsManager, defaultVolume float64) *AudioManager {
	return &AudioManager{
		settingsManager: sm,
		defaultVolume:   clampVolume(defaultVolume),
	}
}

// SetMusic 挂上已加载的背景音乐并应用音量
func (am *AudioManager) SetMusic(musicID string, track Track) {
	am.music = track
	am.musicID = musicID
	if track != nil {
		track.SetVolume(am.MusicVolume())
	}
	log.Printf("[AudioManager] Music ready: %s (volume: %.2f)", musicID, am.MusicVolume())
}

// HasMusic 背景音乐是否已加载
func (am *AudioManager) HasMusic() bool {
	return am.music != nil
}

// PlayMusic 播放背景音乐
//
// 返回：
//   - bool: 是否开始播放（音乐未加载或被设置禁用时返回 false）
func (am *AudioManager) PlayMusic() bool {
	if am.music == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.music.IsPlaying() {
		return true
	}
	am.music.SetVolume(am.MusicVolume())
	am.music.Play()
	log.Printf("[AudioManager] Playing music: %s", am.musicID)
	return true
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// IsPlaying 背景音乐是否正在播放
func (am *AudioManager) IsPlaying() bool {
	return am.music != nil && am.music.IsPlaying()
}

// SetMusicVolume 设置音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	} else {
		am.defaultVolume = volume
	}
	if am.music != nil {
		am.music.SetVolume(volume)
	}
}

// MusicVolume 获取当前音乐音量
func (am *AudioManager) MusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return am.defaultVolume
}
