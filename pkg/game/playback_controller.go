package game

import "log"

// PlaybackState 背景音乐播放状态
type PlaybackState int

const (
	// PlaybackPaused 暂停（初始状态）
	PlaybackPaused PlaybackState = iota
	// PlaybackPlaying 播放中
	PlaybackPlaying
)

// String 返回状态名称
func (s PlaybackState) String() string {
	if s == PlaybackPlaying {
		return "playing"
	}
	return "paused"
}

// Affordance 可显示/隐藏、可启用/禁用的界面控件（播放和暂停按钮）
type Affordance interface {
	SetVisible(visible bool)
	SetEnabled(enabled bool)
}

// PlaybackController 播放/暂停状态机
//
// 状态转换：
//
//	Paused --Play--> Playing   开始播放，隐藏播放按钮，显示暂停按钮
//	Playing --Pause--> Paused  暂停播放，按钮可见性反转
//
// 两个按钮的可见性始终互补。音乐加载完成之前播放按钮处于禁用状态，
// 此时调用 Play 不改变状态。
type PlaybackController struct {
	audio    *AudioManager
	playBtn  Affordance
	pauseBtn Affordance
	state    PlaybackState
}

// NewPlaybackController 创建播放控制器
//
// 返回 error 的唯一情况是按钮缺失：界面无法绑定时应在启动阶段失败。
func NewPlaybackController(am *AudioManager, playBtn, pauseBtn Affordance) (*PlaybackController, error) {
	if am == nil {
		return nil, errMissing("audio manager")
	}
	if playBtn == nil {
		return nil, errMissing("play button")
	}
	if pauseBtn == nil {
		return nil, errMissing("pause button")
	}

	pc := &PlaybackController{
		audio:    am,
		playBtn:  playBtn,
		pauseBtn: pauseBtn,
		state:    PlaybackPaused,
	}
	pc.syncAffordances()
	return pc, nil
}

// State 当前状态
func (pc *PlaybackController) State() PlaybackState {
	return pc.state
}

// Ready 音乐是否已加载（播放按钮是否可用）
func (pc *PlaybackController) Ready() bool {
	return pc.audio.HasMusic()
}

// OnMusicLoaded 音乐加载完成后调用，启用播放按钮
func (pc *PlaybackController) OnMusicLoaded(musicID string, track Track) {
	pc.audio.SetMusic(musicID, track)
	pc.syncAffordances()
}

// Play 开始播放
//
// 返回：
//   - bool: 调用后是否处于 Playing 状态
func (pc *PlaybackController) Play() bool {
	if pc.state == PlaybackPlaying {
		return true
	}
	if !pc.Ready() {
		log.Printf("[Playback] Play ignored: music not loaded yet")
		return false
	}
	if !pc.audio.PlayMusic() {
		log.Printf("[Playback] Play ignored: music disabled in settings")
		return false
	}

	pc.state = PlaybackPlaying
	pc.syncAffordances()
	log.Printf("[Playback] -> %s", pc.state)
	return true
}

// Pause 暂停播放；已暂停时为空操作
func (pc *PlaybackController) Pause() {
	if pc.state == PlaybackPaused {
		return
	}
	pc.audio.PauseMusic()
	pc.state = PlaybackPaused
	pc.syncAffordances()
	log.Printf("[Playback] -> %s", pc.state)
}

// Toggle 在两个状态之间切换（键盘快捷键）
func (pc *PlaybackController) Toggle() {
	if pc.state == PlaybackPlaying {
		pc.Pause()
		return
	}
	pc.Play()
}

// syncAffordances 按当前状态设置按钮
func (pc *PlaybackController) syncAffordances() {
	playing := pc.state == PlaybackPlaying
	pc.playBtn.SetVisible(!playing)
	pc.pauseBtn.SetVisible(playing)
	pc.playBtn.SetEnabled(pc.Ready())
	pc.pauseBtn.SetEnabled(true)
}
