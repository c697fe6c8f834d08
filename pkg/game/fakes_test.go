package game

// fakeTrack 记录调用的假音乐
type fakeTrack struct {
	playing    bool
	volume     float64
	playCalls  int
	pauseCalls int
}

func (f *fakeTrack) Play()                    { f.playing = true; f.playCalls++ }
func (f *fakeTrack) Pause()                   { f.playing = false; f.pauseCalls++ }
func (f *fakeTrack) IsPlaying() bool          { return f.playing }
func (f *fakeTrack) SetVolume(volume float64) { f.volume = volume }

// fakeAffordance 记录按钮状态
type fakeAffordance struct {
	visible bool
	enabled bool
}

func (f *fakeAffordance) SetVisible(visible bool) { f.visible = visible }
func (f *fakeAffordance) SetEnabled(enabled bool) { f.enabled = enabled }
