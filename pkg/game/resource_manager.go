package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDecodes bounds the number of textures/tracks decoded at once.
const maxConcurrentDecodes = 4

// ErrNoAudioContext is returned when music is requested without an audio context.
var ErrNoAudioContext = errors.New("audio context not available")

// ImageCallback receives a loaded texture on the update goroutine.
type ImageCallback func(id string, img *ebiten.Image)

// MusicCallback receives a loaded, ready-to-play music player on the update goroutine.
type MusicCallback func(id string, player *audio.Player)

// ResourceManager is responsible for centralized management of game resources.
// It resolves resource IDs through assets/config/resources.yaml and loads
// textures and music asynchronously.
//
// Loading model:
//   - LoadImageAsync / LoadMusicAsync read and decode files on worker goroutines
//     (bounded by an errgroup limit).
//   - Decoded data is handed back through a channel; Poll, called once per tick
//     from the update goroutine, turns it into ebiten images / audio players,
//     fills the caches and runs the callbacks.
//   - A failed load is logged and absorbed: the callback is never invoked, so the
//     body keeps its placeholder colour and the music stays silent.
//
// Only Poll, Drain and the Get* accessors touch the caches, so no locking is
// needed as long as they are called from the update goroutine.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded textures: resource ID -> Image
	audioCache   map[string]*audio.Player // Cache for loaded music players: resource ID -> Player
	audioContext *audio.Context           // Global audio context, nil when audio is unavailable

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup

	group   *errgroup.Group
	results chan loadResult
	pending int
	failed  map[string]error

	fontSource *text.GoTextFaceSource // UI 字体源（延迟解析）
}

type loadKind int

const (
	loadImage loadKind = iota
	loadMusic
)

// loadResult carries decoded data from a worker back to the update goroutine.
type loadResult struct {
	kind    loadKind
	id      string
	path    string
	img     image.Image
	stream  io.ReadSeeker
	err     error
	onImage ImageCallback
	onMusic MusicCallback
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil, in which case music loads fail with ErrNoAudioContext.
//
// Example:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	group := new(errgroup.Group)
	group.SetLimit(maxConcurrentDecodes)
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
		group:        group,
		results:      make(chan loadResult, 16),
		failed:       make(map[string]error),
	}
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	config, resourceMap, err := LoadResourceConfigFile(configPath)
	if err != nil {
		return err
	}
	rm.config = config
	rm.resourceMap = resourceMap
	log.Printf("[ResourceManager] Loaded %d resource IDs from %s", len(resourceMap), configPath)
	return nil
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// LoadImageAsync starts loading a texture by resource ID.
// If the texture is already cached, onLoaded runs immediately.
//
// Returns an error only when the ID is unknown; file and decode errors are
// reported through the log once the load completes.
func (rm *ResourceManager) LoadImageAsync(resourceID string, onLoaded ImageCallback) error {
	if img, ok := rm.imageCache[resourceID]; ok {
		if onLoaded != nil {
			onLoaded(resourceID, img)
		}
		return nil
	}

	filePath, ok := rm.resourceMap[resourceID]
	if !ok {
		return fmt.Errorf("resource ID not found: %s", resourceID)
	}

	rm.start(func() loadResult {
		img, err := decodeImage(filePath)
		return loadResult{kind: loadImage, id: resourceID, path: filePath, img: img, err: err, onImage: onLoaded}
	})
	return nil
}

// LoadMusicAsync starts loading a music track by resource ID.
// When loop is true the stream is wrapped in an infinite loop.
func (rm *ResourceManager) LoadMusicAsync(resourceID string, loop bool, onLoaded MusicCallback) error {
	if player, ok := rm.audioCache[resourceID]; ok {
		if onLoaded != nil {
			onLoaded(resourceID, player)
		}
		return nil
	}

	filePath, ok := rm.resourceMap[resourceID]
	if !ok {
		return fmt.Errorf("resource ID not found: %s", resourceID)
	}

	if rm.audioContext == nil {
		rm.failed[resourceID] = ErrNoAudioContext
		log.Printf("[ResourceManager] Warning: cannot load %s: %v", resourceID, ErrNoAudioContext)
		return nil
	}

	sampleRate := rm.audioContext.SampleRate()
	rm.start(func() loadResult {
		stream, err := decodeMusic(filePath, sampleRate, loop)
		return loadResult{kind: loadMusic, id: resourceID, path: filePath, stream: stream, err: err, onMusic: onLoaded}
	})
	return nil
}

// start schedules a load on the worker pool without blocking the caller.
func (rm *ResourceManager) start(job func() loadResult) {
	rm.pending++
	go rm.group.Go(func() error {
		rm.results <- job()
		return nil
	})
}

// Pending returns the number of loads whose results have not been applied yet.
func (rm *ResourceManager) Pending() int {
	return rm.pending
}

// Poll applies every load result that is ready, without blocking.
// It must be called from the update goroutine (once per tick).
func (rm *ResourceManager) Poll() {
	for {
		select {
		case r := <-rm.results:
			rm.apply(r)
		default:
			return
		}
	}
}

// Drain blocks until every started load has been applied or ctx is done.
// Used by headless tools and tests; the game loop uses Poll.
func (rm *ResourceManager) Drain(ctx context.Context) error {
	for rm.pending > 0 {
		select {
		case r := <-rm.results:
			rm.apply(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (rm *ResourceManager) apply(r loadResult) {
	rm.pending--

	if r.err != nil {
		rm.failed[r.id] = r.err
		log.Printf("[ResourceManager] Warning: failed to load %s (%s): %v", r.id, r.path, r.err)
		return
	}

	switch r.kind {
	case loadImage:
		img := ebiten.NewImageFromImage(r.img)
		rm.imageCache[r.id] = img
		log.Printf("[ResourceManager] Loaded texture %s (%dx%d)", r.id, img.Bounds().Dx(), img.Bounds().Dy())
		if r.onImage != nil {
			r.onImage(r.id, img)
		}
	case loadMusic:
		player, err := rm.audioContext.NewPlayer(r.stream)
		if err != nil {
			rm.failed[r.id] = err
			log.Printf("[ResourceManager] Warning: failed to create audio player for %s: %v", r.id, err)
			return
		}
		rm.audioCache[r.id] = player
		log.Printf("[ResourceManager] Loaded music %s", r.id)
		if r.onMusic != nil {
			r.onMusic(r.id, player)
		}
	}
}

// GetImage retrieves a previously loaded texture, or nil if not loaded (yet).
func (rm *ResourceManager) GetImage(resourceID string) *ebiten.Image {
	return rm.imageCache[resourceID]
}

// GetAudioPlayer retrieves a previously loaded music player, or nil if not loaded (yet).
func (rm *ResourceManager) GetAudioPlayer(resourceID string) *audio.Player {
	return rm.audioCache[resourceID]
}

// LoadError returns the error recorded for a failed load, if any.
func (rm *ResourceManager) LoadError(resourceID string) error {
	return rm.failed[resourceID]
}

// decodeImage reads and decodes an image file (PNG or JPEG).
func decodeImage(filePath string) (image.Image, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", filePath, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}
	return img, nil
}

// decodeMusic reads an audio file into memory and decodes it.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func decodeMusic(filePath string, sampleRate int, loop bool) (io.ReadSeeker, error) {
	// Read the entire file into memory so the stream can seek without an open file handle
	audioData, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", filePath, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", filePath, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", filePath, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	if loop {
		return audio.NewInfiniteLoop(stream, stream.Length()), nil
	}
	return stream, nil
}
