package renderer

import (
	"errors"
	"fmt"

	"StillLife3D/internal/logger"

	"go.uber.org/zap"
)

// MaxTextureSlots is the number of texture units a scene may bind at once.
const MaxTextureSlots = 16

var (
	ErrTextureCapacity  = errors.New("texture table is full")
	ErrDuplicateTexture = errors.New("texture tag already registered")
)

// TextureDevice is the GPU side of the registry.
type TextureDevice interface {
	Upload(img *TextureImage) (uint32, error)
	Bind(unit int, handle uint32)
	Delete(handles []uint32)
}

// TextureStats provides debugging information
type TextureStats struct {
	Loaded    int
	Capacity  int
	Failed    int
	TotalMB   float64
	Destroyed int
}

type textureEntry struct {
	tag    string
	handle uint32
	path   string
	bytes  int
}

// TextureRegistry maps tags to loaded textures. Entry i is bound to texture
// unit i, so the insertion index doubles as the sampler slot.
type TextureRegistry struct {
	device   TextureDevice
	capacity int
	entries  []textureEntry
	stats    TextureStats
}

// NewTextureRegistry creates a registry holding at most capacity textures.
// A non-positive capacity means MaxTextureSlots.
func NewTextureRegistry(device TextureDevice, capacity int) *TextureRegistry {
	if capacity <= 0 || capacity > MaxTextureSlots {
		capacity = MaxTextureSlots
	}
	return &TextureRegistry{
		device:   device,
		capacity: capacity,
		entries:  make([]textureEntry, 0, capacity),
	}
}

// CreateGLTexture decodes the image at path, uploads it and registers it under
// tag. Nothing is uploaded unless the tag is new, a slot is free and the image
// decodes to 3 or 4 channels.
func (tr *TextureRegistry) CreateGLTexture(path, tag string) error {
	if tr.FindTextureSlot(tag) != -1 {
		tr.stats.Failed++
		return fmt.Errorf("%w: %q", ErrDuplicateTexture, tag)
	}
	if len(tr.entries) >= tr.capacity {
		tr.stats.Failed++
		return fmt.Errorf("%w: cannot add %q, %d slots in use", ErrTextureCapacity, tag, tr.capacity)
	}

	img, err := DecodeTextureImage(path)
	if err != nil {
		tr.stats.Failed++
		return err
	}

	handle, err := tr.device.Upload(img)
	if err != nil {
		tr.stats.Failed++
		return fmt.Errorf("upload texture %q: %w", path, err)
	}

	tr.entries = append(tr.entries, textureEntry{
		tag:    tag,
		handle: handle,
		path:   path,
		bytes:  img.SizeBytes(),
	})
	tr.stats.Loaded++

	logger.Log.Info("Texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Uint32("textureID", handle),
		zap.Int("slot", len(tr.entries)-1),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels))

	return nil
}

// FindTextureID returns the GPU handle registered under tag, or -1.
func (tr *TextureRegistry) FindTextureID(tag string) int {
	slot := tr.FindTextureSlot(tag)
	if slot == -1 {
		return -1
	}
	return int(tr.entries[slot].handle)
}

// FindTextureSlot returns the texture unit of tag, or -1.
func (tr *TextureRegistry) FindTextureSlot(tag string) int {
	for i, entry := range tr.entries {
		if entry.tag == tag {
			return i
		}
	}
	return -1
}

// BindGLTextures binds every loaded texture to the unit matching its slot.
func (tr *TextureRegistry) BindGLTextures() {
	for i, entry := range tr.entries {
		tr.device.Bind(i, entry.handle)
	}
}

// DestroyGLTextures deletes every texture handle and empties the table.
func (tr *TextureRegistry) DestroyGLTextures() {
	if len(tr.entries) == 0 {
		return
	}

	handles := make([]uint32, len(tr.entries))
	for i, entry := range tr.entries {
		handles[i] = entry.handle
	}
	tr.device.Delete(handles)

	tr.stats.Destroyed += len(handles)
	tr.entries = tr.entries[:0]

	logger.Log.Info("Textures destroyed", zap.Int("count", len(handles)))
}

func (tr *TextureRegistry) Len() int {
	return len(tr.entries)
}

func (tr *TextureRegistry) Capacity() int {
	return tr.capacity
}

// Tags returns the registered tags in slot order.
func (tr *TextureRegistry) Tags() []string {
	tags := make([]string, len(tr.entries))
	for i, entry := range tr.entries {
		tags[i] = entry.tag
	}
	return tags
}

func (tr *TextureRegistry) GetStats() TextureStats {
	stats := tr.stats
	stats.Capacity = tr.capacity
	var total int
	for _, entry := range tr.entries {
		total += entry.bytes
	}
	stats.TotalMB = float64(total) / (1024 * 1024)
	return stats
}

func (tr *TextureRegistry) LogStats() {
	stats := tr.GetStats()
	logger.Log.Info("Texture registry stats",
		zap.Int("loaded", stats.Loaded),
		zap.Int("inUse", tr.Len()),
		zap.Int("capacity", stats.Capacity),
		zap.Int("failed", stats.Failed),
		zap.Float64("totalMB", stats.TotalMB))
}
