package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"path"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager is responsible for centralized management of sprite sheet resources.
// It loads images from a file system, slices them into atlas layouts and caches
// both, so that every animation referencing the same sheet shares one image.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the current single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("assets"))
//	handles, err := rm.LoadSpriteSheet(&sheetConfig)
//	if err != nil {
//	    log.Printf("Failed to load sprite sheet: %v", err)
//	}
type ResourceManager struct {
	fsys       fs.FS                        // Resource root
	imageCache map[string]*ebiten.Image     // Cache for loaded images: path -> Image
	sheetCache map[string]animation.Handles // Cache for sliced sheets: sheet ID -> Handles
}

// NewResourceManager creates a ResourceManager reading from the given file system.
//
// Parameters:
//   - fsys: The resource root (os.DirFS, embed.FS, fstest.MapFS, ...).
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:       fsys,
		imageCache: make(map[string]*ebiten.Image),
		sheetCache: make(map[string]animation.Handles),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - p: Slash-separated path relative to the resource root (e.g., "sprites/hero.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = path.Clean(p)

	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// Returns nil if the image has not been loaded.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[path.Clean(p)]
}

// LoadSpriteSheet loads the sheet image and builds its atlas layout.
//
// When frame_width/frame_height are omitted in the configuration they are
// derived from the image size and the grid dimensions.
//
// Returns:
//   - animation.Handles sharing the cached image and layout.
//   - An error if the image cannot be loaded or does not fit the grid.
func (rm *ResourceManager) LoadSpriteSheet(sheet *config.SheetConfig) (animation.Handles, error) {
	if cached, exists := rm.sheetCache[sheet.ID]; exists {
		return cached, nil
	}

	img, err := rm.LoadImage(sheet.Image)
	if err != nil {
		return animation.Handles{}, fmt.Errorf("sprite sheet %s: %w", sheet.ID, err)
	}

	bounds := img.Bounds()
	frameWidth, frameHeight := sheet.FrameWidth, sheet.FrameHeight
	if frameWidth == 0 {
		frameWidth = bounds.Dx() / sheet.Columns
	}
	if frameHeight == 0 {
		frameHeight = bounds.Dy() / sheet.Rows
	}
	if frameWidth*sheet.Columns > bounds.Dx() || frameHeight*sheet.Rows > bounds.Dy() {
		return animation.Handles{}, fmt.Errorf("sprite sheet %s: %dx%d grid of %dx%d frames exceeds image size %dx%d",
			sheet.ID, sheet.Columns, sheet.Rows, frameWidth, frameHeight, bounds.Dx(), bounds.Dy())
	}

	handles := animation.NewHandles(img, animation.NewAtlasLayout(frameWidth, frameHeight, sheet.Columns, sheet.Rows))
	rm.sheetCache[sheet.ID] = handles
	return handles, nil
}

// GetSpriteSheet retrieves a previously loaded sprite sheet by ID.
func (rm *ResourceManager) GetSpriteSheet(id string) (animation.Handles, bool) {
	handles, ok := rm.sheetCache[id]
	return handles, ok
}
