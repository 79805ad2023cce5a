// Package asset loads textures for the inspector and the viewer.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"texture-viewer/viewport"
)

var ErrNoPixels = errors.New("texture has no pixels")

// Texture is a decoded image plus the metadata the inspector shows.
type Texture struct {
	Name    string
	Format  string
	Size    viewport.Size
	Bytes   int64
	ModTime time.Time
	EXIF    map[string]string

	Image image.Image
}

// Load reads and decodes a texture from disk.
func Load(path string) (*Texture, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name)
}

// LoadFS reads and decodes a texture from fsys. Dropped files arrive as
// an fs.FS, so this is the common path.
func LoadFS(fsys fs.FS, name string) (*Texture, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}

	tex := &Texture{
		Name:  filepath.Base(name),
		Bytes: int64(len(data)),
		EXIF:  readEXIF(bytes.NewReader(data)),
	}
	if fi, err := fs.Stat(fsys, name); err == nil {
		tex.ModTime = fi.ModTime()
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", name, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoPixels)
	}
	tex.Image = img
	tex.Format = format
	tex.Size = viewport.Size{Width: b.Dx(), Height: b.Dy()}
	return tex, nil
}

// Probe reads only the header of a texture: format and dimensions.
func Probe(r io.Reader) (viewport.Size, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return viewport.Size{}, "", fmt.Errorf("decoding image config: %w", err)
	}
	return viewport.Size{Width: cfg.Width, Height: cfg.Height}, format, nil
}

func readEXIF(r io.Reader) map[string]string {
	out := make(map[string]string)
	x, err := exif.Decode(r)
	if err != nil {
		// Most textures carry no EXIF at all.
		return out
	}
	if tag, err := x.Get(exif.Model); err == nil {
		if s, err := tag.StringVal(); err == nil {
			out["Camera Model"] = s
		}
	}
	if tag, err := x.Get(exif.DateTimeOriginal); err == nil {
		if s, err := tag.StringVal(); err == nil {
			out["Taken"] = s
		}
	}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			out["Orientation"] = fmt.Sprint(v)
		}
	}
	return out
}

// EXIFLines returns the EXIF fields as sorted "key: value" lines.
func (t *Texture) EXIFLines() []string {
	keys := make([]string, 0, len(t.EXIF))
	for k := range t.EXIF {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+t.EXIF[k])
	}
	return lines
}

// Thumbnail scales src to fit inside a limit x limit box, keeping its aspect.
func Thumbnail(src image.Image, limit int) image.Image {
	b := src.Bounds()
	size := viewport.Size{Width: b.Dx(), Height: b.Dy()}
	box := viewport.Rect{Width: float64(limit), Height: float64(limit)}
	scaled := size.Scaled(viewport.MinZoom(size, box))

	w, h := int(scaled.X+0.5), int(scaled.Y+0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
