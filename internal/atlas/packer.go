// Package atlas packs fixed-size PNG icons into a single sheet and reports
// each icon's pixel offset within it.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ErrTileSize reports a source image whose dimensions differ from the tile size.
var ErrTileSize = errors.New("tile size mismatch")

// Offset is the top-left pixel of an icon within its sheet. It is only
// meaningful together with the sheet produced in the same run.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileSize is the pixel size every packed icon must have.
type TileSize struct {
	Width  int
	Height int
}

// Sheet is a packed icon atlas.
type Sheet struct {
	// Offsets maps each found icon name to its position.
	Offsets map[string]Offset
	// Missing lists requested names with no matching file, in request order.
	Missing []string
	// Cols and Rows are the grid dimensions in tiles.
	Cols, Rows int
	Image      *image.NRGBA
}

// Grid returns the tile grid for n icons: (ceil(sqrt n), floor(sqrt n)) when
// that covers n, otherwise (ceil(sqrt n), ceil(sqrt n)).
//
// Postcondition: cols*rows >= n and cols >= rows.
func Grid(n int) (cols, rows int) {
	root := math.Sqrt(float64(n))
	cols = int(math.Ceil(root))
	rows = int(math.Floor(root))
	if cols*rows >= n {
		return cols, rows
	}
	return cols, cols
}

// Locate finds "<name>.png" (extension in any case) for each name under dir,
// matching the name against the trailing path components of every file.
// When several files match, the first in lexical walk order wins.
//
// Postcondition: found maps located names to file paths; missing lists the
// rest in input order. Duplicate names are located once.
func Locate(dir string, names []string) (found map[string]string, missing []string, err error) {
	index := make(map[string]string)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		stem := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		for {
			if _, ok := index[stem]; !ok {
				index[stem] = path
			}
			i := strings.IndexByte(stem, '/')
			if i < 0 {
				break
			}
			stem = stem[i+1:]
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking graphics directory %s: %w", dir, err)
	}

	found = make(map[string]string)
	for _, name := range names {
		if _, done := found[name]; done {
			continue
		}
		if path, ok := index[name]; ok {
			found[name] = path
			continue
		}
		missing = append(missing, name)
	}
	return found, missing, nil
}

// Pack composites the icons for names into a transparent sheet. Names with
// no file are skipped and reported in Sheet.Missing; the grid is sized from
// the found icons only. Tiles are laid out row-major in input order.
//
// Precondition: tile.Width and tile.Height are positive.
// Postcondition: returns an ErrTileSize error if any found image is not
// exactly tile-sized.
func Pack(dir string, tile TileSize, names []string) (*Sheet, error) {
	found, missing, err := Locate(dir, names)
	if err != nil {
		return nil, err
	}

	ordered := make([]string, 0, len(found))
	placed := make(map[string]bool, len(found))
	for _, name := range names {
		if _, ok := found[name]; ok && !placed[name] {
			ordered = append(ordered, name)
			placed[name] = true
		}
	}

	cols, rows := Grid(len(ordered))
	sheet := &Sheet{
		Offsets: make(map[string]Offset, len(ordered)),
		Missing: missing,
		Cols:    cols,
		Rows:    rows,
		Image:   image.NewNRGBA(image.Rect(0, 0, cols*tile.Width, rows*tile.Height)),
	}

	for k, name := range ordered {
		src, err := readPNG(found[name])
		if err != nil {
			return nil, err
		}
		b := src.Bounds()
		if b.Dx() != tile.Width || b.Dy() != tile.Height {
			return nil, fmt.Errorf("%w: %s is %dx%d, want %dx%d",
				ErrTileSize, found[name], b.Dx(), b.Dy(), tile.Width, tile.Height)
		}
		at := Offset{X: (k % cols) * tile.Width, Y: (k / cols) * tile.Height}
		dst := image.Rect(at.X, at.Y, at.X+tile.Width, at.Y+tile.Height)
		draw.Draw(sheet.Image, dst, src, b.Min, draw.Src)
		sheet.Offsets[name] = at
	}
	return sheet, nil
}

// WritePNG encodes the sheet to path, creating parent directories.
//
// Precondition: the sheet holds at least one tile.
func (s *Sheet) WritePNG(path string) error {
	if len(s.Offsets) == 0 {
		return fmt.Errorf("atlas: refusing to write empty sheet to %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating atlas directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating atlas %s: %w", path, err)
	}
	if err := png.Encode(f, s.Image); err != nil {
		f.Close()
		return fmt.Errorf("encoding atlas %s: %w", path, err)
	}
	return f.Close()
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening icon %s: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding icon %s: %w", path, err)
	}
	return img, nil
}
