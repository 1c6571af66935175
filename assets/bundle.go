package assets

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/alphalions/gallery/types"
)

// Family directories inside the asset root.
const (
	PixelArtDir = "picsart"
	GLBDir      = "glb"
	FBXDir      = "fbx_output"
)

var familyDirs = map[types.Format]string{
	types.FormatPixelArt: PixelArtDir,
	types.FormatGLB:      GLBDir,
	types.FormatFBX:      FBXDir,
}

// Bundle is the set of locally packaged per-token assets. It is built once by LoadBundle
// and is read-only afterwards, so it is safe for concurrent use.
type Bundle struct {
	fsys  fs.FS
	index map[types.Format]map[string]string // format -> normalized id -> file path
}

// LoadBundle indexes the asset families found in fsys. A missing family directory is an
// empty family, not an error. When two files normalize to the same id the first one in
// lexical order wins.
func LoadBundle(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{
		fsys:  fsys,
		index: make(map[types.Format]map[string]string, len(familyDirs)),
	}

	for format, dir := range familyDirs {
		files := make(map[string]string)
		b.index[format] = files

		entries, err := fs.ReadDir(fsys, dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, types.NewConfigError("failed to read asset directory "+dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), format.Extension()) {
				continue
			}
			id := NormalizeTokenId(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
			if id == "" {
				continue
			}
			if _, exists := files[id]; !exists {
				files[id] = path.Join(dir, entry.Name())
			}
		}
	}

	return b, nil
}

// EmptyBundle returns a bundle with no local assets.
func EmptyBundle() *Bundle {
	b, _ := LoadBundle(emptyFS{})
	return b
}

// Lookup returns the bundle path of the asset for tokenId, if one is packaged.
func (b *Bundle) Lookup(format types.Format, tokenId string) (string, bool) {
	files, ok := b.index[format]
	if !ok {
		return "", false
	}
	p, ok := files[NormalizeTokenId(tokenId)]
	return p, ok
}

// ReadFile reads a file previously returned by Lookup.
func (b *Bundle) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(b.fsys, name)
}

// FS exposes the underlying file system for static serving.
func (b *Bundle) FS() fs.FS {
	return b.fsys
}

// Count returns how many tokens have an asset of the given format.
func (b *Bundle) Count(format types.Format) int {
	return len(b.index[format])
}

// TokenIds returns the normalized ids packaged for a format in numeric order.
func (b *Bundle) TokenIds(format types.Format) []string {
	ids := make([]string, 0, len(b.index[format]))
	for id := range b.index[format] {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return ids
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
