package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"
)

// FSLoader loads catalog files from a file system such as os.DirFS or embed.FS.
//
// The catalog "messages" for fr-CA is looked up as messages_fr_CA.<ext>, then
// messages_fr-CA.<ext>, trying the extensions of each parser in order. The first
// existing file wins. The name may contain slashes to address sub directories.
type FSLoader struct {
	fsys    fs.FS
	parsers []Parser
}

// NewFSLoader creates a loader over fsys. DefaultParsers are used when none are given.
// It panics if fsys is nil.
func NewFSLoader(fsys fs.FS, parsers ...Parser) *FSLoader {
	if fsys == nil {
		panic("catalog: fs loader requires a file system")
	}
	if len(parsers) == 0 {
		parsers = DefaultParsers()
	}
	return &FSLoader{fsys: fsys, parsers: parsers}
}

// NewDirLoader creates a loader reading catalogs from a directory on disk.
// It panics if dir is empty.
func NewDirLoader(dir string, parsers ...Parser) *FSLoader {
	if dir == "" {
		panic("catalog: dir loader requires a directory")
	}
	return NewFSLoader(os.DirFS(dir), parsers...)
}

// Extensions returns every file extension the loader looks for.
func (l *FSLoader) Extensions() []string {
	var exts []string
	for _, p := range l.parsers {
		exts = append(exts, p.Extensions()...)
	}
	return exts
}

// Load implements the Loader interface
func (l *FSLoader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	for _, spelling := range localeSpellings(locale) {
		base := name + "_" + spelling
		for _, p := range l.parsers {
			for _, ext := range p.Extensions() {
				if err := ctx.Err(); err != nil {
					return nil, errors.Join(ErrLoadingCancelled, err)
				}

				path := base + "." + ext
				content, err := fs.ReadFile(l.fsys, path)
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				if err != nil {
					return nil, errors.Join(ErrFailedToReadCatalog, err)
				}

				entries, err := p.Parse(ctx, content)
				if err != nil {
					return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToParseCatalog, path), err)
				}
				return New(name, locale, entries), nil
			}
		}
	}

	return nil, ErrNotFound
}
