package config

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Document is an exported configuration file, relative to the export root.
type Document struct {
	Path    string
	Content []byte
}

type WrittenFile struct {
	Path     string
	FullPath string
	Hash     []byte
	Changed  bool
}

// FileSystemWriter writes exported documents, leaving files whose content
// is already current untouched.
type FileSystemWriter struct {
	fs   afero.Afero
	hash hash.Hash
}

type WriterOptionFn func(v *FileSystemWriter)

func WithHasher(h hash.Hash) WriterOptionFn {
	return func(v *FileSystemWriter) {
		v.hash = h
	}
}

func NewFileSystemWriter(fs afero.Fs, opts ...WriterOptionFn) *FileSystemWriter {
	v := &FileSystemWriter{
		fs: afero.Afero{Fs: fs},
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.hash == nil {
		v.hash = sha256.New()
	}

	return v
}

// Commit writes docs below root, creating root when missing, and returns the
// absolute root.
func (v *FileSystemWriter) Commit(root string, docs []*Document) (string, []*WrittenFile, error) {
	dir, err := v.checkRoot(root)
	if err != nil {
		return "", nil, err
	}

	fs := afero.Afero{Fs: afero.NewBasePathFs(v.fs.Fs, dir)}

	written := make([]*WrittenFile, 0, len(docs))
	for _, doc := range docs {
		wf, err := v.writeDocument(fs, dir, doc)
		if err != nil {
			return "", nil, err
		}
		written = append(written, wf)
	}

	return dir, written, nil
}

func (v *FileSystemWriter) writeDocument(fs afero.Afero, root string, doc *Document) (*WrittenFile, error) {
	if filepath.IsAbs(doc.Path) {
		return nil, fmt.Errorf("document path must be relative: %q", doc.Path)
	}

	if dir := filepath.Dir(doc.Path); dir != "." {
		if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("unable to create dir %q: %w", dir, err)
		}
	}

	var current []byte
	if ok, err := fs.Exists(doc.Path); err != nil {
		return nil, fmt.Errorf("exists error: %q: %w", doc.Path, err)
	} else if ok {
		if file, err := fs.Open(doc.Path); err == nil {
			current = v.sum(file)
			_ = file.Close()
		}
	}

	wf := &WrittenFile{
		Path:     doc.Path,
		FullPath: filepath.Join(root, doc.Path),
		Hash:     v.sum(bytes.NewReader(doc.Content)),
	}

	if !bytes.Equal(wf.Hash, current) {
		if err := fs.WriteFile(doc.Path, doc.Content, 0o644); err != nil {
			return nil, fmt.Errorf("unable to write file %q: %w", doc.Path, err)
		}
		wf.Changed = true
	}

	return wf, nil
}

func (v *FileSystemWriter) sum(r io.Reader) []byte {
	v.hash.Reset()
	_, _ = io.Copy(v.hash, r)
	return v.hash.Sum(nil)
}

func (v *FileSystemWriter) checkRoot(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		var err error
		dir, err = filepath.Abs(dir)
		if err != nil {
			return "", err
		}
	}

	if ok, err := v.fs.DirExists(dir); err != nil {
		return "", err
	} else if !ok {
		if err := v.fs.MkdirAll(dir, os.ModePerm); err != nil {
			return "", err
		}
	}
	return dir, nil
}
