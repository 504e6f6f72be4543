package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNotFound is returned by Load when no blob exists at the location.
var ErrNotFound = errors.New("storage: graph not found")

const tmpSuffix = ".tmp"

// FileStore keeps graph blobs as files on a virtual filesystem.
// Relative locations are resolved against the base directory.
type FileStore struct {
	lock sync.Mutex
	base string
	fs   vfs.FileSystem
}

// NewFileStore returns a store rooted at base. Without an explicit
// filesystem the operating system filesystem is used.
func NewFileStore(base string, fss ...vfs.FileSystem) *FileStore {
	var fs vfs.FileSystem = osfs.OsFs
	if len(fss) > 0 && fss[0] != nil {
		fs = fss[0]
	}
	if base == "" {
		base = "."
	}

	return &FileStore{base: base, fs: fs}
}

// FileSystem returns the filesystem the store writes to.
func (s *FileStore) FileSystem() vfs.FileSystem {
	return s.fs
}

// Path resolves location against the base directory.
func (s *FileStore) Path(location string) string {
	if filepath.IsAbs(location) {
		return filepath.Clean(location)
	}

	return filepath.Join(s.base, location)
}

// Save writes g to location. The blob is written to a temporary sibling
// file first and renamed into place, so a reader never sees a partial blob.
// On the operating system filesystem an existing blob is either fully
// replaced or left untouched.
//
// Graphs carrying a non-finite weight or non-UTF-8 Info are rejected with
// ErrUnencodable before anything is written.
func (s *FileStore) Save(location string, g *core.Graph) error {
	data, err := Marshal(g)
	if err != nil {
		log.LogError(err, "cannot encode graph for {{location}}", "location", location)
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	path := s.Path(location)
	if err = s.fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.LogError(err, "cannot create directory for {{path}}", "path", path)
		return fmt.Errorf("storage: save %s: %w", path, err)
	}

	tmp := path + tmpSuffix
	if err = vfs.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		s.fs.Remove(tmp)
		log.LogError(err, "cannot write {{path}}", "path", tmp)
		return fmt.Errorf("storage: save %s: %w", path, err)
	}
	if err = s.replace(tmp, path); err != nil {
		s.fs.Remove(tmp)
		log.LogError(err, "cannot rename {{from}} to {{to}}", "from", tmp, "to", path)
		return fmt.Errorf("storage: save %s: %w", path, err)
	}
	log.Debug("saved graph to {{path}} ({{size}} bytes)", "path", path, "size", len(data))

	return nil
}

// replace renames tmp over path. Filesystems whose Rename refuses an
// existing target get the old blob removed first.
func (s *FileStore) replace(tmp, path string) error {
	err := s.fs.Rename(tmp, path)
	if err == nil {
		return nil
	}
	if _, serr := s.fs.Stat(path); serr != nil {
		return err
	}
	if rerr := s.fs.Remove(path); rerr != nil {
		return err
	}

	return s.fs.Rename(tmp, path)
}

// Load reads and decodes the blob at location.
func (s *FileStore) Load(location string) (*core.Graph, error) {
	s.lock.Lock()
	path := s.Path(location)
	data, err := vfs.ReadFile(s.fs, path)
	s.lock.Unlock()

	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			log.Info("no graph at {{path}}", "path", path)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		log.LogError(err, "cannot read {{path}}", "path", path)
		return nil, fmt.Errorf("storage: load %s: %w", path, err)
	}

	g, err := Unmarshal(data)
	if err != nil {
		log.LogError(err, "cannot decode {{path}}", "path", path)
		return nil, fmt.Errorf("storage: load %s: %w", path, err)
	}
	log.Debug("loaded graph from {{path}}", "path", path)

	return g, nil
}
