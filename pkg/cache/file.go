package cache

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// entryMagic starts every file written by FileCache. It is followed by the
// expiry as big-endian Unix nanoseconds (0 for none) and the raw value.
var entryMagic = []byte("fpc1")

const entryHeaderLen = 4 + 8

// FileCache stores entries as files under a directory, one per key, fanned
// out into 256 subdirectories. Values are stored unencoded, so cached PNG
// and PDF artifacts cost their own size on disk.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// DefaultDir returns footprint's cache directory under the user cache dir
// ($XDG_CACHE_HOME on Linux).
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "footprint"), nil
}

// Dir returns the directory the cache writes to.
func (c *FileCache) Dir() string { return c.dir }

func encodeEntry(data []byte, ttl time.Duration) []byte {
	buf := make([]byte, entryHeaderLen, entryHeaderLen+len(data))
	copy(buf, entryMagic)
	if ttl > 0 {
		binary.BigEndian.PutUint64(buf[4:], uint64(time.Now().Add(ttl).UnixNano()))
	}
	return append(buf, data...)
}

// decodeEntry returns the value and whether it is still live. Files without
// the header are reported as not live.
func decodeEntry(raw []byte, now time.Time) ([]byte, bool) {
	if len(raw) < entryHeaderLen || !bytes.Equal(raw[:4], entryMagic) {
		return nil, false
	}
	if exp := int64(binary.BigEndian.Uint64(raw[4:entryHeaderLen])); exp != 0 && now.UnixNano() > exp {
		return nil, false
	}
	return raw[entryHeaderLen:], true
}

// Get returns the entry for key. Expired and unreadable entries are removed
// and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	data, live := decodeEntry(raw, time.Now())
	if !live {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return data, true, nil
}

// Set writes the entry for key. A ttl of zero keeps it until cleared.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrInvalidKey
	}
	path := c.path(key)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Rename into place so concurrent renders never read a partial entry.
	tmp, err := os.CreateTemp(dir, ".entry-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(encodeEntry(data, ttl))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the entry for key; a missing entry is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Clear removes every entry, keeping the directory itself.
func (c *FileCache) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

// path maps key to <dir>/<h[:2]>/<h[2:]> where h is the key's digest.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:])
}

var (
	_ Cache   = (*FileCache)(nil)
	_ Clearer = (*FileCache)(nil)
)
