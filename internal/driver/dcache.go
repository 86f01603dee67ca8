package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"paf/internal/project"
	"paf/internal/source"
	"paf/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const tokenCacheSchema uint16 = 1

var cacheSalt = project.DigestOf(fmt.Sprintf("paf-tokens/v%d", tokenCacheSchema))

// DiskCache хранит потоки токенов по хешу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// TokenPayload is the on-disk record for one file.
type TokenPayload struct {
	Schema uint16        `msgpack:"schema"`
	Tokens []CachedToken `msgpack:"tokens"`
}

// CachedToken is a Token without its file id and text; both are restored
// from the file the payload is read for.
type CachedToken struct {
	_msgpack struct{} `msgpack:",as_array"` //nolint:unused // msgpack encoding option

	Kind  uint8
	Row   uint32
	Col   uint32
	Start uint32
	End   uint32
	Int   int32
	Float float32
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens (creating if needed) a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

// CacheKey derives the cache key from the file content hash and the schema.
func CacheKey(file *source.File) project.Digest {
	return project.Combine(project.Digest(file.Hash), cacheSalt)
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "tokens", key.String()+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *TokenPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// PutTokens stores the token stream of a file.
func (c *DiskCache) PutTokens(key project.Digest, tokens []token.Token) error {
	payload := &TokenPayload{Schema: tokenCacheSchema, Tokens: make([]CachedToken, len(tokens))}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:  uint8(tok.Kind),
			Row:   tok.Row,
			Col:   tok.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Int:   tok.Int,
			Float: tok.Float,
		}
	}
	return c.Put(key, payload)
}

// GetTokens restores the token stream for file. Entries written with another
// schema, or whose spans do not fit the file, count as a miss.
func (c *DiskCache) GetTokens(key project.Digest, file *source.File) ([]token.Token, bool, error) {
	var payload TokenPayload
	ok, err := c.Get(key, &payload)
	if err != nil || !ok {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchema {
		return nil, false, nil
	}

	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return nil, false, err
	}
	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		if ct.Start > ct.End || ct.End > size {
			return nil, false, nil
		}
		sp := source.Span{File: file.ID, Start: ct.Start, End: ct.End}
		tokens[i] = token.Token{
			Kind:  token.Kind(ct.Kind),
			Row:   ct.Row,
			Col:   ct.Col,
			Span:  sp,
			Text:  string(file.Content[sp.Start:sp.End]),
			Int:   ct.Int,
			Float: ct.Float,
		}
	}
	return tokens, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
