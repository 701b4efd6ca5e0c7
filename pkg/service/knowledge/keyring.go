package knowledge

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/utils/safe"
)

// FileKeySource stores the index encryption key in a local file. The key
// is created on first use and reused across restarts.
type FileKeySource struct {
	path string
}

// NewFileKeySource creates a KeySource backed by the file at path
func NewFileKeySource(path string) *FileKeySource {
	return &FileKeySource{path: path}
}

func (s *FileKeySource) GetOrCreateKey(ctx context.Context) ([]byte, error) {
	// #nosec G304 - path is provided by CLI configuration
	key, err := os.ReadFile(s.path)
	if err == nil {
		if len(key) != keyLength {
			return nil, goerr.New("key file has unexpected length",
				goerr.V("path", s.path), goerr.V("length", len(key)))
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, goerr.Wrap(err, "failed to read key file", goerr.V("path", s.path))
	}

	key = make([]byte, keyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, goerr.Wrap(err, "failed to generate key")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, goerr.Wrap(err, "failed to create key directory", goerr.V("dir", dir))
		}
	}
	if err := os.WriteFile(s.path, key, 0o600); err != nil {
		return nil, goerr.Wrap(err, "failed to write key file", goerr.V("path", s.path))
	}

	return key, nil
}

// GCSKeySource stores the index encryption key as a GCS object so
// multiple deployments can share one index key without local state.
type GCSKeySource struct {
	bucket string
	object string
}

// NewGCSKeySource creates a KeySource backed by a GCS object
func NewGCSKeySource(bucket, object string) *GCSKeySource {
	return &GCSKeySource{bucket: bucket, object: object}
}

func (s *GCSKeySource) GetOrCreateKey(ctx context.Context) ([]byte, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}
	defer safe.Close(ctx, client)

	obj := client.Bucket(s.bucket).Object(s.object)

	r, err := obj.NewReader(ctx)
	if err == nil {
		defer safe.Close(ctx, r)
		key, err := io.ReadAll(r)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read key object",
				goerr.V("bucket", s.bucket), goerr.V("object", s.object))
		}
		if len(key) != keyLength {
			return nil, goerr.New("key object has unexpected length",
				goerr.V("object", s.object), goerr.V("length", len(key)))
		}
		return key, nil
	}
	if !errors.Is(err, storage.ErrObjectNotExist) {
		return nil, goerr.Wrap(err, "failed to open key object",
			goerr.V("bucket", s.bucket), goerr.V("object", s.object))
	}

	key := make([]byte, keyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, goerr.Wrap(err, "failed to generate key")
	}

	// DoesNotExist guards against two instances racing to create the key
	w := obj.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	if _, err := w.Write(key); err != nil {
		return nil, goerr.Wrap(err, "failed to write key object")
	}
	if err := w.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit key object",
			goerr.V("bucket", s.bucket), goerr.V("object", s.object))
	}

	return key, nil
}

// StaticKeySource returns a fixed key. For tests.
type StaticKeySource struct {
	key []byte
}

// NewStaticKeySource creates a KeySource returning the given key
func NewStaticKeySource(key []byte) *StaticKeySource {
	return &StaticKeySource{key: key}
}

func (s *StaticKeySource) GetOrCreateKey(ctx context.Context) ([]byte, error) {
	if len(s.key) != keyLength {
		return nil, goerr.New("static key has unexpected length", goerr.V("length", len(s.key)))
	}
	return s.key, nil
}
