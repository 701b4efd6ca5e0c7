package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

// Store is an encrypted similarity-search index over short medical
// knowledge snippets. Items live in memory in insertion order; at rest
// they are persisted as an AES-256-GCM sealed snapshot that only the
// original key can open. Reads are concurrent; writes take a coarse
// lock since the corpus is read-mostly.
type Store struct {
	mu    sync.RWMutex
	items []*model.KnowledgeItem
	index map[model.KnowledgeID]int

	key          []byte
	snapshotPath string
}

// Option is a functional option for Store configuration
type Option func(*Store)

// WithSnapshotPath sets the file path for the encrypted index snapshot.
// Without it the index is memory-only and rebuilt from the corpus on
// every start.
func WithSnapshotPath(path string) Option {
	return func(s *Store) {
		s.snapshotPath = path
	}
}

// New creates the knowledge index. It obtains the encryption key from
// keys, loads an existing snapshot when present and decryptable, and
// otherwise seeds the index from corpus and writes a fresh snapshot.
// A snapshot that no longer decrypts (lost key) is discarded and the
// index is rebuilt; only a missing key is fatal.
func New(ctx context.Context, keys KeySource, corpus []CorpusEntry, opts ...Option) (*Store, error) {
	if keys == nil {
		return nil, goerr.Wrap(ErrInitFailed, "key source is required")
	}

	key, err := keys.GetOrCreateKey(ctx)
	if err != nil {
		return nil, goerr.Wrap(ErrInitFailed, "failed to obtain encryption key", goerr.V("cause", err.Error()))
	}

	s := &Store{
		index: make(map[model.KnowledgeID]int),
		key:   key,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.snapshotPath != "" {
		loaded, err := s.loadSnapshot()
		if err != nil {
			logging.From(ctx).Warn("knowledge snapshot unusable, rebuilding from corpus",
				"path", s.snapshotPath, "error", err.Error())
		} else if loaded {
			logging.From(ctx).Info("loaded knowledge index snapshot",
				"path", s.snapshotPath, "items", len(s.items))
			return s, nil
		}
	}

	for _, entry := range corpus {
		if err := s.Upsert(ctx, model.KnowledgeID(entry.ID), entry.Contents, types.Category(entry.Category), entry.Specialty); err != nil {
			return nil, goerr.Wrap(err, "failed to seed corpus entry", goerr.V("id", entry.ID))
		}
	}

	if s.snapshotPath != "" {
		if err := s.Flush(ctx); err != nil {
			return nil, goerr.Wrap(err, "failed to write initial snapshot")
		}
	}

	logging.From(ctx).Info("seeded knowledge index from corpus", "items", len(s.items))
	return s, nil
}

// Upsert embeds contents and inserts or replaces the item under id.
// Replacing keeps the item's original insertion position so query
// tie-breaking stays stable.
func (s *Store) Upsert(ctx context.Context, id model.KnowledgeID, contents string, category types.Category, specialty string) error {
	if id == "" {
		return goerr.New("knowledge item id is required")
	}
	if !category.IsValid() {
		return goerr.New("invalid knowledge category", goerr.V("category", category))
	}

	item := &model.KnowledgeItem{
		ID:        id,
		Embedding: Embed(contents),
		Category:  category,
		Specialty: specialty,
		Contents:  contents,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, exists := s.index[id]; exists {
		s.items[pos] = item
		return nil
	}

	s.index[id] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

// Query embeds text and returns up to topK results ordered by ascending
// distance, ties broken by insertion order. It never fails: an empty
// store or a non-positive topK yields an empty slice.
func (s *Store) Query(ctx context.Context, text string, topK int) []*model.RetrievalResult {
	if topK <= 0 {
		return nil
	}

	queryVec := Embed(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*model.RetrievalResult, 0, len(s.items))
	for _, item := range s.items {
		results = append(results, &model.RetrievalResult{
			ID:        item.ID,
			Distance:  cosineDistance(queryVec, item.Embedding),
			Category:  item.Category,
			Specialty: item.Specialty,
			Contents:  item.Contents,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if topK < len(results) {
		results = results[:topK]
	}

	return results
}

// Len returns the number of items in the index
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// snapshot is the persisted index layout
type snapshot struct {
	Items []*model.KnowledgeItem `json:"items"`
}

// Flush seals the current items and writes the snapshot atomically via a
// temp file rename. No-op when no snapshot path is configured.
func (s *Store) Flush(ctx context.Context) error {
	if s.snapshotPath == "" {
		return nil
	}

	s.mu.RLock()
	data, err := json.Marshal(snapshot{Items: s.items})
	s.mu.RUnlock()
	if err != nil {
		return goerr.Wrap(err, "failed to marshal snapshot")
	}

	sealed, err := seal(s.key, data)
	if err != nil {
		return goerr.Wrap(err, "failed to seal snapshot")
	}

	if dir := filepath.Dir(s.snapshotPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return goerr.Wrap(err, "failed to create snapshot directory", goerr.V("dir", dir))
		}
	}

	tmp := s.snapshotPath + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return goerr.Wrap(err, "failed to write snapshot", goerr.V("path", tmp))
	}
	if err := os.Rename(tmp, s.snapshotPath); err != nil {
		return goerr.Wrap(err, "failed to replace snapshot", goerr.V("path", s.snapshotPath))
	}

	return nil
}

// loadSnapshot reads and decrypts the snapshot file. It returns false
// when no snapshot exists, and an error when one exists but cannot be
// opened with the current key.
func (s *Store) loadSnapshot() (bool, error) {
	// #nosec G304 - path is provided by CLI configuration
	sealed, err := os.ReadFile(s.snapshotPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, goerr.Wrap(err, "failed to read snapshot", goerr.V("path", s.snapshotPath))
	}

	data, err := open(s.key, sealed)
	if err != nil {
		return false, goerr.Wrap(err, "snapshot does not decrypt with current key")
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return false, goerr.Wrap(err, "failed to unmarshal snapshot")
	}

	s.items = snap.Items
	s.index = make(map[model.KnowledgeID]int, len(snap.Items))
	for i, item := range snap.Items {
		s.index[item.ID] = i
	}

	return true, nil
}

// cosineDistance is 1 - cosine similarity, so smaller means closer.
// Mismatched or zero vectors are treated as maximally distant.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) {
		return 1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 1
	}

	return 1 - dot/denom
}
