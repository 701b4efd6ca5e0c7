package knowledge

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/types"
)

//go:embed corpus.toml
var defaultCorpusTOML []byte

// CorpusEntry is one seed knowledge snippet loaded at initialization
type CorpusEntry struct {
	ID        string `toml:"id"`
	Category  string `toml:"category"`
	Specialty string `toml:"specialty"`
	Contents  string `toml:"contents"`
}

// Validate checks if the CorpusEntry is valid
func (e *CorpusEntry) Validate() error {
	if e.ID == "" {
		return goerr.New("corpus entry id is required")
	}
	if _, err := types.ParseCategory(e.Category); err != nil {
		return goerr.Wrap(err, "invalid corpus entry category", goerr.V("id", e.ID))
	}
	if e.Contents == "" {
		return goerr.New("corpus entry contents is required", goerr.V("id", e.ID))
	}
	return nil
}

type corpusFile struct {
	Knowledge []CorpusEntry `toml:"knowledge"`
}

func (f *corpusFile) validate() error {
	ids := make(map[string]bool, len(f.Knowledge))
	for _, entry := range f.Knowledge {
		if err := entry.Validate(); err != nil {
			return goerr.Wrap(err, "invalid corpus entry")
		}
		if ids[entry.ID] {
			return goerr.New("duplicate corpus entry id", goerr.V("id", entry.ID))
		}
		ids[entry.ID] = true
	}
	return nil
}

// DefaultCorpus returns the embedded seed corpus
func DefaultCorpus() []CorpusEntry {
	var f corpusFile
	// The embedded corpus is validated by tests; a broken embed is a bug.
	if err := toml.Unmarshal(defaultCorpusTOML, &f); err != nil {
		panic("embedded corpus is invalid: " + err.Error())
	}
	return f.Knowledge
}

// LoadCorpus loads a corpus from a TOML file
func LoadCorpus(path string) ([]CorpusEntry, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read corpus file", goerr.V("path", path))
	}

	var f corpusFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse corpus TOML", goerr.V("path", path))
	}

	if err := f.validate(); err != nil {
		return nil, goerr.Wrap(err, "corpus validation failed", goerr.V("path", path))
	}

	return f.Knowledge, nil
}
