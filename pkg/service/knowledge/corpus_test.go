package knowledge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
)

func TestDefaultCorpus(t *testing.T) {
	corpus := knowledge.DefaultCorpus()
	gt.Array(t, corpus).Length(10)

	for _, entry := range corpus {
		gt.NoError(t, entry.Validate())
	}
}

func TestLoadCorpus(t *testing.T) {
	t.Run("loads a valid corpus file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.toml")
		content := `
[[knowledge]]
id = "test_entry"
category = "emergency"
specialty = "Cardiology"
contents = "Sudden severe chest pain"
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		corpus, err := knowledge.LoadCorpus(path)
		gt.NoError(t, err).Required()
		gt.Array(t, corpus).Length(1)
		gt.Value(t, corpus[0].ID).Equal("test_entry")
		gt.Value(t, corpus[0].Specialty).Equal("Cardiology")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := knowledge.LoadCorpus(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Value(t, err).NotNil()
	})

	t.Run("duplicate ids fail validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.toml")
		content := `
[[knowledge]]
id = "dup"
category = "emergency"
contents = "first"

[[knowledge]]
id = "dup"
category = "non_emergency"
contents = "second"
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := knowledge.LoadCorpus(path)
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid category fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.toml")
		content := `
[[knowledge]]
id = "bad"
category = "urgent"
contents = "contents"
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := knowledge.LoadCorpus(path)
		gt.Value(t, err).NotNil()
	})
}
