package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
)

// Knowledge holds CLI flags for the encrypted knowledge index
type Knowledge struct {
	disabled   bool
	indexPath  string
	keyPath    string
	keyBucket  string
	keyObject  string
	corpusPath string
}

// Flags returns CLI flags for knowledge index configuration
func (k *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-knowledge",
			Usage:       "Disable the knowledge index (retrieval degrades to a sentinel)",
			Sources:     cli.EnvVars("RAKSHAK_NO_KNOWLEDGE"),
			Destination: &k.disabled,
		},
		&cli.StringFlag{
			Name:        "knowledge-index",
			Usage:       "File path for the encrypted index snapshot (memory-only when empty)",
			Sources:     cli.EnvVars("RAKSHAK_KNOWLEDGE_INDEX"),
			Destination: &k.indexPath,
		},
		&cli.StringFlag{
			Name:        "knowledge-key",
			Usage:       "File path for the index encryption key",
			Value:       "knowledge.key",
			Sources:     cli.EnvVars("RAKSHAK_KNOWLEDGE_KEY"),
			Destination: &k.keyPath,
		},
		&cli.StringFlag{
			Name:        "knowledge-key-bucket",
			Usage:       "GCS bucket holding the index encryption key (overrides --knowledge-key)",
			Sources:     cli.EnvVars("RAKSHAK_KNOWLEDGE_KEY_BUCKET"),
			Destination: &k.keyBucket,
		},
		&cli.StringFlag{
			Name:        "knowledge-key-object",
			Usage:       "GCS object name of the index encryption key",
			Value:       "knowledge.key",
			Sources:     cli.EnvVars("RAKSHAK_KNOWLEDGE_KEY_OBJECT"),
			Destination: &k.keyObject,
		},
		&cli.StringFlag{
			Name:        "corpus",
			Usage:       "Path to a TOML corpus file (embedded corpus when empty)",
			Sources:     cli.EnvVars("RAKSHAK_CORPUS"),
			Destination: &k.corpusPath,
		},
	}
}

// LogAttrs returns log attributes for the knowledge configuration
func (k *Knowledge) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("disabled", k.disabled),
		slog.String("index_path", k.indexPath),
		slog.String("key_bucket", k.keyBucket),
		slog.String("corpus_path", k.corpusPath),
	}
}

// Disabled reports whether the knowledge index is turned off
func (k *Knowledge) Disabled() bool {
	return k.disabled
}

// Corpus loads the configured corpus, falling back to the embedded one
func (k *Knowledge) Corpus() ([]knowledge.CorpusEntry, error) {
	if k.corpusPath == "" {
		return knowledge.DefaultCorpus(), nil
	}
	return knowledge.LoadCorpus(k.corpusPath)
}

// Configure builds the knowledge index from the flags. Returns nil when
// the index is disabled.
func (k *Knowledge) Configure(ctx context.Context) (*knowledge.Store, error) {
	if k.disabled {
		return nil, nil
	}

	corpus, err := k.Corpus()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load corpus")
	}

	var keys knowledge.KeySource
	if k.keyBucket != "" {
		keys = knowledge.NewGCSKeySource(k.keyBucket, k.keyObject)
	} else {
		keys = knowledge.NewFileKeySource(k.keyPath)
	}

	var opts []knowledge.Option
	if k.indexPath != "" {
		opts = append(opts, knowledge.WithSnapshotPath(k.indexPath))
	}

	store, err := knowledge.New(ctx, keys, corpus, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize knowledge index")
	}

	return store, nil
}
