package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rakshak-ai/rakshak/pkg/cli/config"
	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

func cmdSeed() *cli.Command {
	var knowledgeCfg config.Knowledge

	return &cli.Command{
		Name:  "seed",
		Usage: "Seed the encrypted knowledge index from the corpus and write a snapshot",
		Flags: knowledgeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if knowledgeCfg.Disabled() {
				return goerr.New("cannot seed with --no-knowledge")
			}

			store, err := knowledgeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize knowledge index")
			}

			// Re-apply every corpus entry so an existing snapshot picks up
			// corpus changes instead of shadowing them
			corpus, err := knowledgeCfg.Corpus()
			if err != nil {
				return goerr.Wrap(err, "failed to load corpus")
			}
			for _, entry := range corpus {
				if err := store.Upsert(ctx, model.KnowledgeID(entry.ID), entry.Contents, types.Category(entry.Category), entry.Specialty); err != nil {
					return goerr.Wrap(err, "failed to seed corpus entry", goerr.V("id", entry.ID))
				}
			}

			if err := store.Flush(ctx); err != nil {
				return goerr.Wrap(err, "failed to write snapshot")
			}

			logging.Default().Info("knowledge index seeded", "items", store.Len())
			return nil
		},
	}
}
