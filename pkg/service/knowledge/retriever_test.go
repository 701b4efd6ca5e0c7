package knowledge_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
)

func TestRetrieverGetContext(t *testing.T) {
	ctx := context.Background()

	t.Run("nil store yields sentinel", func(t *testing.T) {
		r := knowledge.NewRetriever(nil)
		gt.Value(t, r.GetContext(ctx, "chest pain")).Equal(knowledge.NoKnowledgeSentinel)
	})

	t.Run("empty store yields sentinel", func(t *testing.T) {
		store, err := knowledge.New(ctx, knowledge.NewStaticKeySource(testKey), nil)
		gt.NoError(t, err).Required()

		r := knowledge.NewRetriever(store)
		gt.Value(t, r.GetContext(ctx, "chest pain")).Equal(knowledge.NoKnowledgeSentinel)
	})

	t.Run("formats matches with rank, category and specialty", func(t *testing.T) {
		store := newTestStore(t)
		r := knowledge.NewRetriever(store)

		out := r.GetContext(ctx, "Crushing chest pain radiating to the arm")
		gt.String(t, out).Contains("Relevant Medical Knowledge:")
		gt.String(t, out).Contains("1. [EMERGENCY] (Cardiology)")
		gt.String(t, out).Contains("Crushing chest pain radiating to the arm")
	})

	t.Run("includes at most three matches", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()
		r := knowledge.NewRetriever(store)

		out := r.GetContext(ctx, "anything")
		gt.String(t, out).Contains("3. [")
		gt.Bool(t, len(out) > 0).True()
	})
}
