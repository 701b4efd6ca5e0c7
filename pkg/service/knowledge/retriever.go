package knowledge

import (
	"context"
	"fmt"
	"strings"
)

// NoKnowledgeSentinel is returned by GetContext when retrieval yields
// nothing. Downstream prompts embed this text verbatim, so it must stay
// stable.
const NoKnowledgeSentinel = "No relevant medical knowledge found."

// retrievalTopK is the number of matches injected into generation prompts
const retrievalTopK = 3

// Retriever renders knowledge query results as a context block for
// injection into generation prompts. A nil Retriever or a Retriever
// without a store degrades to the sentinel instead of failing.
type Retriever struct {
	store *Store
}

// NewRetriever creates a Retriever over the given store. store may be
// nil when knowledge retrieval is unavailable.
func NewRetriever(store *Store) *Retriever {
	return &Retriever{store: store}
}

// GetContext returns the top matches for query formatted as a
// human-readable context block, or the sentinel when nothing is found.
// It never fails; retrieval degradation must not abort the pipeline.
func (r *Retriever) GetContext(ctx context.Context, query string) string {
	if r == nil || r.store == nil {
		return NoKnowledgeSentinel
	}

	results := r.store.Query(ctx, query, retrievalTopK)
	if len(results) == 0 {
		return NoKnowledgeSentinel
	}

	var sb strings.Builder
	sb.WriteString("Relevant Medical Knowledge:\n\n")
	for i, result := range results {
		fmt.Fprintf(&sb, "%d. [%s] (%s)\n", i+1, strings.ToUpper(result.Category.String()), result.Specialty)
		fmt.Fprintf(&sb, "   %s\n\n", result.Contents)
	}

	return sb.String()
}
