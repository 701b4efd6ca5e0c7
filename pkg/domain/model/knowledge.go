package model

import "github.com/rakshak-ai/rakshak/pkg/domain/types"

// EmbeddingDimension is the dimension of the embedding vector.
// 768 matches common text embedding models so the index layout stays
// compatible if the hash embedder is ever swapped for a learned one.
const EmbeddingDimension = 768

// KnowledgeID identifies a knowledge item in the index
type KnowledgeID string

// KnowledgeItem is a single medical-knowledge snippet held by the
// encrypted index. Items are immutable once inserted except via
// upsert-by-id.
type KnowledgeItem struct {
	ID        KnowledgeID    `json:"id"`
	Embedding []float32      `json:"embedding"`
	Category  types.Category `json:"category"`
	Specialty string         `json:"specialty"`
	Contents  string         `json:"contents"`
}

// RetrievalResult is a single ranked match from a knowledge query.
// Distance is a dissimilarity score: smaller is a better match.
type RetrievalResult struct {
	ID        KnowledgeID    `json:"id"`
	Distance  float64        `json:"distance"`
	Category  types.Category `json:"category"`
	Specialty string         `json:"specialty"`
	Contents  string         `json:"contents"`
}
