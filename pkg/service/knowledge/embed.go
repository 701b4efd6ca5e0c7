package knowledge

import (
	"crypto/sha256"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
)

// Embed maps text to a fixed-dimension vector. It is deterministic and
// total: identical input always yields an identical vector, and any
// string (including empty) embeds without error. The vector is derived
// from the SHA-256 digest of the text with each byte scaled to [0,1].
//
// This gives reproducible retrieval, not semantic similarity; callers
// must not assume learned-embedding quality.
func Embed(text string) []float32 {
	digest := sha256.Sum256([]byte(text))

	vector := make([]float32, model.EmbeddingDimension)
	for i := range vector {
		vector[i] = float32(digest[i%len(digest)]) / 255.0
	}

	return vector
}
