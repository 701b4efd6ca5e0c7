package knowledge

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for the knowledge index
var (
	// ErrInitFailed indicates the index could not be set up, typically
	// because the encryption key could not be obtained or created.
	// It is fatal for the index only; the triage pipeline keeps working
	// without retrieval.
	ErrInitFailed = goerr.New("knowledge index initialization failed")
)

// KeySource provides the opaque encryption key that protects the index
// at rest. Implementations back it with a local key file, a GCS object,
// or a fixed key for tests. The same key must be returned across process
// restarts to keep an existing snapshot decryptable.
type KeySource interface {
	GetOrCreateKey(ctx context.Context) ([]byte, error)
}

// keyLength is the AES-256 key size in bytes
const keyLength = 32
