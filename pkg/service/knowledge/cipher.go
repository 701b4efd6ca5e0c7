package knowledge

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/m-mizutani/goerr/v2"
)

// seal encrypts data with AES-256-GCM. The random nonce is prepended to
// the ciphertext so open can recover it.
func seal(key, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cipher")
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GCM")
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, goerr.Wrap(err, "failed to generate nonce")
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

// open decrypts data produced by seal. It fails when the key does not
// match the one used for sealing, which callers treat as an invalidated
// snapshot.
func open(key, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cipher")
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GCM")
	}

	if len(data) < gcm.NonceSize() {
		return nil, goerr.New("sealed data is too short", goerr.V("length", len(data)))
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decrypt sealed data")
	}

	return plaintext, nil
}
