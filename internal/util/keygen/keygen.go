package keygen

import (
	"crypto/md5" // #nosec G501 - EC2 defines the imported key fingerprint as MD5
	"crypto/rsa"
	"crypto/sha1" // #nosec G505 - EC2 defines the created key fingerprint as SHA1
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ErrPassphraseRequired is returned for encrypted keys read without a
// passphrase.
var ErrPassphraseRequired = errors.New("key is encrypted: passphrase required")

// Fingerprints holds both EC2 fingerprints of a key.
type Fingerprints struct {
	// Public is the 47-character MD5 fingerprint of the public key.
	Public string
	// Private is the 59-character SHA1 fingerprint of the private key.
	Private string
}

// ParseRSAPrivateKey parses a PEM-encoded RSA private key. passphrase may be
// empty for unencrypted keys.
func ParseRSAPrivateKey(pemBytes []byte, passphrase string) (*rsa.PrivateKey, error) {
	var (
		key any
		err error
	)
	if passphrase == "" {
		key, err = ssh.ParseRawPrivateKey(pemBytes)
	} else {
		key, err = ssh.ParseRawPrivateKeyWithPassphrase(pemBytes, []byte(passphrase))
	}
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, ErrPassphraseRequired
		}
		return nil, fmt.Errorf("invalid RSA private key or passphrase: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("invalid RSA private key: got %T", key)
	}
	return rsaKey, nil
}

// PublicFingerprint returns the MD5 fingerprint of the key's public half.
func PublicFingerprint(key *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode public key: %w", err)
	}
	sum := md5.Sum(der) // #nosec G401
	return colonHex(sum[:]), nil
}

// PrivateFingerprint returns the SHA1 fingerprint of the PKCS#8 private key.
func PrivateFingerprint(key *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", fmt.Errorf("failed to encode private key: %w", err)
	}
	sum := sha1.Sum(der) // #nosec G401
	return colonHex(sum[:]), nil
}

// Fingerprint computes both fingerprints of a PEM-encoded RSA key.
func Fingerprint(pemBytes []byte, passphrase string) (*Fingerprints, error) {
	key, err := ParseRSAPrivateKey(pemBytes, passphrase)
	if err != nil {
		return nil, err
	}
	pub, err := PublicFingerprint(key)
	if err != nil {
		return nil, err
	}
	priv, err := PrivateFingerprint(key)
	if err != nil {
		return nil, err
	}
	return &Fingerprints{Public: pub, Private: priv}, nil
}

// FingerprintFile reads a key file and fingerprints it.
func FingerprintFile(path, passphrase string) (*Fingerprints, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return Fingerprint(data, passphrase)
}

func colonHex(b []byte) string {
	h := hex.EncodeToString(b)
	parts := make([]string, 0, len(h)/2)
	for i := 0; i < len(h); i += 2 {
		parts = append(parts, h[i:i+2])
	}
	return strings.Join(parts, ":")
}
