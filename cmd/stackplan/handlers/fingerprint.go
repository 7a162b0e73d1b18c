package handlers

import (
	"errors"
	"fmt"

	"github.com/imamik/stackplan/internal/util/keygen"
)

// FingerprintOptions selects which fingerprints to print.
type FingerprintOptions struct {
	Passphrase  string
	PublicOnly  bool
	PrivateOnly bool
}

// fingerprintFile reads and fingerprints a key - can be replaced in tests.
var fingerprintFile = keygen.FingerprintFile

// Fingerprint prints the EC2 fingerprints of an RSA private key. The
// public form matches keys imported into EC2, the private form keys EC2
// generated.
func Fingerprint(path string, opts FingerprintOptions) error {
	if opts.PublicOnly && opts.PrivateOnly {
		return errors.New("--public-only and --private-only are mutually exclusive")
	}

	fp, err := fingerprintFile(path, opts.Passphrase)
	if err != nil {
		if errors.Is(err, keygen.ErrPassphraseRequired) {
			return fmt.Errorf("%s: %w (use --passphrase)", path, err)
		}
		return err
	}

	switch {
	case opts.PublicOnly:
		fmt.Fprintln(stdout, fp.Public)
	case opts.PrivateOnly:
		fmt.Fprintln(stdout, fp.Private)
	default:
		fmt.Fprintf(stdout, "Public key fingerprint (imported keys):   %s\n", fp.Public)
		fmt.Fprintf(stdout, "Private key fingerprint (generated keys): %s\n", fp.Private)
	}
	return nil
}
