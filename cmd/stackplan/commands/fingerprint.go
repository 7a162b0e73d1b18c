package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
)

// Fingerprint returns the command printing EC2 key fingerprints.
func Fingerprint() *cobra.Command {
	var opts handlers.FingerprintOptions

	cmd := &cobra.Command{
		Use:   "fingerprint <path>",
		Short: "Print the EC2 fingerprints of an RSA private key",
		Long: `Print the fingerprints EC2 shows for an RSA private key.

EC2 fingerprints imported keys over the public key (MD5) and keys it
generated over the private key (SHA1).`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Fingerprint(args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.PublicOnly, "public-only", "p", false, "Print only the public key fingerprint")
	cmd.Flags().BoolVarP(&opts.PrivateOnly, "private-only", "P", false, "Print only the private key fingerprint")
	cmd.Flags().StringVar(&opts.Passphrase, "passphrase", "", "Passphrase of an encrypted key")
	cmd.MarkFlagsMutuallyExclusive("public-only", "private-only")

	return cmd
}
