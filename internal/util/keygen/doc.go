// Package keygen computes the fingerprints EC2 reports for RSA key pairs.
//
// EC2 shows an MD5 digest of the DER-encoded public key for imported key
// pairs and a SHA1 digest of the DER-encoded PKCS#8 private key for key
// pairs it created. Both are rendered as colon-separated hex.
package keygen
