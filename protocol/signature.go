package protocol

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidSignature is returned by VerifySignature when the signature
// does not verify against the given message and public key.
var ErrInvalidSignature = errors.New("protocol: invalid signature")

// ErrMalformedSignature is returned when the signature is not valid hex
// or is not ed25519.SignatureSize bytes long.
var ErrMalformedSignature = errors.New("protocol: malformed signature")

// VerifySignature checks a hex-encoded ed25519 signature over
// "<timestamp>:<hotkey>:<uuid>" against a raw 32-byte public key.
//
// The embedding neuron framework's real signer uses a Substrate sr25519
// keypair addressed by SS58-encoded hotkey; decoding that address and
// recovering its key from the chain is chain-sync machinery this module
// does not own. Callers resolve a hotkey to a raw ed25519 public key
// themselves and pass it in — this function owns only the verification
// arithmetic, so it has a real, testable implementation rather than a
// stub that can't be exercised.
func VerifySignature(pubKey ed25519.PublicKey, timestamp int64, hotkey, uuid, signatureHex string) error {
	if len(pubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("protocol: public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pubKey))
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, ed25519.SignatureSize, len(sig))
	}
	msg := signingMessage(timestamp, hotkey, uuid)
	if !ed25519.Verify(pubKey, msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign produces a hex-encoded ed25519 signature for the same message
// VerifySignature checks, for use by tests and by callers that already
// hold a raw ed25519 private key instead of a Substrate one.
func Sign(privKey ed25519.PrivateKey, timestamp int64, hotkey, uuid string) string {
	sig := ed25519.Sign(privKey, signingMessage(timestamp, hotkey, uuid))
	return hex.EncodeToString(sig)
}

func signingMessage(timestamp int64, hotkey, uuid string) []byte {
	return []byte(strconv.FormatInt(timestamp, 10) + ":" + hotkey + ":" + uuid)
}
