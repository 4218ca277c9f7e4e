package reservations

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// Envelope is the encrypted form in which the upstream service delivers
// reservations. Every field is base64 encoded. EncryptedAESKey is an AES-256
// key wrapped with RSA-OAEP. EncryptedData is the AES-256-GCM ciphertext of
// the reservations, sealed with IV as the nonce, and AuthTag is the
// corresponding GCM authentication tag.
type Envelope struct {
	EncryptedData   string `json:"encryptedData"`
	EncryptedAESKey string `json:"encryptedAesKey"`
	IV              string `json:"iv"`
	AuthTag         string `json:"authTag"`
}

// ParseEnvelope validates and unmarshals an envelope.
func ParseEnvelope(data []byte) (Envelope, error) {
	envelope := Envelope{}
	violations, err := validate(envelopeSchemaLoader, data)
	if err != nil {
		return envelope, &ErrMalformedEnvelope{Reason: "envelope is not valid JSON"}
	}
	if len(violations) > 0 {
		return envelope, &ErrMalformedEnvelope{
			Reason:  "envelope failed JSON validation",
			Details: violations,
		}
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return envelope, errors.Wrap(err, "error unmarshaling envelope")
	}
	return envelope, nil
}

type decodedEnvelope struct {
	encryptedData   []byte
	encryptedAESKey []byte
	iv              []byte
	authTag         []byte
}

func (e Envelope) decode() (decodedEnvelope, error) {
	d := decodedEnvelope{}
	fields := []struct {
		name  string
		value string
		dest  *[]byte
	}{
		{"encryptedData", e.EncryptedData, &d.encryptedData},
		{"encryptedAesKey", e.EncryptedAESKey, &d.encryptedAESKey},
		{"iv", e.IV, &d.iv},
		{"authTag", e.AuthTag, &d.authTag},
	}
	for _, field := range fields {
		decoded, err := decodeBase64(field.value)
		if err != nil {
			return d, &ErrMalformedEnvelope{
				Reason: field.name + " is not valid base64",
			}
		}
		if len(decoded) == 0 {
			return d, &ErrMalformedEnvelope{Reason: field.name + " is empty"}
		}
		*field.dest = decoded
	}
	return d, nil
}

// decodeBase64 accepts standard base64 with or without padding.
func decodeBase64(s string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
