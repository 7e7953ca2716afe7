package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strings"

	"github.com/meridiancruises/compliance-backend/utils"
)

func MustParseSigningKey(privateKeyString string) *rsa.PrivateKey {
	// when a multi-line env variable is passed to the docker container by docker-compose, it escapes the newlines
	privateKeyString = strings.Replace(privateKeyString, "\\n", "\n", -1)
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		log.Fatalf("failed to decode PEM block containing RSA private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("Can't load AUTHENTICATION_JWT_SIGNING_KEY private key %s", err)
	}
	return privateKey
}

// ReadParseOrGenerateSigningKey loads the token signing key from the env
// value or file, falling back to an ephemeral key. Tokens signed with an
// ephemeral key do not survive a restart.
func ReadParseOrGenerateSigningKey(ctx context.Context, keyString, keyFile string) *rsa.PrivateKey {
	logger := utils.LoggerFromContext(ctx)

	if keyString == "" && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			log.Fatalf("Can't read the signing key file %s: %s", keyFile, err)
		}
		keyString = string(content)
	}

	if keyString != "" {
		return MustParseSigningKey(keyString)
	}

	logger.WarnContext(ctx,
		"No token signing key configured, generating an ephemeral one. Issued tokens will be invalidated on restart.")
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("Can't generate a signing key: %s", err)
	}
	return privateKey
}
