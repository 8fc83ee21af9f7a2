package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"safetravelbuddy/server/auth/key"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func testKeyPair(t *testing.T) *key.KeyPair {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	keyPair, err := key.NewKeyPairFromRSAPrivateKeyPem(string(pemBytes))
	if err != nil {
		t.Fatal(err)
	}

	return keyPair
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("cats-are-great")
	assert.Nil(t, err)
	assert.NotEqual(t, "cats-are-great", hash)

	assert.True(t, CheckPasswordHash("cats-are-great", hash))
	assert.False(t, CheckPasswordHash("dogs-are-great", hash))
}

func TestEncodeDecodeJWT(t *testing.T) {
	keyPair := testKeyPair(t)

	claims := TokenClaims{
		Name:  "Asha",
		Email: "asha@example.com",
		StandardClaims: jwt.StandardClaims{
			Subject:   "42",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	tokenString, err := EncodeJWT(claims, keyPair)
	assert.Nil(t, err)

	decoded, err := DecodeJWT(tokenString, keyPair)
	assert.Nil(t, err)
	assert.Equal(t, "Asha", decoded.Name)
	assert.Equal(t, "asha@example.com", decoded.Email)
	assert.Equal(t, "42", decoded.Subject)
}

func TestDecodeJWTRejectsExpiredToken(t *testing.T) {
	keyPair := testKeyPair(t)

	claims := TokenClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "42",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}

	tokenString, err := EncodeJWT(claims, keyPair)
	assert.Nil(t, err)

	_, err = DecodeJWT(tokenString, keyPair)
	assert.NotNil(t, err)
}

func TestDecodeJWTRejectsTokenFromAnotherKey(t *testing.T) {
	keyPair := testKeyPair(t)
	otherKeyPair := testKeyPair(t)

	tokenString, err := EncodeJWT(TokenClaims{
		StandardClaims: jwt.StandardClaims{Subject: "42", ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}, otherKeyPair)
	assert.Nil(t, err)

	_, err = DecodeJWT(tokenString, keyPair)
	assert.NotNil(t, err)
}
