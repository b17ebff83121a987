// Package keys manages the private keys a client signs private_key_jwt
// assertions with, and exports the public half as a JWK for registration
// with the authorization server.
package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/pkg/errors"
)

const minRSABits = 2048

// KeyPair is a signing key together with the JWS algorithm it is used with.
type KeyPair struct {
	KeyID      string
	PrivateKey crypto.Signer
	Method     jwt.SigningMethod
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a public JSON Web Key
type JWK struct {
	Kty string `json:"kty"`           // Key type (RSA, EC)
	Use string `json:"use,omitempty"` // sig
	Kid string `json:"kid,omitempty"` // Key ID
	Alg string `json:"alg,omitempty"` // Algorithm
	N   string `json:"n,omitempty"`   // RSA modulus
	E   string `json:"e,omitempty"`   // RSA exponent
	Crv string `json:"crv,omitempty"` // EC curve
	X   string `json:"x,omitempty"`   // EC x coordinate
	Y   string `json:"y,omitempty"`   // EC y coordinate
}

// GenerateRSA generates an RS256 key pair. Sizes below 2048 bits are raised to 2048.
func GenerateRSA(keyID string, bits int) (*KeyPair, error) {
	if bits < minRSABits {
		bits = minRSABits
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrap(err, "[keys.GenerateRSA] failed to generate RSA key")
	}
	return &KeyPair{KeyID: keyID, PrivateKey: key, Method: jwt.SigningMethodRS256}, nil
}

// GenerateEC generates an ES256 key pair on P-256.
func GenerateEC(keyID string) (*KeyPair, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "[keys.GenerateEC] failed to generate EC key")
	}
	return &KeyPair{KeyID: keyID, PrivateKey: key, Method: jwt.SigningMethodES256}, nil
}

// LoadPEM parses an RSA (PKCS#1 or PKCS#8) or EC private key. RSA keys sign
// with RS256; EC keys with the ES algorithm matching their curve.
func LoadPEM(keyID string, pemData []byte) (*KeyPair, error) {
	if rsaKey, err := jwt.ParseRSAPrivateKeyFromPEM(pemData); err == nil {
		return &KeyPair{KeyID: keyID, PrivateKey: rsaKey, Method: jwt.SigningMethodRS256}, nil
	}

	ecKey, err := jwt.ParseECPrivateKeyFromPEM(pemData)
	if err != nil {
		return nil, errors.New("[keys.LoadPEM] not an RSA or EC private key")
	}
	method, err := ecMethod(ecKey.Curve)
	if err != nil {
		return nil, err
	}
	return &KeyPair{KeyID: keyID, PrivateKey: ecKey, Method: method}, nil
}

// AssertionConfig returns client assertion settings that sign with kp.
func (kp *KeyPair) AssertionConfig() client.AssertionConfig {
	return client.AssertionConfig{
		SigningMethod: kp.Method,
		Key:           kp.PrivateKey,
		KeyID:         kp.KeyID,
	}
}

// PrivateKeyPEM encodes the private key as PKCS#1 (RSA) or SEC 1 (EC) PEM.
func (kp *KeyPair) PrivateKeyPEM() ([]byte, error) {
	switch key := kp.PrivateKey.(type) {
	case *rsa.PrivateKey:
		return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}), nil
	case *ecdsa.PrivateKey:
		der, err := x509.MarshalECPrivateKey(key)
		if err != nil {
			return nil, errors.Wrap(err, "[KeyPair.PrivateKeyPEM] failed to marshal EC key")
		}
		return pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}), nil
	}
	return nil, errors.Errorf("[KeyPair.PrivateKeyPEM] unsupported key type %T", kp.PrivateKey)
}

// JWK returns the public key in JWK format.
func (kp *KeyPair) JWK() (*JWK, error) {
	jwk := &JWK{Kid: kp.KeyID, Use: "sig", Alg: kp.Method.Alg()}

	switch pub := kp.PrivateKey.Public().(type) {
	case *rsa.PublicKey:
		jwk.Kty = "RSA"
		jwk.N = base64.RawURLEncoding.EncodeToString(pub.N.Bytes())
		jwk.E = base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes())
	case *ecdsa.PublicKey:
		size := (pub.Curve.Params().BitSize + 7) / 8
		jwk.Kty = "EC"
		jwk.Crv = pub.Curve.Params().Name
		jwk.X = base64.RawURLEncoding.EncodeToString(pub.X.FillBytes(make([]byte, size)))
		jwk.Y = base64.RawURLEncoding.EncodeToString(pub.Y.FillBytes(make([]byte, size)))
	default:
		return nil, errors.Errorf("[KeyPair.JWK] unsupported public key type %T", pub)
	}
	return jwk, nil
}

func ecMethod(curve elliptic.Curve) (jwt.SigningMethod, error) {
	switch curve.Params().BitSize {
	case 256:
		return jwt.SigningMethodES256, nil
	case 384:
		return jwt.SigningMethodES384, nil
	case 521:
		return jwt.SigningMethodES512, nil
	}
	return nil, errors.Errorf("[keys.ecMethod] unsupported curve %s", curve.Params().Name)
}
