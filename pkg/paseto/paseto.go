package paseto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
)

const DefaultTokenTTL = 24 * time.Hour

type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Role   models.Role        `json:"role"`
}

func (c *Claims) Session() models.Session {
	return models.Session{UserID: c.UserID, Role: c.Role}
}

// Maker issues and validates v2.local tokens with a 32-byte symmetric key.
type Maker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	ttl          time.Duration
}

func NewPasetoMaker(secretBase64 string) (*Maker, error) {
	key, err := decodeKey(secretBase64)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET harus tepat 32 byte setelah decode Base64, didapat %d byte", len(key))
	}
	return &Maker{paseto: paseto.NewV2(), symmetricKey: key, ttl: DefaultTokenTTL}, nil
}

// decodeKey accepts URL-safe (with or without padding) and standard base64.
func decodeKey(s string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.URLEncoding,
		base64.RawURLEncoding,
		base64.StdEncoding,
	}
	for _, enc := range encodings {
		if key, err := enc.DecodeString(s); err == nil {
			return key, nil
		}
	}
	return nil, errors.New("PASETO_SECRET bukan string Base64 yang valid")
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		Subject:    user.ID.Hex(),
		IssuedAt:   now,
		Expiration: now.Add(m.ttl),
		NotBefore:  now,
	}

	// custom claims disimpan sebagai string
	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", string(user.Role))

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*Claims, error) {
	var (
		token  paseto.JSONToken
		footer string
	)

	if err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("gagal mendekripsi token paseto: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("validasi token gagal: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(token.Get("user_id"))
	if err != nil {
		return nil, fmt.Errorf("format user_id tidak valid: %w", err)
	}

	return &Claims{
		UserID: userID,
		Email:  token.Get("email"),
		Role:   models.Role(token.Get("role")),
	}, nil
}
