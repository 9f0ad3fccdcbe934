package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"attendance-tracker/config"
	"attendance-tracker/models"
)

type QRCodeRepository interface {
	CreateQRCode(ctx context.Context, qrCode *models.QRCode) error
	// FindQRCodeByValue returns nil, nil for an unknown code.
	FindQRCodeByValue(ctx context.Context, code string) (*models.QRCode, error)
}

type qrCodeRepository struct {
	collection *mongo.Collection
}

func NewQRCodeRepository(db *mongo.Database) QRCodeRepository {
	return &qrCodeRepository{collection: db.Collection(config.QRCodeCollection)}
}

func (r *qrCodeRepository) CreateQRCode(ctx context.Context, qrCode *models.QRCode) error {
	if qrCode.ID.IsZero() {
		qrCode.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, qrCode); err != nil {
		return fmt.Errorf("gagal membuat QR Code: %w", err)
	}
	return nil
}

func (r *qrCodeRepository) FindQRCodeByValue(ctx context.Context, code string) (*models.QRCode, error) {
	var qrCode models.QRCode
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&qrCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari QR Code: %w", err)
	}
	return &qrCode, nil
}
