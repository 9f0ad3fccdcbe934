package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
)

// QR codes expire at this local hour of the day they were issued.
const qrExpiryHour = 23

type GeneratedQRCode struct {
	QRCode models.QRCode
	// ImageDataURL is the PNG rendering as a data: URL.
	ImageDataURL string
}

type ScanAction string

const (
	ScanCheckIn  ScanAction = "check-in"
	ScanCheckOut ScanAction = "check-out"
)

type ScanResult struct {
	Action ScanAction
	Record *models.AttendanceRecord
}

func (s *AttendanceService) GenerateQRCode(ctx context.Context, session models.Session, now time.Time) (*GeneratedQRCode, error) {
	if err := requireManager(session); err != nil {
		return nil, err
	}
	local := now.In(s.loc)
	today := models.DateOf(local)

	qr := models.QRCode{
		Code:      uuid.New().String(),
		Date:      today,
		ExpiresAt: time.Date(local.Year(), local.Month(), local.Day(), qrExpiryHour, 0, 0, 0, s.loc),
		CreatedBy: session.UserID,
		CreatedAt: now,
	}
	if err := s.qrCodes.CreateQRCode(ctx, &qr); err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(qr.Code, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat gambar QR Code: %w", err)
	}

	return &GeneratedQRCode{
		QRCode:       qr,
		ImageDataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

// Scan validates a kiosk code and moves the caller one step through today's
// state machine: check-in when there is no record, check-out when it is open.
func (s *AttendanceService) Scan(ctx context.Context, session models.Session, code string, now time.Time) (*ScanResult, error) {
	qr, err := s.qrCodes.FindQRCodeByValue(ctx, code)
	if err != nil {
		return nil, err
	}
	if qr == nil {
		return nil, attendance.ErrNotFound
	}
	if !qr.ValidAt(now, s.Today(now)) {
		return nil, attendance.ErrQRCodeExpired
	}

	rec, err := s.TodayRecord(ctx, session, now)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec, err = s.CheckIn(ctx, session, now)
		if err != nil {
			return nil, err
		}
		return &ScanResult{Action: ScanCheckIn, Record: rec}, nil
	}

	rec, err = s.CheckOut(ctx, session, now)
	if err != nil {
		return nil, err
	}
	return &ScanResult{Action: ScanCheckOut, Record: rec}, nil
}
