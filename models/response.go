package models

// Response shapes referenced by the swagger annotations.

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User berhasil didaftarkan"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User    User   `json:"user"`
}

type TodayStatusResponse struct {
	Status Status `json:"status" example:"not-checked-in"`
}

type QRCodeResponse struct {
	Message     string `json:"message" example:"QR Code berhasil dibuat"`
	QRCodeImage string `json:"qr_code_image" example:"data:image/png;base64,iVBORw0..."`
	Code        string `json:"code" example:"5b0c6f7e-0b5e-4a51-9c8f-1f1f0f6f2c11"`
	ExpiresAt   string `json:"expires_at" example:"2026-10-18T23:00:00+07:00"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Hak akses manager diperlukan"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Karyawan tidak ditemukan"`
}
