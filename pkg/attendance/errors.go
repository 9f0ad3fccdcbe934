package attendance

import "errors"

// Domain errors. Each one is a precondition failure reported straight to the
// caller; none of them is retried.
var (
	ErrDuplicateCheckIn  = errors.New("anda sudah melakukan check-in hari ini")
	ErrMarkedAbsent      = errors.New("anda sudah tercatat tidak hadir hari ini")
	ErrNoCheckInFound    = errors.New("anda belum melakukan check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("anda sudah melakukan check-out hari ini")
	ErrInvalidInterval   = errors.New("waktu check-out harus setelah waktu check-in")
	ErrNotFound          = errors.New("data tidak ditemukan")
	ErrQRCodeExpired     = errors.New("QR Code sudah kadaluarsa atau tidak berlaku untuk hari ini")
	ErrForbidden         = errors.New("akses ditolak. hak akses manager diperlukan")
)

// ErrInvalidRange rejects a report range whose start is after its end or
// that names only one of its bounds.
var ErrInvalidRange = errors.New("rentang tanggal tidak valid")

// ErrDayNotOver rejects an absence sweep for a day that has not ended yet in
// the service location.
var ErrDayNotOver = errors.New("hari belum berakhir, absensi belum dapat ditutup")
