package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"biaresh/config"
	"biaresh/internal/domain/service"
	"biaresh/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	productPathSeg = "product"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// baseURL is the storefront origin, e.g. https://biaresh.ir
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewConfiguredQRCodeService builds the service from the qrcode config section
func NewConfiguredQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// ProductURL is the storefront page encoded in a product QR code
func (s *qrcodeService) ProductURL(productID int64) string {
	return s.baseURL + "/" + productPathSeg + "/" + strconv.FormatInt(productID, 10)
}

// GenerateProductQR renders the product URL as a PNG
func (s *qrcodeService) GenerateProductQR(productID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR accepts a full or relative product URL and returns its id
func (s *qrcodeService) ParseProductQR(qrData string) (int64, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code URL")
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != productPathSeg {
		return 0, errors.Errorf("not a product URL: %s", qrData)
	}

	id, err := strconv.ParseInt(segments[len(segments)-1], 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse product ID")
	}

	return id, nil
}
