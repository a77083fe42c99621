package service

// QRCodeService defines the interface for product share QR codes
type QRCodeService interface {
	// GenerateProductQR returns a PNG encoding the storefront URL of the product
	GenerateProductQR(productID int64) ([]byte, error)

	// ParseProductQR extracts the product id from a storefront product URL
	ParseProductQR(qrData string) (int64, error)
}
