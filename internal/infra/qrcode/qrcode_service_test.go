package qrcode

import (
	"testing"

	"biaresh/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://biaresh.ir")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://biaresh.ir/")

	qrBytes, err := service.GenerateProductQR(1712345678901)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ProductURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://biaresh.ir/").(*qrcodeService)

	assert.Equal(t, "https://biaresh.ir/product/42", service.ProductURL(42))
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://biaresh.ir")

	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{name: "absolute", data: "https://biaresh.ir/product/42", want: 42},
		{name: "relative", data: "/product/7", want: 7},
		{name: "trailing slash", data: "https://biaresh.ir/product/9/", want: 9},
		{name: "not a product", data: "https://biaresh.ir/shop", wantErr: true},
		{name: "bad id", data: "https://biaresh.ir/product/abc", wantErr: true},
		{name: "empty", data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseProductQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://shop.example"}}
	service := NewConfiguredQRCodeService(cfg).(*qrcodeService)

	id, err := service.ParseProductQR(service.ProductURL(1700000000000))
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), id)
}
