package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carai/internal/pkg/errs"
)

func TestIngest_TextAttachment(t *testing.T) {
	att := &Attachment{
		Filename: "contrato.txt",
		MimeType: "text/plain",
		Data:     []byte("Parcela: R$ 1.200\nAtraso: 14 meses"),
	}

	got, customErr := Ingest(att)
	require.Nil(t, customErr)
	assert.Equal(t, "Parcela: R$ 1.200\nAtraso: 14 meses", got)
}

func TestIngest_ImageByMIMEType(t *testing.T) {
	att := &Attachment{
		Filename: "painel",
		MimeType: "image/png",
		Data:     []byte{0x89, 0x50, 0x4E, 0x47},
	}

	got, customErr := Ingest(att)
	require.Nil(t, customErr)
	assert.Equal(t, "[imagem anexada: painel]", got)
}

func TestIngest_ImageByExtensionFallback(t *testing.T) {
	att := &Attachment{
		Filename: "FOTO.JPG",
		MimeType: "application/octet-stream",
		Data:     []byte{0xFF, 0xD8, 0xFF},
	}

	got, customErr := Ingest(att)
	require.Nil(t, customErr)
	assert.Equal(t, "[imagem anexada: FOTO.JPG]", got)
}

func TestIngest_InvalidUTF8Rejected(t *testing.T) {
	att := &Attachment{
		Filename: "dump.txt",
		MimeType: "text/plain",
		Data:     []byte{0xFF, 0xFE, 0xFD},
	}

	_, customErr := Ingest(att)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrAttachmentNotText, customErr.Code)
}

func TestIngest_BlockedTypeRejected(t *testing.T) {
	att := &Attachment{
		Filename: "contrato.pdf",
		MimeType: "application/pdf",
		Data:     []byte("%PDF-1.7"),
	}

	_, customErr := Ingest(att)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrAttachmentTypeInvalid, customErr.Code)
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		wantCode int
	}{
		{"empty", 0, errs.ErrInvalidParams},
		{"negative", -1, errs.ErrInvalidParams},
		{"within limit", MaxAttachmentSize, 0},
		{"over limit", MaxAttachmentSize + 1, errs.ErrAttachmentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customErr := ValidateSize(tt.size)
			if tt.wantCode == 0 {
				assert.Nil(t, customErr)
				return
			}
			require.NotNil(t, customErr)
			assert.Equal(t, tt.wantCode, customErr.Code)
		})
	}
}

func TestIngest_TooLarge(t *testing.T) {
	att := &Attachment{
		Filename: "grande.txt",
		MimeType: "text/plain",
		Data:     []byte(strings.Repeat("a", MaxAttachmentSize+1)),
	}

	_, customErr := Ingest(att)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrAttachmentTooLarge, customErr.Code)
}
