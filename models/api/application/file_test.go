package applicationapimodels

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedFile(t *testing.T) {
	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF, 0x10, 0x0A}

	t.Run(`round-trip сохраняет байты без изменений`, func(t *testing.T) {
		file := NewEmbeddedFile("resume.pdf", "application/pdf", payload)
		require.Equal(t, "resume.pdf", file.Name)
		require.Equal(t, "application/pdf", file.Type)

		raw, err := file.Decode()
		require.Nil(t, err)
		require.Equal(t, payload, raw)
	})

	t.Run(`декодирование data-url с префиксом`, func(t *testing.T) {
		file := EmbeddedFile{
			Data: "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello")),
			Name: "note.txt",
			Type: "text/plain",
		}
		raw, err := file.Decode()
		require.Nil(t, err)
		require.Equal(t, []byte("hello"), raw)
	})

	t.Run(`декодирование чистого base64 без префикса`, func(t *testing.T) {
		file := EmbeddedFile{
			Data: base64.StdEncoding.EncodeToString(payload),
		}
		raw, err := file.Decode()
		require.Nil(t, err)
		require.Equal(t, payload, raw)
	})

	t.Run(`битый base64 даёт ошибку`, func(t *testing.T) {
		file := EmbeddedFile{
			Data: "data:application/pdf;base64,@@@не base64@@@",
		}
		_, err := file.Decode()
		require.NotNil(t, err)
	})
}
