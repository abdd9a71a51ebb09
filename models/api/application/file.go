package applicationapimodels

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// EmbeddedFile - самодостаточное представление вложения внутри json анкеты:
// содержимое файла в base64 (браузер присылает data-url из FileReader.readAsDataURL),
// исходное имя и заявленный media type.
type EmbeddedFile struct {
	Data string `json:"data"` // data-url вида "data:<mime>;base64,<payload>" либо чистый base64
	Name string `json:"name"` // исходное имя файла
	Type string `json:"type"` // заявленный content type, может быть пустым
}

// NewEmbeddedFile кодирует сырые байты в data-url представление
func NewEmbeddedFile(name, contentType string, payload []byte) EmbeddedFile {
	return EmbeddedFile{
		Data: fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(payload)),
		Name: name,
		Type: contentType,
	}
}

// Decode восстанавливает исходные байты файла.
// Префикс data-url отбрасывается, содержимое после запятой - base64.
func (f EmbeddedFile) Decode() ([]byte, error) {
	payload := f.Data
	if idx := strings.Index(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка декодирования содержимого файла")
	}
	return raw, nil
}
