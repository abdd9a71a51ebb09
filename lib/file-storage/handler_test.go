package filestorage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"job-intake-backend/models"
	applicationapimodels "job-intake-backend/models/api/application"
)

func TestSanitizeFileName(t *testing.T) {
	t.Run(`символы вне [A-Za-z0-9.-] заменяются подчёркиванием`, func(t *testing.T) {
		require.Equal(t, "my_resume_final_.pdf", SanitizeFileName("my resume（final）.pdf"))
		require.Equal(t, "_______.pdf", SanitizeFileName("медфайл.pdf"))
		require.Equal(t, "plain-name.2024.pdf", SanitizeFileName("plain-name.2024.pdf"))
	})
}

func TestBuildObjectKey(t *testing.T) {
	t.Run(`ключ начинается с категории и кончается безопасным именем`, func(t *testing.T) {
		key := buildObjectKey(models.FileCategoryCV, "my resume.pdf")
		require.True(t, strings.HasPrefix(key, "cv_"))
		require.True(t, strings.HasSuffix(key, "_my_resume.pdf"))
		// category, timestamp, суффикс, имя
		require.GreaterOrEqual(t, len(strings.Split(key, "_")), 4)
	})

	t.Run(`повторные вызовы дают разные ключи`, func(t *testing.T) {
		first := buildObjectKey(models.FileCategoryAdditional, "doc.pdf")
		second := buildObjectKey(models.FileCategoryAdditional, "doc.pdf")
		require.NotEqual(t, first, second)
	})
}

func TestUploadEmbedded(t *testing.T) {
	t.Run(`без клиента хранилища возвращается nil, а не паника`, func(t *testing.T) {
		handler := impl{bucketName: "applications", publicBaseURL: "https://s3.example.com"}
		file := applicationapimodels.NewEmbeddedFile("resume.pdf", "application/pdf", []byte("data"))
		require.Nil(t, handler.UploadEmbedded(context.Background(), file, models.FileCategoryCV))
	})
}
