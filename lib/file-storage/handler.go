package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"

	"job-intake-backend/config"
	"job-intake-backend/models"
	applicationapimodels "job-intake-backend/models/api/application"
	s3client "job-intake-backend/s3"
)

// Provider сохраняет вложение анкеты в хранилище.
// Возвращает публичную ссылку на файл либо nil при любой ошибке,
// наружу ошибки не выходят - анкета принимается и без файла.
type Provider interface {
	UploadEmbedded(ctx context.Context, file applicationapimodels.EmbeddedFile, category models.FileCategory) *string
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		client:        s3client.Client,
		bucketName:    config.Conf.S3.BucketName,
		publicBaseURL: publicBaseURL(),
	}
}

type impl struct {
	client        *minio.Client
	bucketName    string
	publicBaseURL string
}

const defaultContentType = "application/octet-stream"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

func (i impl) UploadEmbedded(ctx context.Context, file applicationapimodels.EmbeddedFile, category models.FileCategory) *string {
	logger := log.
		WithField("category", category).
		WithField("file_name", file.Name)
	if i.client == nil {
		logger.Warn("файл не сохранён, хранилище не инициализировано")
		return nil
	}
	raw, err := file.Decode()
	if err != nil {
		logger.WithError(err).Error("ошибка декодирования вложения")
		return nil
	}
	objectKey := buildObjectKey(category, file.Name)
	contentType := file.Type
	if contentType == "" {
		contentType = defaultContentType
	}
	_, err = i.client.PutObject(ctx, i.bucketName, objectKey, bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки вложения в хранилище")
		return nil
	}
	locator := fmt.Sprintf("%s/%s/%s", i.publicBaseURL, i.bucketName, objectKey)
	logger.WithField("object_key", objectKey).Info("вложение сохранено")
	return &locator
}

// buildObjectKey собирает глобально различимое имя объекта:
// метка времени и случайный суффикс защищают от коллизий
// при одновременной отправке одинаковых файлов
func buildObjectKey(category models.FileCategory, fileName string) string {
	safeName := SanitizeFileName(fileName)
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s_%d_%s_%s", category, time.Now().UnixMilli(), suffix, safeName)
}

// SanitizeFileName заменяет все символы вне [A-Za-z0-9.-] на подчёркивание
func SanitizeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

func publicBaseURL() string {
	if config.Conf.S3.PublicBaseURL != "" {
		return strings.TrimRight(config.Conf.S3.PublicBaseURL, "/")
	}
	scheme := "http"
	if *config.Conf.S3.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, config.Conf.S3.Endpoint)
}
