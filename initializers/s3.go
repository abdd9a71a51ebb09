package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"job-intake-backend/config"
	s3client "job-intake-backend/s3"
)

func InitS3(ctx context.Context) {
	if !config.Conf.StorageConfigured() {
		log.Warn("S3 клиент не инициализирован: подключение не настроено или оставлено значение-заглушка")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	if err = s3client.EnsureBucket(ctx, minioClient); err != nil {
		log.WithError(err).Error("Ошибка создания корзины для файлов анкет")
	}

	s3client.Client = minioClient
	log.Info("S3 клиент успешно инициализирован")
}
