package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

// значения-заглушки из шаблона .env, с ними сервис работает без сохранения анкет
const (
	PlaceholderS3Endpoint  = "your_s3_endpoint_here"
	PlaceholderS3AccessKey = "your_s3_access_key_here"
)

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		// лимит тела запроса, анкета приходит одним json вместе с base64 файлами
		BodyLimitMb int `default:"100" env:"APP_BODY_LIMIT_MB"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"job-intake" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"applications" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		// публичный адрес для ссылок на загруженные файлы, по умолчанию Endpoint
		PublicBaseURL string `default:"" env:"S3_PUBLIC_BASE_URL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		// почта hr для уведомлений о новых анкетах, пусто - уведомления отключены
		NotifyEmail string `default:"" env:"SMTP_NOTIFY_EMAIL"`
	}
	Admin struct {
		// статичный токен для админского api (список/выгрузка анкет), пусто - api закрыт
		APIKey string `default:"" env:"ADMIN_API_KEY"`
	}
}

// StorageConfigured сообщает, задано ли подключение к хранилищу файлов.
// Если значения не заполнены или остались заглушками из шаблона,
// приём анкет отвечает отказом без единого сетевого вызова.
func (c *Configuration) StorageConfigured() bool {
	if c.S3.Endpoint == "" || c.S3.AccessKeyID == "" {
		return false
	}
	if c.S3.Endpoint == PlaceholderS3Endpoint || c.S3.AccessKeyID == PlaceholderS3AccessKey {
		return false
	}
	return true
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
