package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorageConfigured(t *testing.T) {
	t.Run(`пустые значения - не настроено`, func(t *testing.T) {
		conf := new(Configuration)
		require.False(t, conf.StorageConfigured())
	})

	t.Run(`значения-заглушки из шаблона - не настроено`, func(t *testing.T) {
		conf := new(Configuration)
		conf.S3.Endpoint = PlaceholderS3Endpoint
		conf.S3.AccessKeyID = PlaceholderS3AccessKey
		require.False(t, conf.StorageConfigured())
	})

	t.Run(`заполненные значения - настроено`, func(t *testing.T) {
		conf := new(Configuration)
		conf.S3.Endpoint = "s3.example.com"
		conf.S3.AccessKeyID = "AKIA123"
		require.True(t, conf.StorageConfigured())
	})
}
