package initializers

import (
	"context"

	"job-intake-backend/config"
	"job-intake-backend/fiberlog"
	"job-intake-backend/lib/application"
	xlsexport "job-intake-backend/lib/export/xls"
	filestorage "job-intake-backend/lib/file-storage"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	application.NewHandler()
}
