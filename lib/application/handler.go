package application

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"job-intake-backend/config"
	"job-intake-backend/db"
	applicationstore "job-intake-backend/lib/application/store"
	xlsexport "job-intake-backend/lib/export/xls"
	filestorage "job-intake-backend/lib/file-storage"
	"job-intake-backend/lib/smtp"
	initchecker "job-intake-backend/lib/utils/init-checker"
	"job-intake-backend/models"
	applicationapimodels "job-intake-backend/models/api/application"
)

type Provider interface {
	Submit(ctx context.Context, form applicationapimodels.ApplicationForm) (applicationapimodels.SubmitResult, error)
	List(filter applicationapimodels.ApplicationListRequest) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	ExportToXls(position string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:             applicationstore.NewInstance(db.DB),
		fileStorage:       filestorage.Instance,
		xls:               xlsexport.Instance,
		storageConfigured: config.Conf.StorageConfigured(),
		notifyEmail:       config.Conf.Smtp.NotifyEmail,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"fileStorage", instance.fileStorage,
		"xls", instance.xls,
	)
	Instance = instance
}

type impl struct {
	store             applicationstore.Provider
	fileStorage       filestorage.Provider
	xls               xlsexport.Provider
	storageConfigured bool
	notifyEmail       string
}

// Submit принимает анкету целиком: загружает вложения (по возможности),
// проецирует поля на строку таблицы и делает одну вставку.
// Неудача загрузки отдельного файла анкету не останавливает,
// неудача вставки - единственная фатальная ошибка.
func (i impl) Submit(ctx context.Context, form applicationapimodels.ApplicationForm) (applicationapimodels.SubmitResult, error) {
	logger := log.
		WithField("position", form.Position).
		WithField("email", form.Email)
	if !i.storageConfigured {
		logger.
			WithField("additional_files", len(form.AdditionalFiles)).
			WithField("sample_content", len(form.SampleContent)).
			Warn("анкета не сохранена: подключение к хранилищу не настроено или оставлено значение-заглушка")
		return applicationapimodels.SubmitResult{},
			errors.New("приём анкет не настроен: не заданы адрес сервиса и ключ доступа, обратитесь к администратору")
	}

	if !models.Position(form.Position).IsKnown() {
		// анкета всё равно принимается, профильные ответы лягут в группу "other"
		logger.Warn("неизвестное значение должности в анкете")
	}

	refs := i.resolveAttachments(ctx, form)
	rec := BuildRecord(form, refs, time.Now().UTC())

	id, err := i.store.Create(rec)
	if err != nil {
		return applicationapimodels.SubmitResult{}, errors.Wrap(err, "ошибка сохранения анкеты в БД")
	}
	logger.WithField("submission_id", id).Info("анкета принята")

	i.notifyHR(form, id)

	return applicationapimodels.SubmitResult{SubmissionID: id}, nil
}

// resolveAttachments последовательно сохраняет вложения: резюме,
// дополнительные файлы, примеры работ. Недоступная ссылка просто
// не попадает в результат.
func (i impl) resolveAttachments(ctx context.Context, form applicationapimodels.ApplicationForm) AttachmentRefs {
	refs := AttachmentRefs{
		AdditionalURLs: []string{},
		SampleURLs:     []string{},
	}
	if form.CVFile != nil {
		refs.CvURL = i.fileStorage.UploadEmbedded(ctx, *form.CVFile, models.FileCategoryCV)
	}
	for _, file := range form.AdditionalFiles {
		if url := i.fileStorage.UploadEmbedded(ctx, file, models.FileCategoryAdditional); url != nil {
			refs.AdditionalURLs = append(refs.AdditionalURLs, *url)
		}
	}
	for _, file := range form.SampleContent {
		if url := i.fileStorage.UploadEmbedded(ctx, file, models.FileCategorySample); url != nil {
			refs.SampleURLs = append(refs.SampleURLs, *url)
		}
	}
	return refs
}

func (i impl) notifyHR(form applicationapimodels.ApplicationForm, submissionID string) {
	if i.notifyEmail == "" || smtp.Instance == nil {
		return
	}
	message := fmt.Sprintf("Новая анкета %s\nДолжность: %s\nИмя: %s\nПочта: %s\nТелефон: %s\nГород: %s",
		submissionID, form.Position, form.FullName, form.Email, form.Phone, form.City)
	// уведомление не влияет на результат приёма, ошибка только логируется
	if err := smtp.Instance.SendEMail(form.Email, i.notifyEmail, message, "Новая анкета"); err != nil {
		log.WithError(err).WithField("submission_id", submissionID).Error("не удалось отправить уведомление о новой анкете")
	}
}

func (i impl) List(filter applicationapimodels.ApplicationListRequest) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToView())
	}
	return result, rowCount, nil
}

func (i impl) ExportToXls(position string) (*bytes.Buffer, error) {
	recList, err := i.store.ListByPosition(position)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportApplicationList(recList)
}
