package application

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"job-intake-backend/models"
	applicationapimodels "job-intake-backend/models/api/application"
	dbmodels "job-intake-backend/models/db"
)

type fakeStore struct {
	created   []dbmodels.Application
	createErr error
}

func (f *fakeStore) Create(rec dbmodels.Application) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, rec)
	return "sub-1", nil
}

func (f *fakeStore) List(filter applicationapimodels.ApplicationListRequest) ([]dbmodels.Application, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeStore) ListByPosition(position string) ([]dbmodels.Application, error) {
	return f.created, nil
}

// fakeUploader отдаёт ссылку по имени файла, для имён из failNames имитирует
// недоступное хранилище
type fakeUploader struct {
	failNames map[string]bool
	calls     int
}

func (f *fakeUploader) UploadEmbedded(ctx context.Context, file applicationapimodels.EmbeddedFile, category models.FileCategory) *string {
	f.calls++
	if f.failNames[file.Name] {
		return nil
	}
	url := "https://s3.example.com/applications/" + string(category) + "_" + file.Name
	return &url
}

type fakeXls struct{}

func (f fakeXls) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	return &bytes.Buffer{}, nil
}

func newTestImpl(store *fakeStore, uploader *fakeUploader) impl {
	return impl{
		store:             store,
		fileStorage:       uploader,
		xls:               fakeXls{},
		storageConfigured: true,
	}
}

func testForm() applicationapimodels.ApplicationForm {
	cv := applicationapimodels.NewEmbeddedFile("resume.pdf", "application/pdf", []byte("cv-bytes"))
	return applicationapimodels.ApplicationForm{
		FullName:          "Анна Прохорова",
		Email:             "anna@example.com",
		Phone:             "+79990001122",
		City:              "Самара",
		CurrentlyEmployed: "no",
		Position:          "receptionist",
		ReceptionistYears: "1-2",
		ReceptionistTasks: []string{"answering-calls"},
		AgreeToStore:      "yes",
		CVFile:            &cv,
		AdditionalFiles: []applicationapimodels.EmbeddedFile{
			applicationapimodels.NewEmbeddedFile("letter.pdf", "application/pdf", []byte("a")),
			applicationapimodels.NewEmbeddedFile("cert.pdf", "application/pdf", []byte("b")),
		},
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run(`успешный приём анкеты`, func(t *testing.T) {
		store := &fakeStore{}
		uploader := &fakeUploader{}
		handler := newTestImpl(store, uploader)

		resp, err := handler.Submit(ctx, testForm())
		require.Nil(t, err)
		require.Equal(t, "sub-1", resp.SubmissionID)
		require.Len(t, store.created, 1)
		require.Equal(t, 3, uploader.calls) // cv + два дополнительных файла

		rec := store.created[0]
		require.NotNil(t, rec.CvFileUrl)
		require.Equal(t, `["https://s3.example.com/applications/additional_letter.pdf","https://s3.example.com/applications/additional_cert.pdf"]`, rec.AdditionalFilesUrls)
	})

	t.Run(`отказ одного файла не мешает остальным и вставке строки`, func(t *testing.T) {
		store := &fakeStore{}
		uploader := &fakeUploader{failNames: map[string]bool{"letter.pdf": true}}
		handler := newTestImpl(store, uploader)

		resp, err := handler.Submit(ctx, testForm())
		require.Nil(t, err)
		require.Equal(t, "sub-1", resp.SubmissionID)
		require.Equal(t, 3, uploader.calls)
		require.Len(t, store.created, 1)

		rec := store.created[0]
		require.Equal(t, `["https://s3.example.com/applications/additional_cert.pdf"]`, rec.AdditionalFilesUrls)
	})

	t.Run(`отказ загрузки резюме оставляет ссылку пустой`, func(t *testing.T) {
		store := &fakeStore{}
		uploader := &fakeUploader{failNames: map[string]bool{"resume.pdf": true}}
		handler := newTestImpl(store, uploader)

		_, err := handler.Submit(ctx, testForm())
		require.Nil(t, err)
		require.Len(t, store.created, 1)
		require.Nil(t, store.created[0].CvFileUrl)
	})

	t.Run(`хранилище не настроено - отказ без единого вызова`, func(t *testing.T) {
		store := &fakeStore{}
		uploader := &fakeUploader{}
		handler := newTestImpl(store, uploader)
		handler.storageConfigured = false

		_, err := handler.Submit(ctx, testForm())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "не настроен")
		require.Equal(t, 0, uploader.calls)
		require.Len(t, store.created, 0)
	})

	t.Run(`ошибка вставки доходит до вызывающего с текстом БД`, func(t *testing.T) {
		store := &fakeStore{createErr: errors.New(`null value in column "email" violates not-null constraint`)}
		uploader := &fakeUploader{}
		handler := newTestImpl(store, uploader)

		resp, err := handler.Submit(ctx, testForm())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "not-null constraint")
		require.Equal(t, "", resp.SubmissionID)
	})

	t.Run(`две одинаковые анкеты дают две строки`, func(t *testing.T) {
		store := &fakeStore{}
		uploader := &fakeUploader{}
		handler := newTestImpl(store, uploader)

		_, err := handler.Submit(ctx, testForm())
		require.Nil(t, err)
		_, err = handler.Submit(ctx, testForm())
		require.Nil(t, err)
		require.Len(t, store.created, 2)
	})
}
