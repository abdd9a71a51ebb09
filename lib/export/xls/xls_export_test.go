package xlsexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	dbmodels "job-intake-backend/models/db"
)

func TestExportApplicationList(t *testing.T) {
	NewHandler()

	cv := "https://s3.example.com/applications/cv_1_abc_resume.pdf"
	list := []dbmodels.Application{
		{
			FullName:          "Иван Петров",
			Phone:             "+79990001122",
			Email:             "ivan@example.com",
			City:              "Казань",
			JobTitle:          "receptionist",
			CurrentlyEmployed: "yes",
			WhenCanStart:      "immediately",
			YearsOfExperience: 1,
			CvFileUrl:         &cv,
			SubmittedAt:       time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
		},
		{
			FullName: "Анна Прохорова",
			Phone:    "+79990003344",
			Email:    "anna@example.com",
			City:     "Самара",
			JobTitle: "other",
		},
	}

	buf, err := Instance.ExportApplicationList(list)
	require.Nil(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.Nil(t, err)
	defer f.Close()

	sheet := "Анкеты"

	header, err := f.GetCellValue(sheet, "A1")
	require.Nil(t, err)
	require.Equal(t, "ФИО", header)

	name, err := f.GetCellValue(sheet, "A2")
	require.Nil(t, err)
	require.Equal(t, "Иван Петров", name)

	cvCell, err := f.GetCellValue(sheet, "H2")
	require.Nil(t, err)
	require.Equal(t, cv, cvCell)

	secondName, err := f.GetCellValue(sheet, "A3")
	require.Nil(t, err)
	require.Equal(t, "Анна Прохорова", secondName)

	rows, err := f.GetRows(sheet)
	require.Nil(t, err)
	require.Len(t, rows, 3) // заголовок + две анкеты
}
