package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "job-intake-backend/models/db"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"ФИО", "Контакты", "Город", "Должность", "Занят сейчас", "Когда может выйти", "Стаж (лет)", "Резюме", "Дата отправки"}

func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Анкеты")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.FullName); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Город"
		col++
		if err := writeColumn(f, sheet, col, row, item.City); err != nil {
			return row, err
		}

		// "Должность"
		col++
		position := item.JobTitle
		if item.OtherPositionName != nil && *item.OtherPositionName != "" {
			position = fmt.Sprintf("%s (%s)", position, *item.OtherPositionName)
		}
		if err := writeColumn(f, sheet, col, row, position); err != nil {
			return row, err
		}

		// "Занят сейчас"
		col++
		if err := writeColumn(f, sheet, col, row, item.CurrentlyEmployed); err != nil {
			return row, err
		}

		// "Когда может выйти"
		col++
		if err := writeColumn(f, sheet, col, row, item.WhenCanStart); err != nil {
			return row, err
		}

		// "Стаж (лет)"
		col++
		if err := writeColumn(f, sheet, col, row, item.YearsOfExperience); err != nil {
			return row, err
		}

		// "Резюме"
		col++
		if item.CvFileUrl != nil {
			if err := writeColumn(f, sheet, col, row, *item.CvFileUrl); err != nil {
				return row, err
			}
		}

		// "Дата отправки"
		col++
		if !item.SubmittedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
