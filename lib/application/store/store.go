package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applicationapimodels "job-intake-backend/models/api/application"
	dbmodels "job-intake-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	List(filter applicationapimodels.ApplicationListRequest) (list []dbmodels.Application, rowCount int64, err error)
	ListByPosition(position string) (list []dbmodels.Application, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create вставляет одну строку анкеты. Повторных попыток нет,
// идентификатор генерирует БД.
func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	tx := i.db.Omit(clause.Associations).
		Create(&rec)
	if tx.Error != nil {
		return "", tx.Error
	}
	if tx.RowsAffected == 0 {
		return "", errors.New("БД не вернула данные после вставки")
	}
	return rec.ID, nil
}

func (i impl) List(filter applicationapimodels.ApplicationListRequest) (list []dbmodels.Application, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Application{})
	if filter.Position != "" {
		tx.Where("job_title = ?", filter.Position)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(full_name) like ? OR LOWER(email) like ?", search, search)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка подсчёта анкет")
	}
	page, limit := filter.GetPage()
	err = tx.Order("submitted_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка анкет")
	}
	return list, rowCount, nil
}

func (i impl) ListByPosition(position string) (list []dbmodels.Application, err error) {
	tx := i.db.Model(dbmodels.Application{})
	if position != "" {
		tx.Where("job_title = ?", position)
	}
	err = tx.Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения анкет для выгрузки")
	}
	return list, nil
}
