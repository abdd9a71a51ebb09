package dbmodels

import (
	"time"

	applicationapimodels "job-intake-backend/models/api/application"
)

// Application - одна принятая анкета, строка создаётся единожды и не меняется.
// Для каждой должности своя группа колонок, заполняется ровно одна группа,
// остальные остаются NULL. Мультивыбор хранится строкой с json-массивом,
// пустой массив '[]' отличается от NULL.
type Application struct {
	BaseModel

	// Общие поля
	JobTitle          string  `gorm:"index"` // выбранная должность, дискриминатор
	OtherPosition     *string
	FullName          string
	Email             string
	Phone             string
	City              string
	Country           string
	CurrentlyEmployed string
	WhenCanStart      string
	WhenCanStartShort string
	WorkAvailability  string
	LinkedinPortfolio *string
	AgreeToStore      string

	// Администратор ресепшн
	ReceptionistExperience *string
	ReceptionistYears      *string
	ReceptionistTasks      *string
	BookingSystems         *string
	HandleDifficultClient  *string
	ReceptionistMotivation *string
	HandleMultipleTasks    *string

	// Контент-мейкер
	ContentCreatorExperience      *string
	ContentCreatorOtherExperience *string
	ContentCreatorYears           *string
	ProfessionalExperience        *string
	ActivePlatforms               *string
	OtherPlatform                 *string
	ContentSpecialization         *string
	ToolsSoftware                 *string
	OtherTools                    *string
	PortfolioLinks                *string

	// Телепродажи
	TelesalesExperience            *string `gorm:"column:telesales_experience_new"` // историческое имя колонки
	TelesalesYears                 *string
	TelesalesExperienceDescription *string
	Languages                      *string
	OtherLanguage                  *string
	PhoneCommunicationRating       *string
	MostImportantSkill             *string

	// HR
	HrExperience       *string
	HrYears            *string
	HrTasks            *string
	HandleConfidential *string

	// Финансы
	FinanceExperience *string
	FinanceYears      *string
	FinanceTasks      *string

	// Врач
	LicensedToPractice  *string
	MedicalSpecialty    *string
	ClinicalExperience  *string
	WorkExperienceType  *string
	ProceduresPerformed *string
	Certifications      *string
	PatientSafety       *string

	// Телепродажи и операции
	TelesalesOpsExperience *string
	TelesalesOpsYears      *string
	TelesalesOpsTasks      *string
	CrmExperience          *string
	HandleUnhappyCustomer  *string
	ComfortableSalesOps    *string

	// Операционный менеджер
	OpsManagerExperience *string
	OpsManagerYears      *string
	OpsManagerTasks      *string
	OperationsSystems    *string
	HandleConflicts      *string
	OpsManagerMotivation *string
	ComfortableDecisions *string

	// Другая должность
	OtherPositionName          *string
	OtherFieldExperience       *string
	OtherYears                 *string
	OtherExperienceDescription *string
	ComfortableMultipleTasks   *string

	// Вложения и служебные поля
	CvFileUrl           *string
	AdditionalFilesUrls string // json-массив ссылок
	SampleContentUrls   string // json-массив ссылок
	YearsOfExperience   int    // числовой дубль стажа для старых выгрузок
	SubmittedAt         time.Time
}

// TableName - историческое имя таблицы, анкета переросла одну должность,
// но выгрузки и дашборды завязаны на старое имя
func (Application) TableName() string {
	return "telesales_applications"
}

func (a Application) ToView() applicationapimodels.ApplicationView {
	view := applicationapimodels.ApplicationView{
		ID:          a.ID,
		Position:    a.JobTitle,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		City:        a.City,
		SubmittedAt: a.SubmittedAt.Format(time.RFC3339),
		CVFileURL:   a.CvFileUrl,
	}
	if a.WhenCanStart != "" {
		start := a.WhenCanStart
		view.WhenCanStart = &start
	}
	return view
}
