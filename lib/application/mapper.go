package application

import (
	"encoding/json"
	"time"

	"job-intake-backend/models"
	applicationapimodels "job-intake-backend/models/api/application"
	dbmodels "job-intake-backend/models/db"
)

// AttachmentRefs - уже сохранённые ссылки на вложения анкеты.
// Для файлов, которые не удалось загрузить, ссылки отсутствуют.
type AttachmentRefs struct {
	CvURL          *string
	AdditionalURLs []string
	SampleURLs     []string
}

// соответствие интервала стажа числовой колонке для старых выгрузок,
// неизвестное значение даёт 0
var yearsOfExpMap = map[string]int{
	"less-than-1": 0,
	"0-1":         0,
	"1-2":         1,
	"2-5":         3,
	"3-5":         4,
	"more-than-5": 5,
	"1-3":         2,
	"5+":          5,
}

// BuildRecord проецирует payload анкеты на строку таблицы.
// Общие колонки заполняются всегда, профильная группа колонок -
// ровно одна, по значению дискриминатора. Неизвестная должность
// сводится к группе "other", ошибкой это не считается.
func BuildRecord(form applicationapimodels.ApplicationForm, refs AttachmentRefs, now time.Time) dbmodels.Application {
	whenCanStart := form.WhenCanStart
	if whenCanStart == "" {
		whenCanStart = form.WhenCanStartShort
	}
	rec := dbmodels.Application{
		JobTitle:          form.Position,
		OtherPosition:     optionalStr(form.OtherPosition),
		FullName:          form.FullName,
		Email:             form.Email,
		Phone:             form.Phone,
		City:              form.City,
		Country:           form.City, // совмещённое поле, формой не заполняется
		CurrentlyEmployed: form.CurrentlyEmployed,
		WhenCanStart:      whenCanStart,
		WhenCanStartShort: form.WhenCanStartShort,
		WorkAvailability:  form.WorkAvailability,
		LinkedinPortfolio: optionalStr(form.LinkedinPortfolio),
		AgreeToStore:      form.AgreeToStore,

		CvFileUrl:           refs.CvURL,
		AdditionalFilesUrls: jsonTokens(refs.AdditionalURLs),
		SampleContentUrls:   jsonTokens(refs.SampleURLs),
		SubmittedAt:         now,
	}

	switch models.Position(form.Position) {
	case models.PositionReceptionist:
		rec.ReceptionistExperience = strPtr(form.ReceptionistExperience)
		rec.ReceptionistYears = strPtr(form.ReceptionistYears)
		rec.ReceptionistTasks = jsonTokensPtr(form.ReceptionistTasks)
		rec.BookingSystems = optionalStr(form.BookingSystems)
		rec.HandleDifficultClient = optionalStr(form.HandleDifficultClient)
		rec.ReceptionistMotivation = optionalStr(form.ReceptionistMotivation)
		rec.HandleMultipleTasks = strPtr(form.HandleMultipleTasks)
		rec.YearsOfExperience = yearsBucketToInt(form.ReceptionistYears)
	case models.PositionContentCreator:
		rec.ContentCreatorExperience = strPtr(form.ContentCreatorExperience)
		rec.ContentCreatorOtherExperience = optionalStr(form.ContentCreatorOtherExperience)
		rec.ContentCreatorYears = strPtr(form.ContentCreatorYears)
		rec.ProfessionalExperience = optionalStr(form.ProfessionalExperience)
		rec.ActivePlatforms = jsonTokensPtr(form.ActivePlatforms)
		rec.OtherPlatform = optionalStr(form.OtherPlatform)
		rec.ContentSpecialization = jsonTokensPtr(form.ContentSpecialization)
		rec.ToolsSoftware = jsonTokensPtr(form.ToolsSoftware)
		rec.OtherTools = optionalStr(form.OtherTools)
		rec.PortfolioLinks = optionalStr(form.PortfolioLinks)
		rec.YearsOfExperience = yearsBucketToInt(form.ContentCreatorYears)
	case models.PositionTelesales:
		rec.TelesalesExperience = strPtr(form.TelesalesExperience)
		rec.TelesalesYears = strPtr(form.TelesalesYears)
		rec.TelesalesExperienceDescription = optionalStr(form.TelesalesExperienceDescription)
		rec.Languages = jsonTokensPtr(form.Languages)
		rec.OtherLanguage = optionalStr(form.OtherLanguage)
		rec.PhoneCommunicationRating = strPtr(form.PhoneCommunicationRating)
		rec.MostImportantSkill = optionalStr(form.MostImportantSkill)
		rec.YearsOfExperience = yearsBucketToInt(form.TelesalesYears)
	case models.PositionHR:
		rec.HrExperience = strPtr(form.HRExperience)
		rec.HrYears = strPtr(form.HRYears)
		rec.HrTasks = jsonTokensPtr(form.HRTasks)
		rec.HandleConfidential = optionalStr(form.HandleConfidential)
		rec.YearsOfExperience = yearsBucketToInt(form.HRYears)
	case models.PositionFinance:
		rec.FinanceExperience = strPtr(form.FinanceExperience)
		rec.FinanceYears = strPtr(form.FinanceYears)
		rec.FinanceTasks = jsonTokensPtr(form.FinanceTasks)
		rec.YearsOfExperience = yearsBucketToInt(form.FinanceYears)
	case models.PositionDoctor:
		rec.LicensedToPractice = strPtr(form.LicensedToPractice)
		rec.MedicalSpecialty = strPtr(form.MedicalSpecialty)
		rec.ClinicalExperience = strPtr(form.ClinicalExperience)
		rec.WorkExperienceType = strPtr(form.WorkExperienceType)
		rec.ProceduresPerformed = jsonTokensPtr(form.ProceduresPerformed)
		rec.Certifications = optionalStr(form.Certifications)
		rec.PatientSafety = optionalStr(form.PatientSafety)
		rec.YearsOfExperience = yearsBucketToInt(form.ClinicalExperience)
	case models.PositionTelesalesOps:
		rec.TelesalesOpsExperience = strPtr(form.TelesalesOpsExperience)
		rec.TelesalesOpsYears = strPtr(form.TelesalesOpsYears)
		rec.TelesalesOpsTasks = jsonTokensPtr(form.TelesalesOpsTasks)
		rec.CrmExperience = strPtr(form.CRMExperience)
		rec.HandleUnhappyCustomer = optionalStr(form.HandleUnhappyCustomer)
		rec.ComfortableSalesOps = strPtr(form.ComfortableSalesOps)
		rec.YearsOfExperience = yearsBucketToInt(form.TelesalesOpsYears)
	case models.PositionOperationsManager:
		rec.OpsManagerExperience = strPtr(form.OpsManagerExperience)
		rec.OpsManagerYears = strPtr(form.OpsManagerYears)
		rec.OpsManagerTasks = jsonTokensPtr(form.OpsManagerTasks)
		rec.OperationsSystems = optionalStr(form.OperationsSystems)
		rec.HandleConflicts = optionalStr(form.HandleConflicts)
		rec.OpsManagerMotivation = optionalStr(form.OpsManagerMotivation)
		rec.ComfortableDecisions = strPtr(form.ComfortableDecisions)
		rec.YearsOfExperience = yearsBucketToInt(form.OpsManagerYears)
	default:
		// "other" и любое нераспознанное значение дискриминатора
		rec.OtherPositionName = strPtr(form.OtherPositionName)
		rec.OtherFieldExperience = strPtr(form.OtherFieldExperience)
		rec.OtherYears = strPtr(form.OtherYears)
		rec.OtherExperienceDescription = optionalStr(form.OtherExperienceDescription)
		rec.ComfortableMultipleTasks = strPtr(form.ComfortableMultipleTasks)
		rec.YearsOfExperience = yearsBucketToInt(form.OtherYears)
	}
	return rec
}

func yearsBucketToInt(bucket string) int {
	return yearsOfExpMap[bucket]
}

// jsonTokens сериализует мультивыбор в json-массив строк.
// Пустой список даёт '[]', а не NULL - это различимые состояния.
func jsonTokens(tokens []string) string {
	if tokens == nil {
		tokens = []string{}
	}
	raw, _ := json.Marshal(tokens)
	return string(raw)
}

func jsonTokensPtr(tokens []string) *string {
	value := jsonTokens(tokens)
	return &value
}

func strPtr(value string) *string {
	return &value
}

func optionalStr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
