package applicationapimodels

import (
	apimodels "job-intake-backend/models/api"
)

// ApplicationForm - полный payload анкеты соискателя.
// Поля профильных секций заполняются только для выбранной должности,
// остальные приходят пустыми.
type ApplicationForm struct {
	// Секция 1. Контактные данные
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	CurrentlyEmployed string `json:"currentlyEmployed"`

	// Секция 2. Должность (дискриминатор)
	Position      string `json:"position"`
	OtherPosition string `json:"otherPosition"`

	// Администратор ресепшн
	ReceptionistExperience string   `json:"receptionistExperience"`
	ReceptionistYears      string   `json:"receptionistYears"`
	ReceptionistTasks      []string `json:"receptionistTasks"`
	BookingSystems         string   `json:"bookingSystems"`
	HandleDifficultClient  string   `json:"handleDifficultClient"`
	ReceptionistMotivation string   `json:"receptionistMotivation"`
	HandleMultipleTasks    string   `json:"handleMultipleTasks"`

	// Контент-мейкер
	ContentCreatorExperience      string   `json:"contentCreatorExperience"`
	ContentCreatorOtherExperience string   `json:"contentCreatorOtherExperience"`
	ContentCreatorYears           string   `json:"contentCreatorYears"`
	ProfessionalExperience        string   `json:"professionalExperience"`
	ActivePlatforms               []string `json:"activePlatforms"`
	OtherPlatform                 string   `json:"otherPlatform"`
	ContentSpecialization         []string `json:"contentSpecialization"`
	ToolsSoftware                 []string `json:"toolsSoftware"`
	OtherTools                    string   `json:"otherTools"`
	PortfolioLinks                string   `json:"portfolioLinks"`

	// Телепродажи
	TelesalesExperience            string   `json:"telesalesExperience"`
	TelesalesYears                 string   `json:"telesalesYears"`
	TelesalesExperienceDescription string   `json:"telesalesExperienceDescription"`
	Languages                      []string `json:"languages"`
	OtherLanguage                  string   `json:"otherLanguage"`
	PhoneCommunicationRating       string   `json:"phoneCommunicationRating"`
	MostImportantSkill             string   `json:"mostImportantSkill"`

	// HR
	HRExperience       string   `json:"hrExperience"`
	HRYears            string   `json:"hrYears"`
	HRTasks            []string `json:"hrTasks"`
	HandleConfidential string   `json:"handleConfidential"`

	// Финансы
	FinanceExperience string   `json:"financeExperience"`
	FinanceYears      string   `json:"financeYears"`
	FinanceTasks      []string `json:"financeTasks"`

	// Врач
	LicensedToPractice  string   `json:"licensedToPractice"`
	MedicalSpecialty    string   `json:"medicalSpecialty"`
	ClinicalExperience  string   `json:"clinicalExperience"`
	WorkExperienceType  string   `json:"workExperienceType"`
	ProceduresPerformed []string `json:"proceduresPerformed"`
	Certifications      string   `json:"certifications"`
	PatientSafety       string   `json:"patientSafety"`

	// Телепродажи и операции
	TelesalesOpsExperience string   `json:"telesalesOpsExperience"`
	TelesalesOpsYears      string   `json:"telesalesOpsYears"`
	TelesalesOpsTasks      []string `json:"telesalesOpsTasks"`
	CRMExperience          string   `json:"crmExperience"`
	HandleUnhappyCustomer  string   `json:"handleUnhappyCustomer"`
	ComfortableSalesOps    string   `json:"comfortableSalesOps"`

	// Операционный менеджер
	OpsManagerExperience string   `json:"opsManagerExperience"`
	OpsManagerYears      string   `json:"opsManagerYears"`
	OpsManagerTasks      []string `json:"opsManagerTasks"`
	OperationsSystems    string   `json:"operationsSystems"`
	HandleConflicts      string   `json:"handleConflicts"`
	OpsManagerMotivation string   `json:"opsManagerMotivation"`
	ComfortableDecisions string   `json:"comfortableDecisions"`

	// Другая должность
	OtherPositionName          string `json:"otherPositionName"`
	OtherFieldExperience       string `json:"otherFieldExperience"`
	OtherYears                 string `json:"otherYears"`
	OtherExperienceDescription string `json:"otherExperienceDescription"`
	ComfortableMultipleTasks   string `json:"comfortableMultipleTasks"`

	// Общая доступность
	WhenCanStart      string `json:"whenCanStart"`
	WhenCanStartShort string `json:"whenCanStartShort"`
	WorkAvailability  string `json:"workAvailability"`
	LinkedinPortfolio string `json:"linkedinPortfolio"`
	AgreeToStore      string `json:"agreeToStore"`

	// Вложения
	CVFile          *EmbeddedFile  `json:"cvFile,omitempty"`
	AdditionalFiles []EmbeddedFile `json:"additionalFiles,omitempty"`
	SampleContent   []EmbeddedFile `json:"sampleContent,omitempty"` // примеры работ, актуально для контент-мейкера
}

// SubmitResult - результат приёма анкеты
type SubmitResult struct {
	SubmissionID string `json:"submission_id"`
}

// ApplicationView - строка списка анкет для админки
type ApplicationView struct {
	ID           string  `json:"id"`
	Position     string  `json:"position"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	City         string  `json:"city"`
	SubmittedAt  string  `json:"submitted_at"`
	CVFileURL    *string `json:"cv_file_url,omitempty"`
	WhenCanStart *string `json:"when_can_start,omitempty"`
}

// ApplicationListRequest - фильтр списка анкет
type ApplicationListRequest struct {
	Position string `json:"position"` // пусто - все должности
	Search   string `json:"search"`   // подстрока по имени/почте
	apimodels.Pagination
}
