package models

// Position - выбранная в анкете должность, дискриминатор группы профильных вопросов
type Position string

const (
	PositionReceptionist      Position = "receptionist"
	PositionContentCreator    Position = "marketing-content-creator"
	PositionTelesales         Position = "telesales"
	PositionHR                Position = "human-resources"
	PositionFinance           Position = "finance-accounting"
	PositionDoctor            Position = "doctor"
	PositionTelesalesOps      Position = "telesales-operations"
	PositionOperationsManager Position = "operations-manager"
	PositionOther             Position = "other"
)

// KnownPositions - фиксированный перечень должностей анкеты.
// Любое другое значение дискриминатора сводится к группе "other".
var KnownPositions = []Position{
	PositionReceptionist,
	PositionContentCreator,
	PositionTelesales,
	PositionHR,
	PositionFinance,
	PositionDoctor,
	PositionTelesalesOps,
	PositionOperationsManager,
	PositionOther,
}

func (p Position) IsKnown() bool {
	for _, known := range KnownPositions {
		if p == known {
			return true
		}
	}
	return false
}

// FileCategory - логическая папка файла в хранилище
type FileCategory string

const (
	FileCategoryCV         FileCategory = "cv"
	FileCategoryAdditional FileCategory = "additional"
	FileCategorySample     FileCategory = "sample"
)
