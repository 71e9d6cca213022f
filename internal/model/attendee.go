package model

// Attendee source values, recorded at creation and never changed.
const (
	SourceManual = "manual"
	SourceCSV    = "csv"
)

// Attendee represents one registered person entitled to a badge.
type Attendee struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Email       string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Mobile      string `json:"mobile" gorm:"uniqueIndex;size:32;not null"`
	Designation string `json:"designation" gorm:"size:255"`
	Category    string `json:"category" gorm:"size:255;not null"`
	Company     string `json:"company" gorm:"size:255"`
	Printed     bool   `json:"printed" gorm:"default:false"`
	Scanned     bool   `json:"scanned" gorm:"default:false"`
	Barcode     string `json:"barcode" gorm:"uniqueIndex;size:16"`
	Source      string `json:"source" gorm:"size:16;default:'manual'"`
}

// EditableFields carries the six admin-editable attendee fields. Barcode,
// printed, scanned and source are not reachable through updates.
type EditableFields struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Category    string
	Company     string
}
