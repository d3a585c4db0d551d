package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type WorkerProfile struct {
	BaseModel
	UserID         string          `gorm:"type:varchar(36);uniqueIndex;not null"`
	Skills         datatypes.JSON  // ["plumbing", "electrics"]
	Bio            string          `gorm:"type:text"`
	Experience     int             // years
	HourlyRate     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	City           string          `gorm:"size:100;index"`
	District       string          `gorm:"size:100"`
	Availability   Availability    `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	RatingAverage  float64         `gorm:"not null;default:0"`
	RatingCount    int             `gorm:"not null;default:0"`
	CompletedTasks int             `gorm:"not null;default:0"`
}

// GetSkills возвращает навыки как slice строк
func (p *WorkerProfile) GetSkills() []string {
	return stringsFromJSON(p.Skills)
}

// SetSkills устанавливает навыки
func (p *WorkerProfile) SetSkills(skills []string) {
	p.Skills = stringsToJSON(skills)
}

type ClientProfile struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);uniqueIndex;not null"`
	CompanyName string `gorm:"size:200"`
	Phone       string `gorm:"size:50"`
	City        string `gorm:"size:100"`
	TasksPosted int    `gorm:"not null;default:0"`
}
