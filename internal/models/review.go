package models

import "gorm.io/datatypes"

// Review - отзыв клиента об исполнителе по завершенной задаче
type Review struct {
	BaseModel
	TaskID          string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_task_worker"`
	WorkerID        string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_task_worker;index:idx_reviews_worker"`
	ClientID        string `gorm:"type:varchar(36);not null;index"`
	Rating          int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment         string `gorm:"type:text"`
	Skills          datatypes.JSON
	Professionalism *int
	Communication   *int
	Quality         *int
	Timeliness      *int
	WouldHireAgain  *bool
}

func (r *Review) GetSkills() []string {
	return stringsFromJSON(r.Skills)
}

func (r *Review) SetSkills(skills []string) {
	r.Skills = stringsToJSON(skills)
}
