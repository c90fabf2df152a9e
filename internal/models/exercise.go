package models

type Exercise struct {
	BaseModel
	TrainingID  uint   `gorm:"index;not null" json:"training_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Series      int    `gorm:"default:0" json:"series"`
	Repetitions int    `gorm:"default:0" json:"repetitions"`
	RestSeconds int    `gorm:"default:0" json:"rest_seconds"`
}

func (Exercise) Fillable() []string {
	return []string{"name", "description", "training_id", "series", "repetitions", "rest_seconds"}
}
