package models

type Training struct {
	BaseModel
	UserID      *uint      `gorm:"index" json:"user_id,omitempty"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Exercises   []Exercise `gorm:"foreignKey:TrainingID" json:"exercises,omitempty"`
}

func (Training) Fillable() []string {
	return []string{"name", "description", "user_id"}
}
