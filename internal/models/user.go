package models

const (
	RoleCustomer = "customer"
	RoleTrainer  = "trainer"
	RoleAdmin    = "admin"
)

type User struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;unique" json:"email"`
	// Role is only written through UserRepository.AssignRole.
	Role string `gorm:"type:varchar(50);not null;default:customer;index" json:"role"`
}

func (User) Fillable() []string {
	return []string{"name", "email"}
}
