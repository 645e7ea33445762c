package domain

type Contact struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Telefone     string `gorm:"type:varchar(30)" json:"telefone"`
	Tipo         string `gorm:"type:varchar(20)" json:"tipo"`
	PassageiroID int    `gorm:"not null;index" json:"passageiro_id"`
}

type AddContactRequest struct {
	PassageiroID int    `json:"passageiro_id" valid:"required~Passageiro ID is required"`
	Telefone     string `json:"telefone"`
	Tipo         string `json:"tipo"`
}

type ContactView struct {
	ID       int    `json:"id"`
	Telefone string `json:"telefone"`
	Tipo     string `json:"tipo"`
}
