package models

import "github.com/google/uuid"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type Transaction struct {
	BaseModel
	Description string          `json:"description" gorm:"type:varchar(255);not null"`
	Amount      float64         `json:"amount" gorm:"type:numeric(12,2);not null"`
	Type        TransactionType `json:"type" gorm:"type:varchar(10);not null;index"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}
