package models

import "time"

type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// Các category chuẩn của sổ cái
const (
	CategoryRoomCharge   = "Room Charge"
	CategoryTax          = "Tax"
	CategoryFoodBeverage = "Food/Beverage"
	CategoryPayment      = "Payment"
)

type LedgerEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EntryType   EntryType `json:"entryType" gorm:"size:10;index"`
	Category    string    `json:"category" gorm:"size:50"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date" gorm:"index;not null"`
	BookingID   *uint     `json:"bookingId,omitempty" gorm:"index"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
