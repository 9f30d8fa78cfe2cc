package dto

type CreateLedgerEntryRequest struct {
	EntryType   string  `json:"entryType" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required,max=50"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Date        string  `json:"date" binding:"required"`
	BookingID   *uint   `json:"bookingId"`
	Description string  `json:"description" binding:"max=500"`
}
