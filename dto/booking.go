package dto

import "hotelops/models"

type CreateBookingRequest struct {
	RoomRefs   []string `json:"roomRefs" binding:"required,min=1,dive,required"`
	CheckIn    string   `json:"checkIn" binding:"required"`
	CheckOut   string   `json:"checkOut" binding:"required"`
	Status     string   `json:"status" binding:"omitempty,oneof=confirmed checked_in maintenance"`
	Adults     int      `json:"adults" binding:"gte=0"`
	Children   int      `json:"children" binding:"gte=0"`
	GuestName  string   `json:"guestName" binding:"max=255"`
	GuestEmail string   `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone string   `json:"guestPhone"`
	TotalPrice float64  `json:"totalPrice" binding:"gte=0"`
	Notes      string   `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=checked_in stay_over checked_out cancelled no_show"`
}

type BookingListQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Room   string `form:"room"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type BookingSearchResult struct {
	Booking models.Booking `json:"booking"`
	Score   float64        `json:"score"`
}
