package models

import (
	"time"

	"github.com/lib/pq"
)

type BookingStatus string

const (
	BookingConfirmed   BookingStatus = "confirmed"
	BookingCheckedIn   BookingStatus = "checked_in"
	BookingStayOver    BookingStatus = "stay_over"
	BookingMaintenance BookingStatus = "maintenance"
	BookingCancelled   BookingStatus = "cancelled"
	BookingNoShow      BookingStatus = "no_show"
	BookingCheckedOut  BookingStatus = "checked_out"
)

// DateLayout là định dạng ngày lưu trong CheckIn/CheckOut
const DateLayout = "2006-01-02"

type Booking struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ReferenceCode string         `json:"referenceCode" gorm:"uniqueIndex;size:64"`
	RoomRefs      pq.StringArray `json:"roomRefs" gorm:"type:text[]"`
	CheckIn       string         `json:"checkIn" gorm:"index;size:10"`  // ngày nhận phòng, 2006-01-02
	CheckOut      string         `json:"checkOut" gorm:"index;size:10"` // ngày trả phòng (không tính đêm này)
	Status        BookingStatus  `json:"status" gorm:"size:20;index"`
	Adults        int            `json:"adults" gorm:"default:1"`
	Children      int            `json:"children" gorm:"default:0"`
	GuestName     string         `json:"guestName,omitempty"`
	GuestEmail    string         `json:"guestEmail,omitempty"`
	GuestPhone    string         `json:"guestPhone,omitempty"`
	TotalPrice    float64        `json:"totalPrice"`
	Notes         string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsInactive: booking đã hủy, không đến hoặc đã trả phòng thì không chiếm phòng
func (b *Booking) IsInactive() bool {
	switch b.Status {
	case BookingCancelled, BookingNoShow, BookingCheckedOut:
		return true
	}
	return false
}

func (b *Booking) References(roomName string) bool {
	for _, ref := range b.RoomRefs {
		if SameRoomName(ref, roomName) {
			return true
		}
	}
	return false
}

// RoomCount là số phòng booking chiếm, tối thiểu 1
func (b *Booking) RoomCount() int {
	if len(b.RoomRefs) == 0 {
		return 1
	}
	return len(b.RoomRefs)
}
