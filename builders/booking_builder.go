package builders

import (
	"strings"

	"hotelops/models"

	"github.com/google/uuid"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo builder với trạng thái mặc định confirmed
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: models.BookingConfirmed},
	}
}

// WithRooms thêm danh sách phòng, bỏ khoảng trắng và tên trùng
func (b *BookingBuilder) WithRooms(roomNames ...string) *BookingBuilder {
	for _, name := range roomNames {
		name = strings.TrimSpace(name)
		if name == "" || b.booking.References(name) {
			continue
		}
		b.booking.RoomRefs = append(b.booking.RoomRefs, name)
	}
	return b
}

// WithStay thêm ngày nhận/trả phòng (YYYY-MM-DD)
func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	return b
}

// WithStatus thêm trạng thái, bỏ qua giá trị rỗng
func (b *BookingBuilder) WithStatus(status models.BookingStatus) *BookingBuilder {
	if status != "" {
		b.booking.Status = status
	}
	return b
}

// WithGuests thêm số khách
func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = strings.TrimSpace(guestName)
	b.booking.GuestPhone = strings.TrimSpace(guestPhone)
	b.booking.GuestEmail = strings.TrimSpace(guestEmail)
	return b
}

// WithTotalPrice thêm tổng giá
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.booking.Notes = notes
	return b
}

// Build tạo booking hoàn chỉnh, sinh mã tham chiếu nếu chưa có
func (b *BookingBuilder) Build() *models.Booking {
	if b.booking.ReferenceCode == "" {
		b.booking.ReferenceCode = "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	}
	return b.booking
}
