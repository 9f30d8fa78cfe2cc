package commands

import (
	"context"

	"hotelops/models"
)

// BookingWriter là phần lưu trữ mà các command cần
type BookingWriter interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	SaveBooking(ctx context.Context, b *models.Booking) error
}

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand command để tạo booking mới
type CreateBookingCommand struct {
	booking *models.Booking
	store   BookingWriter
}

func NewCreateBookingCommand(booking *models.Booking, store BookingWriter) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		store:   store,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.store.CreateBooking(ctx, c.booking)
}

// TransitionBookingCommand chuyển trạng thái qua state machine rồi lưu.
// Nếu lưu thất bại, trạng thái cũ được khôi phục trên object.
type TransitionBookingCommand struct {
	booking *models.Booking
	target  models.BookingStatus
	store   BookingWriter
}

func NewTransitionBookingCommand(booking *models.Booking, target models.BookingStatus, store BookingWriter) *TransitionBookingCommand {
	return &TransitionBookingCommand{
		booking: booking,
		target:  target,
		store:   store,
	}
}

func (c *TransitionBookingCommand) Execute(ctx context.Context) error {
	previous := c.booking.Status
	if err := models.Transition(c.booking, c.target); err != nil {
		return err
	}
	if err := c.store.SaveBooking(ctx, c.booking); err != nil {
		c.booking.Status = previous
		return err
	}
	return nil
}
