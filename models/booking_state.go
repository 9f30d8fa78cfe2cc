package models

import "errors"

var ErrInvalidTransition = errors.New("invalid booking status transition")

// BookingState định nghĩa các chuyển trạng thái hợp lệ của booking
type BookingState interface {
	CheckIn(b *Booking) error
	StayOver(b *Booking) error
	CheckOut(b *Booking) error
	Cancel(b *Booking) error
	NoShow(b *Booking) error
}

// rejectAll là trạng thái cuối, từ chối mọi chuyển đổi
type rejectAll struct{}

func (rejectAll) CheckIn(*Booking) error  { return ErrInvalidTransition }
func (rejectAll) StayOver(*Booking) error { return ErrInvalidTransition }
func (rejectAll) CheckOut(*Booking) error { return ErrInvalidTransition }
func (rejectAll) Cancel(*Booking) error   { return ErrInvalidTransition }
func (rejectAll) NoShow(*Booking) error   { return ErrInvalidTransition }

// ConfirmedState: đã đặt, chưa nhận phòng
type ConfirmedState struct{ rejectAll }

func (ConfirmedState) CheckIn(b *Booking) error {
	b.Status = BookingCheckedIn
	return nil
}

func (ConfirmedState) Cancel(b *Booking) error {
	b.Status = BookingCancelled
	return nil
}

func (ConfirmedState) NoShow(b *Booking) error {
	b.Status = BookingNoShow
	return nil
}

// CheckedInState: khách đang ở
type CheckedInState struct{ rejectAll }

func (CheckedInState) StayOver(b *Booking) error {
	b.Status = BookingStayOver
	return nil
}

func (CheckedInState) CheckOut(b *Booking) error {
	b.Status = BookingCheckedOut
	return nil
}

// StayOverState: khách ở qua đêm audit
type StayOverState struct{ rejectAll }

// CheckIn đưa booking về checked_in vào đêm trước ngày trả phòng
func (StayOverState) CheckIn(b *Booking) error {
	b.Status = BookingCheckedIn
	return nil
}

func (StayOverState) CheckOut(b *Booking) error {
	b.Status = BookingCheckedOut
	return nil
}

// MaintenanceState: booking dùng để khóa phòng, chỉ có thể hủy
type MaintenanceState struct{ rejectAll }

func (MaintenanceState) Cancel(b *Booking) error {
	b.Status = BookingCancelled
	return nil
}

// TerminalState: cancelled, no_show, checked_out
type TerminalState struct{ rejectAll }

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status BookingStatus) BookingState {
	switch status {
	case BookingConfirmed:
		return ConfirmedState{}
	case BookingCheckedIn:
		return CheckedInState{}
	case BookingStayOver:
		return StayOverState{}
	case BookingMaintenance:
		return MaintenanceState{}
	default:
		return TerminalState{}
	}
}

// Transition áp dụng chuyển trạng thái tới target
func Transition(b *Booking, target BookingStatus) error {
	state := GetBookingState(b.Status)
	switch target {
	case BookingCheckedIn:
		return state.CheckIn(b)
	case BookingStayOver:
		return state.StayOver(b)
	case BookingCheckedOut:
		return state.CheckOut(b)
	case BookingCancelled:
		return state.Cancel(b)
	case BookingNoShow:
		return state.NoShow(b)
	}
	return ErrInvalidTransition
}
