package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"hotelops/errors"
	"hotelops/models"
	"hotelops/services/occupancy"

	playground "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *playground.Validate
)

// instance dùng chung tag `binding` với gin để DTO chỉ khai báo một lần
func instance() *playground.Validate {
	once.Do(func() {
		validate = playground.New()
		validate.SetTagName("binding")
	})
	return validate
}

// ValidateStruct kiểm tra struct theo tag binding, trả về lỗi của field đầu tiên
func ValidateStruct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(playground.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Trường %s không hợp lệ (%s)", fe.Field(), fe.Tag()), err)
	}
	return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
}

// ParseDate đọc ngày theo múi giờ khách sạn
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Ngày không được để trống", nil)
	}
	day := occupancy.ParseDay(value, loc)
	if day.IsZero() {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày không hợp lệ: "+value, errors.ErrInvalidDate)
	}
	return day, nil
}

// ValidateStayDates kiểm tra ngày nhận/trả phòng, ngày trả phải sau ngày nhận
func ValidateStayDates(checkIn, checkOut string, loc *time.Location) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
	}
	out, err := ParseDate(checkOut, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return in, out, nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if strings.TrimSpace(room.RoomName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}
	if err := room.ValidateSuiteType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidSuite, "Hạng phòng không hợp lệ", err)
	}
	if room.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải lớn hơn 0", nil)
	}
	if room.BaseRate < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
	}
	return nil
}

// ValidateBooking validate booking trước khi lưu
func ValidateBooking(b *models.Booking, loc *time.Location) error {
	if len(b.RoomRefs) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Booking phải có ít nhất một phòng", nil)
	}
	for _, ref := range b.RoomRefs {
		if strings.TrimSpace(ref) == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
		}
	}

	if _, _, err := ValidateStayDates(b.CheckIn, b.CheckOut, loc); err != nil {
		return err
	}

	switch b.Status {
	case models.BookingConfirmed, models.BookingCheckedIn:
		if b.Adults < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Phải có ít nhất một người lớn", nil)
		}
	case models.BookingMaintenance:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ khi tạo: "+string(b.Status), nil)
	}

	if b.Children < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em không được âm", nil)
	}
	if b.TotalPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tổng tiền không được âm", nil)
	}
	if b.GuestEmail != "" && !isValidEmail(b.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email khách không hợp lệ", nil)
	}
	if b.GuestPhone != "" && !isValidPhone(b.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại khách không hợp lệ", nil)
	}
	return nil
}

// ValidateMaintenanceWindow: có thể bỏ trống một hoặc cả hai đầu, nếu đủ thì end phải sau start
func ValidateMaintenanceWindow(start, end *time.Time) error {
	if start != nil && end != nil && !end.After(*start) {
		return errors.NewAppError(errors.ErrCodeMaintenance, "Thời gian kết thúc bảo trì phải sau thời gian bắt đầu", nil)
	}
	return nil
}

// ValidateLedgerEntry validate bút toán sổ cái
func ValidateLedgerEntry(e *models.LedgerEntry) error {
	if e.EntryType != models.EntryIncome && e.EntryType != models.EntryExpense {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại bút toán phải là income hoặc expense", nil)
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.NewAppError(errors.ErrCodeInvalidCategory, "Category không được để trống", nil)
	}
	if e.Date.IsZero() {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày bút toán không hợp lệ", errors.ErrInvalidDate)
	}
	return ValidateAmount(e.Amount)
}

// ValidateAmount validate số tiền
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}
	return nil
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
)

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
