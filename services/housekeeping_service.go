package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/logger"
	"hotelops/services/notification"
	"hotelops/validator"
)

type HousekeepingServiceOptions struct {
	Rooms    RoomStore
	Statuses RoomStatusStore
	Cache    Cache
	Events   notification.Service
	Logger   logger.Logger
	Clock    Clock
	Location *time.Location
}

// HousekeepingService thay đổi hồ sơ vận hành của phòng (dọn phòng, bảo trì)
type HousekeepingService struct {
	rooms    RoomStore
	statuses RoomStatusStore
	cache    Cache
	events   notification.Service
	logger   logger.Logger
	clock    Clock
	loc      *time.Location
}

func NewHousekeepingService(opts HousekeepingServiceOptions) *HousekeepingService {
	return &HousekeepingService{
		rooms:    opts.Rooms,
		statuses: opts.Statuses,
		cache:    orCache(opts.Cache),
		events:   opts.Events,
		logger:   orLogger(opts.Logger),
		clock:    orClock(opts.Clock),
		loc:      orLocation(opts.Location),
	}
}

// getStatus lấy hồ sơ vận hành; phòng cũ chưa có hồ sơ thì tạo mặc định
func (s *HousekeepingService) getStatus(ctx context.Context, name string) (*models.RoomStatus, error) {
	name = strings.TrimSpace(name)
	status, err := s.statuses.GetStatus(ctx, name)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, apperrors.ErrRoomStatusNotFound) {
		return nil, dbError("Không thể lấy trạng thái phòng", err)
	}

	room, err := s.rooms.GetRoom(ctx, name)
	if errors.Is(err, apperrors.ErrRoomNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng "+name, err)
	}
	if err != nil {
		return nil, dbError("Không thể lấy phòng", err)
	}
	return models.NewRoomStatus(room.RoomName), nil
}

func (s *HousekeepingService) recordCleaning(ctx context.Context, status *models.RoomStatus, kind models.CleaningType, req dto.HousekeepingRequest) error {
	record := &models.CleaningRecord{
		RoomName:  status.RoomName,
		Date:      s.clock.Now().In(s.loc),
		Type:      kind,
		StaffName: req.StaffName,
		Notes:     req.Notes,
	}
	if err := s.statuses.AppendCleaning(ctx, status, record); err != nil {
		return dbError("Không thể cập nhật trạng thái dọn phòng", err)
	}
	s.changed(ctx, status)
	return nil
}

// changed xóa cache trạng thái và báo cho client
func (s *HousekeepingService) changed(ctx context.Context, status *models.RoomStatus) {
	invalidate(ctx, s.cache, s.logger, RoomStatusesCacheKey)
	publish(ctx, s.events, s.logger, notification.NewEventBuilder(notification.EventRoomStatusChanged).
		Room(status.RoomName).
		Data(status).
		Build())
	s.logger.Info("phòng %s: %s/%s", status.RoomName, status.OperationalStatus, status.HousekeepingStatus)
}

// MarkClean đánh dấu phòng đã dọn xong
func (s *HousekeepingService) MarkClean(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	status, err := s.getStatus(ctx, name)
	if err != nil {
		return nil, err
	}

	status.HousekeepingStatus = models.HousekeepingClean
	if status.OperationalStatus == models.OperationalCleaning {
		status.OperationalStatus = models.OperationalAvailable
	}

	kind := models.CleaningTypeClean
	if req.DeepClean {
		kind = models.CleaningTypeDeepClean
	}
	if err := s.recordCleaning(ctx, status, kind, req); err != nil {
		return nil, err
	}
	return status, nil
}

// MarkDirty đánh dấu phòng cần dọn
func (s *HousekeepingService) MarkDirty(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	status, err := s.getStatus(ctx, name)
	if err != nil {
		return nil, err
	}

	status.HousekeepingStatus = models.HousekeepingDirty
	if status.OperationalStatus == models.OperationalAvailable {
		status.OperationalStatus = models.OperationalCleaning
	}

	if err := s.recordCleaning(ctx, status, models.CleaningTypeDirty, req); err != nil {
		return nil, err
	}
	return status, nil
}

// MarkInspected: giám sát đã kiểm tra phòng, chỉ áp dụng cho phòng đã dọn
func (s *HousekeepingService) MarkInspected(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	status, err := s.getStatus(ctx, name)
	if err != nil {
		return nil, err
	}
	if status.HousekeepingStatus == models.HousekeepingDirty {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Phòng "+status.RoomName+" chưa được dọn", nil)
	}

	status.HousekeepingStatus = models.HousekeepingInspected
	if status.OperationalStatus == models.OperationalCleaning {
		status.OperationalStatus = models.OperationalAvailable
	}

	if err := s.recordCleaning(ctx, status, models.CleaningTypeInspection, req); err != nil {
		return nil, err
	}
	return status, nil
}

// StartMaintenance khóa phòng để bảo trì. Cửa sổ [start, end) tính theo ngày;
// bỏ trống start hoặc end thì phòng bị khóa cho tới khi CompleteMaintenance.
func (s *HousekeepingService) StartMaintenance(ctx context.Context, name string, req dto.MaintenanceRequest) (*models.RoomStatus, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if req.Start != "" {
		t, err := validator.ParseDate(req.Start, s.loc)
		if err != nil {
			return nil, err
		}
		start = &t
	}
	if req.End != "" {
		t, err := validator.ParseDate(req.End, s.loc)
		if err != nil {
			return nil, err
		}
		end = &t
	}
	if err := validator.ValidateMaintenanceWindow(start, end); err != nil {
		return nil, err
	}

	status, err := s.getStatus(ctx, name)
	if err != nil {
		return nil, err
	}

	status.OperationalStatus = models.OperationalMaintenance
	status.MaintenanceStart = start
	status.MaintenanceEnd = end
	status.MaintenanceReason = req.Reason

	if err := s.statuses.SaveStatus(ctx, status); err != nil {
		return nil, dbError("Không thể cập nhật trạng thái bảo trì", err)
	}
	s.changed(ctx, status)
	return status, nil
}

// CompleteMaintenance mở khóa phòng và xóa cửa sổ bảo trì
func (s *HousekeepingService) CompleteMaintenance(ctx context.Context, name string) (*models.RoomStatus, error) {
	status, err := s.getStatus(ctx, name)
	if err != nil {
		return nil, err
	}
	if status.OperationalStatus != models.OperationalMaintenance {
		return nil, apperrors.NewAppError(apperrors.ErrCodeMaintenance, "Phòng "+status.RoomName+" không ở trạng thái bảo trì", nil)
	}

	status.OperationalStatus = models.OperationalAvailable
	status.MaintenanceStart = nil
	status.MaintenanceEnd = nil
	status.MaintenanceReason = ""

	if err := s.statuses.SaveStatus(ctx, status); err != nil {
		return nil, dbError("Không thể cập nhật trạng thái bảo trì", err)
	}
	s.changed(ctx, status)
	return status, nil
}
