package services

import (
	"context"
	"errors"
	"strings"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/logger"
	"hotelops/validator"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

type RoomServiceOptions struct {
	Rooms  RoomStore
	Cache  Cache
	Logger logger.Logger
}

type RoomService struct {
	rooms  RoomStore
	cache  Cache
	logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		rooms:  opts.Rooms,
		cache:  orCache(opts.Cache),
		logger: orLogger(opts.Logger),
	}
}

func (s *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, dbError("Không thể lấy danh sách phòng", err)
	}
	return rooms, nil
}

// CreateRoom tạo phòng mới cùng hồ sơ trạng thái mặc định (available, clean)
func (s *RoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	amenities, err := json.Marshal(req.Amenities)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Danh sách tiện nghi không hợp lệ", err)
	}

	room := &models.Room{
		RoomName:    strings.TrimSpace(req.RoomName),
		SuiteType:   models.SuiteType(req.SuiteType),
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		BaseRate:    req.BaseRate,
		Amenities:   datatypes.JSON(amenities),
		Description: req.Description,
	}
	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	_, err = s.rooms.GetRoom(ctx, room.RoomName)
	switch {
	case err == nil:
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomExists, "Phòng "+room.RoomName+" đã tồn tại", nil)
	case !errors.Is(err, apperrors.ErrRoomNotFound):
		return nil, dbError("Không thể kiểm tra phòng", err)
	}

	if err := s.rooms.CreateRoom(ctx, room, models.NewRoomStatus(room.RoomName)); err != nil {
		return nil, dbError("Không thể tạo phòng", err)
	}
	invalidate(ctx, s.cache, s.logger, RoomStatusesCacheKey)

	s.logger.Info("đã tạo phòng %s (%s)", room.RoomName, room.SuiteType)
	return room, nil
}
