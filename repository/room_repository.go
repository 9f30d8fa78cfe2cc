package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "hotelops/errors"
	"hotelops/models"

	"gorm.io/gorm"
)

// RoomRepository truy cập bảng rooms và room_statuses
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("room_name").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("không thể lấy danh sách phòng: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) CountRooms(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("không thể đếm số phòng: %w", err)
	}
	return int(count), nil
}

func (r *RoomRepository) GetRoom(ctx context.Context, name string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("LOWER(room_name) = LOWER(?)", name).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("không thể lấy phòng %s: %w", name, err)
	}
	return &room, nil
}

// CreateRoom tạo phòng cùng hồ sơ trạng thái trong một transaction
func (r *RoomRepository) CreateRoom(ctx context.Context, room *models.Room, status *models.RoomStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return fmt.Errorf("không thể tạo phòng: %w", err)
		}
		if err := tx.Create(status).Error; err != nil {
			return fmt.Errorf("không thể tạo trạng thái phòng: %w", err)
		}
		return nil
	})
}

func (r *RoomRepository) ListStatuses(ctx context.Context) ([]models.RoomStatus, error) {
	var statuses []models.RoomStatus
	if err := r.db.WithContext(ctx).Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("không thể lấy trạng thái phòng: %w", err)
	}
	return statuses, nil
}

func (r *RoomRepository) GetStatus(ctx context.Context, name string) (*models.RoomStatus, error) {
	var status models.RoomStatus
	err := r.db.WithContext(ctx).Where("LOWER(room_name) = LOWER(?)", name).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRoomStatusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("không thể lấy trạng thái phòng %s: %w", name, err)
	}
	return &status, nil
}

func (r *RoomRepository) SaveStatus(ctx context.Context, status *models.RoomStatus) error {
	// Select("*") để lưu cả giá trị nil của cửa sổ bảo trì
	if err := r.db.WithContext(ctx).Select("*").Omit("CleaningHistory").Save(status).Error; err != nil {
		return fmt.Errorf("không thể lưu trạng thái phòng %s: %w", status.RoomName, err)
	}
	return nil
}

// AppendCleaning lưu trạng thái và thêm một dòng lịch sử dọn phòng
func (r *RoomRepository) AppendCleaning(ctx context.Context, status *models.RoomStatus, record *models.CleaningRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("*").Omit("CleaningHistory").Save(status).Error; err != nil {
			return fmt.Errorf("không thể lưu trạng thái phòng %s: %w", status.RoomName, err)
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("không thể ghi lịch sử dọn phòng: %w", err)
		}
		return nil
	})
}

func (r *RoomRepository) CleaningHistory(ctx context.Context, name string, limit int) ([]models.CleaningRecord, error) {
	var records []models.CleaningRecord
	q := r.db.WithContext(ctx).Where("LOWER(room_name) = LOWER(?)", name).Order("date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("không thể lấy lịch sử dọn phòng: %w", err)
	}
	return records, nil
}
