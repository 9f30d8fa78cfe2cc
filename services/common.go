package services

import (
	"context"
	"time"

	apperrors "hotelops/errors"
	"hotelops/services/logger"
	"hotelops/services/notification"
)

func dbError(message string, err error) error {
	return apperrors.NewAppError(apperrors.ErrCodeDBError, message, err)
}

func orLogger(l logger.Logger) logger.Logger {
	if l == nil {
		return logger.Nop{}
	}
	return l
}

func orCache(c Cache) Cache {
	if c == nil {
		return NopCache{}
	}
	return c
}

func orClock(c Clock) Clock {
	if c == nil {
		return RealClock{}
	}
	return c
}

func orLocation(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// publish gửi sự kiện, lỗi chỉ được log
func publish(ctx context.Context, events notification.Service, log logger.Logger, event notification.Event) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		log.Error("không thể gửi sự kiện %s: %v", event.Type, err)
	}
}

// invalidate xóa cache, lỗi chỉ được log
func invalidate(ctx context.Context, cache Cache, log logger.Logger, keys ...string) {
	if err := cache.Delete(ctx, keys...); err != nil {
		log.Error("không thể xóa cache %v: %v", keys, err)
	}
}
