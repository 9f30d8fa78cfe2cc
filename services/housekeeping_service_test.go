package services

import (
	"context"
	"testing"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/notification"
	"hotelops/services/occupancy"
)

func newHousekeeping(m *memStore, events *eventRecorder) *HousekeepingService {
	return NewHousekeepingService(HousekeepingServiceOptions{
		Rooms:    m,
		Statuses: m,
		Events:   events,
		Clock:    fixedClock{t: time.Date(2025, 6, 3, 10, 30, 0, 0, time.UTC)},
		Location: time.UTC,
	})
}

func codeOf(err error) apperrors.ErrorCode {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

func TestHousekeepingCleaningCycle(t *testing.T) {
	m := newMemStore()
	m.addRoom("201")
	events := &eventRecorder{}
	hk := newHousekeeping(m, events)
	ctx := context.Background()

	st, err := hk.MarkDirty(ctx, "201", dto.HousekeepingRequest{StaffName: "Mai"})
	if err != nil {
		t.Fatalf("MarkDirty: %v", err)
	}
	if st.HousekeepingStatus != models.HousekeepingDirty || st.OperationalStatus != models.OperationalCleaning {
		t.Fatalf("after dirty: %s/%s", st.OperationalStatus, st.HousekeepingStatus)
	}

	if _, err := hk.MarkInspected(ctx, "201", dto.HousekeepingRequest{}); codeOf(err) != apperrors.ErrCodeInvalidStatus {
		t.Fatalf("inspect dirty room: err = %v", err)
	}

	st, err = hk.MarkClean(ctx, "201", dto.HousekeepingRequest{StaffName: "Mai", DeepClean: true})
	if err != nil {
		t.Fatalf("MarkClean: %v", err)
	}
	if st.HousekeepingStatus != models.HousekeepingClean || st.OperationalStatus != models.OperationalAvailable {
		t.Fatalf("after clean: %s/%s", st.OperationalStatus, st.HousekeepingStatus)
	}

	st, err = hk.MarkInspected(ctx, "201", dto.HousekeepingRequest{StaffName: "Supervisor"})
	if err != nil || st.HousekeepingStatus != models.HousekeepingInspected {
		t.Fatalf("MarkInspected: %v %+v", err, st)
	}

	history, _ := m.CleaningHistory(ctx, "201", 0)
	wantTypes := []models.CleaningType{models.CleaningTypeInspection, models.CleaningTypeDeepClean, models.CleaningTypeDirty}
	if len(history) != len(wantTypes) {
		t.Fatalf("history = %d records, want %d", len(history), len(wantTypes))
	}
	for i, rec := range history {
		if rec.Type != wantTypes[i] {
			t.Errorf("history[%d] = %s, want %s", i, rec.Type, wantTypes[i])
		}
	}

	if got := events.types(); len(got) != 3 || got[0] != notification.EventRoomStatusChanged {
		t.Errorf("events = %v", got)
	}
}

func TestHousekeepingOccupiedRoomKeepsOperationalStatus(t *testing.T) {
	m := newMemStore()
	m.addRoom("202")
	m.statuses["202"].OperationalStatus = models.OperationalOccupied
	hk := newHousekeeping(m, nil)

	st, err := hk.MarkDirty(context.Background(), "202", dto.HousekeepingRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if st.OperationalStatus != models.OperationalOccupied {
		t.Errorf("operational = %s, want occupied", st.OperationalStatus)
	}
}

func TestHousekeepingUnknownRoom(t *testing.T) {
	hk := newHousekeeping(newMemStore(), nil)
	if _, err := hk.MarkClean(context.Background(), "404", dto.HousekeepingRequest{}); codeOf(err) != apperrors.ErrCodeRoomNotFound {
		t.Fatalf("err = %v, want ROOM_NOT_FOUND", err)
	}
}

func TestHousekeepingCreatesMissingStatus(t *testing.T) {
	m := newMemStore()
	m.rooms = append(m.rooms, models.Room{ID: 1, RoomName: "Suite A"})
	hk := newHousekeeping(m, nil)

	if _, err := hk.MarkDirty(context.Background(), "suite a", dto.HousekeepingRequest{}); err != nil {
		t.Fatalf("MarkDirty: %v", err)
	}
	st, err := m.GetStatus(context.Background(), "Suite A")
	if err != nil || st.RoomName != "Suite A" || st.HousekeepingStatus != models.HousekeepingDirty {
		t.Fatalf("status = %+v, err = %v", st, err)
	}
}

func TestMaintenanceWindowLifecycle(t *testing.T) {
	m := newMemStore()
	m.addRoom("301")
	hk := newHousekeeping(m, &eventRecorder{})
	ctx := context.Background()

	if _, err := hk.CompleteMaintenance(ctx, "301"); codeOf(err) != apperrors.ErrCodeMaintenance {
		t.Fatalf("complete without maintenance: err = %v", err)
	}

	_, err := hk.StartMaintenance(ctx, "301", dto.MaintenanceRequest{Start: "2025-06-05", End: "2025-06-02"})
	if codeOf(err) != apperrors.ErrCodeMaintenance {
		t.Fatalf("inverted window: err = %v", err)
	}
	_, err = hk.StartMaintenance(ctx, "301", dto.MaintenanceRequest{Start: "not-a-date"})
	if codeOf(err) != apperrors.ErrCodeInvalidDate {
		t.Fatalf("bad date: err = %v", err)
	}

	st, err := hk.StartMaintenance(ctx, "301", dto.MaintenanceRequest{Start: "2025-06-02", End: "2025-06-05", Reason: "AC leak"})
	if err != nil {
		t.Fatalf("StartMaintenance: %v", err)
	}
	if !st.HasMaintenanceWindow() || st.MaintenanceReason != "AC leak" {
		t.Fatalf("status = %+v", st)
	}
	if !occupancy.MaintenanceActive(day("2025-06-04"), st) || occupancy.MaintenanceActive(day("2025-06-05"), st) {
		t.Error("window should cover 06-02..06-04 only")
	}

	st, err = hk.CompleteMaintenance(ctx, "301")
	if err != nil {
		t.Fatalf("CompleteMaintenance: %v", err)
	}
	if st.OperationalStatus != models.OperationalAvailable || st.MaintenanceStart != nil || st.MaintenanceReason != "" {
		t.Fatalf("status after complete = %+v", st)
	}
}

func TestMaintenanceWithoutWindowIsOpenEnded(t *testing.T) {
	m := newMemStore()
	m.addRoom("302")
	hk := newHousekeeping(m, nil)

	st, err := hk.StartMaintenance(context.Background(), "302", dto.MaintenanceRequest{Start: "2025-06-02"})
	if err != nil {
		t.Fatal(err)
	}
	if !occupancy.MaintenanceActive(day("2030-01-01"), st) {
		t.Error("maintenance with a missing bound must stay active")
	}
}
