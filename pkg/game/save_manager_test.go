package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 管理器
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestSaveManager_NoSave(t *testing.T) {
	sm := NewSaveManager(NewMemoryStorage())

	record, ok, err := sm.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord() error: %v", err)
	}
	if ok {
		t.Error("Expected no save")
	}
	if !record.IsUnlocked(1) || record.UnlockedLevels.Size() != 1 {
		t.Errorf("Expected default unlocked {1}, got %v", record.Unlocked())
	}
}

func TestSaveManager_SaveAndLoad(t *testing.T) {
	storage := NewMemoryStorage()
	sm := NewSaveManager(storage)

	record := DefaultProgress()
	record.IsLetterOpened = true
	record.CurrentLevel = 3
	record.UnlockedLevels.Put(2)
	record.UnlockedLevels.Put(3)
	record.CompletedLevels.Put(1)
	record.CompletedLevels.Put(2)
	record.FlowerChoice = "tulip"
	record.Wishes = "semoga bahagia"

	if err := sm.SaveRecord(record); err != nil {
		t.Fatalf("SaveRecord() error: %v", err)
	}

	loaded, ok, err := NewSaveManager(storage).LoadRecord()
	if err != nil || !ok {
		t.Fatalf("LoadRecord() = %v, %v", ok, err)
	}
	if loaded.CurrentLevel != 3 || !loaded.IsLetterOpened {
		t.Errorf("Scalar fields not restored: %+v", loaded.toDocument())
	}
	if got := loaded.Unlocked(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Unlocked = %v, want [1 2 3]", got)
	}
	if got := loaded.Completed(); len(got) != 2 {
		t.Errorf("Completed = %v, want [1 2]", got)
	}
	if loaded.FlowerChoice != "tulip" || loaded.Wishes != "semoga bahagia" {
		t.Errorf("Text fields not restored: %+v", loaded.toDocument())
	}
}

func TestSaveManager_CorruptedRecord(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Put(progressObject, progressRecordProp, []byte("unlockedLevels: [1, 2\n  : ::"))

	record, ok, err := NewSaveManager(storage).LoadRecord()
	if err == nil {
		t.Error("Expected error for corrupted record")
	}
	if ok {
		t.Error("Corrupted record must not count as a save")
	}
	if record.CurrentLevel != 0 || record.UserName != "Sayang" {
		t.Error("Corrupted record should fall back to defaults")
	}
}

func TestSaveManager_RepairsMissingFields(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Put(progressObject, progressRecordProp, []byte("currentLevel: 2\nunlockedLevels: [2]\n"))

	record, ok, err := NewSaveManager(storage).LoadRecord()
	if err != nil || !ok {
		t.Fatalf("LoadRecord() = %v, %v", ok, err)
	}
	if !record.IsUnlocked(1) {
		t.Error("Level 1 must always be unlocked")
	}
	if record.UserName != "Sayang" {
		t.Errorf("UserName = %q, want default", record.UserName)
	}
}

func TestSaveManager_DeleteRecord(t *testing.T) {
	storage := NewMemoryStorage()
	sm := NewSaveManager(storage)

	if err := sm.SaveRecord(DefaultProgress()); err != nil {
		t.Fatalf("SaveRecord() error: %v", err)
	}
	if err := sm.MarkIntroPopupShown(); err != nil {
		t.Fatalf("MarkIntroPopupShown() error: %v", err)
	}
	if !sm.IntroPopupShown() {
		t.Fatal("Intro popup flag should be set")
	}

	if err := sm.DeleteRecord(); err != nil {
		t.Fatalf("DeleteRecord() error: %v", err)
	}
	if storage.ObjectPropExists(progressObject, progressRecordProp) {
		t.Error("Record should be deleted")
	}
	if sm.IntroPopupShown() {
		t.Error("Intro popup flag should be cleared")
	}

	// 再次删除不报错
	if err := sm.DeleteRecord(); err != nil {
		t.Errorf("Second DeleteRecord() error: %v", err)
	}
}

func TestSaveManager_NilStorage(t *testing.T) {
	sm := NewSaveManager(nil)
	if sm.HasStorage() {
		t.Error("HasStorage() should be false")
	}
	if err := sm.SaveRecord(DefaultProgress()); err != nil {
		t.Errorf("SaveRecord() with nil storage: %v", err)
	}
	if _, ok, err := sm.LoadRecord(); ok || err != nil {
		t.Errorf("LoadRecord() with nil storage = %v, %v", ok, err)
	}
	if err := sm.MarkIntroPopupShown(); err != nil {
		t.Fatal(err)
	}
	if !sm.IntroPopupShown() {
		t.Error("Intro popup flag should be kept in memory")
	}
}

func TestSaveManager_WriteFailure(t *testing.T) {
	storage := NewMemoryStorage()
	storage.FailWrites = true
	if err := NewSaveManager(storage).SaveRecord(DefaultProgress()); err == nil {
		t.Error("Expected write error")
	}
}

func TestSaveManager_Gdata(t *testing.T) {
	m := openTestGdata(t, "test_progress")
	sm := NewSaveManager(m)

	record := DefaultProgress()
	record.IsLetterOpened = true
	record.UnlockedLevels.Put(4)
	if err := sm.SaveRecord(record); err != nil {
		t.Fatalf("SaveRecord() error: %v", err)
	}

	loaded, ok, err := NewSaveManager(m).LoadRecord()
	if err != nil || !ok {
		t.Fatalf("LoadRecord() = %v, %v", ok, err)
	}
	if !loaded.IsUnlocked(4) {
		t.Errorf("Unlocked = %v, want level 4 present", loaded.Unlocked())
	}

	if err := sm.DeleteRecord(); err != nil {
		t.Fatalf("DeleteRecord() error: %v", err)
	}
	if m.ObjectPropExists(progressObject, progressRecordProp) {
		t.Error("Record should be deleted from gdata")
	}
}
