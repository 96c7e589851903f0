package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"banana-studio/internal/storage"
	"banana-studio/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestNoteService_SaveNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	notes.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewNoteService(notes)
	got, err := svc.SaveNote(context.Background(), &storage.NoteRecord{
		Title:   "Weekend in Kyoto",
		Content: "Some markdown body",
	})
	if err != nil {
		t.Fatalf("SaveNote() error = %v", err)
	}

	if got.ID == "" || !strings.HasPrefix(got.ID, "note-") {
		t.Errorf("SaveNote() ID = %q, want note- prefixed", got.ID)
	}
	if got.Timestamp == 0 {
		t.Error("SaveNote() Timestamp = 0, want set")
	}
	if got.NoteType != storage.NoteCustom {
		t.Errorf("SaveNote() NoteType = %q, want custom default", got.NoteType)
	}
	if got.Tags == nil {
		t.Error("SaveNote() Tags = nil, want empty slice")
	}
}

func TestNoteService_SaveNote_EditKeepsIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	notes.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewNoteService(notes)
	got, err := svc.SaveNote(context.Background(), &storage.NoteRecord{
		ID:        "note-existing",
		Title:     "Edited title",
		Content:   "Edited body",
		Timestamp: 12345,
		NoteType:  storage.NoteTravel,
	})
	if err != nil {
		t.Fatalf("SaveNote() error = %v", err)
	}
	if got.ID != "note-existing" || got.Timestamp != 12345 || got.NoteType != storage.NoteTravel {
		t.Errorf("SaveNote() = %+v, edit must keep existing identity", got)
	}
}

func TestNoteService_SaveNote_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	svc := NewNoteService(notes)

	tests := []struct {
		name string
		note *storage.NoteRecord
	}{
		{name: "nil note", note: nil},
		{name: "empty note", note: &storage.NoteRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveNote(context.Background(), tt.note)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("SaveNote() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNoteService_SaveNote_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	notes.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storage.ErrWriteFailed)

	svc := NewNoteService(notes)
	_, err := svc.SaveNote(context.Background(), &storage.NoteRecord{Title: "T"})
	if !errors.Is(err, storage.ErrWriteFailed) {
		t.Errorf("SaveNote() error = %v, want ErrWriteFailed to propagate", err)
	}
}

func TestNoteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	notes.EXPECT().Get(gomock.Any(), "note-1").
		Return(&storage.NoteRecord{ID: "note-1", Title: "T"}, nil)

	svc := NewNoteService(notes)
	got, err := svc.Get(context.Background(), "note-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "note-1" {
		t.Errorf("Get() ID = %q, want note-1", got.ID)
	}
}

func TestNoteService_Get_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	svc := NewNoteService(notes)

	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Get(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestNoteService_Delete_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	svc := NewNoteService(notes)

	if err := svc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Delete(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestNoteService_ClearPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := mocks.NewMockNoteStore(ctrl)
	notes.EXPECT().Clear(gomock.Any()).Return(nil)

	svc := NewNoteService(notes)
	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
}
