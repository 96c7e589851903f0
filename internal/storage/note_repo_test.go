package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNoteRepo_SaveAndList(t *testing.T) {
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)
	ctx := context.Background()

	notes := []*NoteRecord{
		{ID: "note-1", Title: "First", Content: "body one", Tags: []string{"travel"}, Timestamp: 100, NoteType: NoteRecommend, InputTopic: "beach"},
		{ID: "note-2", Title: "Second", Content: "body two", Tags: []string{}, Timestamp: 200, NoteType: NoteCustom, InputTopic: "city"},
	}
	for _, note := range notes {
		if err := repo.Save(ctx, note); err != nil {
			t.Fatalf("Save(%s) error = %v", note.ID, err)
		}
	}

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() count = %d, want 2", len(got))
	}
	if got[0].ID != "note-2" || got[1].ID != "note-1" {
		t.Errorf("List() order = [%s, %s], want newest first", got[0].ID, got[1].ID)
	}
	if got[1].Title != "First" || got[1].NoteType != NoteRecommend || got[1].InputTopic != "beach" {
		t.Errorf("List()[1] = %+v, lost fields on round trip", got[1])
	}
}

func TestNoteRepo_Save_EditKeepsID(t *testing.T) {
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)
	ctx := context.Background()

	original := &NoteRecord{ID: "note-e", Title: "Draft", Content: "v1", Timestamp: 100, NoteType: NoteCustom}
	if err := repo.Save(ctx, original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	edited := &NoteRecord{ID: "note-e", Title: "Final", Content: "v2", Timestamp: 100, NoteType: NoteCustom}
	if err := repo.Save(ctx, edited); err != nil {
		t.Fatalf("Save() edit error = %v", err)
	}

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() count = %d, want 1 (edit replaces, not appends)", len(got))
	}
	if got[0].Title != "Final" || got[0].Content != "v2" {
		t.Errorf("List()[0] = %+v, want edited content", got[0])
	}
}

func TestNoteRepo_Save_NoID(t *testing.T) {
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)

	err := repo.Save(context.Background(), &NoteRecord{Title: "T", Content: "C"})
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Save() without ID error = %v, want ErrWriteFailed", err)
	}
}

func TestNoteRepo_List_DisplayCap(t *testing.T) {
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		note := &NoteRecord{
			ID:        fmt.Sprintf("note-%02d", i),
			Title:     "T",
			Content:   "C",
			Timestamp: int64(i),
			NoteType:  NoteCustom,
		}
		if err := repo.Save(ctx, note); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != DefaultNoteCap {
		t.Errorf("List() count = %d, want %d", len(got), DefaultNoteCap)
	}
	if got[0].ID != "note-24" {
		t.Errorf("List()[0].ID = %s, want note-24", got[0].ID)
	}
}

func TestNoteRepo_Get(t *testing.T) {
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)
	ctx := context.Background()

	note := &NoteRecord{ID: "note-g", Title: "Kept", Content: "body", Tags: []string{"x"}, Timestamp: 7, NoteType: NoteTravel, InputTopic: "alps"}
	if err := repo.Save(ctx, note); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Get(ctx, "note-g")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Kept" || got.NoteType != NoteTravel || got.InputTopic != "alps" {
		t.Errorf("Get() = %+v, lost fields on round trip", got)
	}

	if _, err := repo.Get(ctx, "note-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() missing ID error = %v, want ErrNotFound", err)
	}
}

func TestNoteRepo_Get_BeyondDisplayCap(t *testing.T) {
	// The cap limits listings only; a physically retained note stays
	// reachable by ID.
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)
	ctx := context.Background()

	for i := 0; i < DefaultNoteCap+5; i++ {
		note := &NoteRecord{ID: fmt.Sprintf("note-%02d", i), Title: "T", Content: "C", Timestamp: int64(i), NoteType: NoteCustom}
		if err := repo.Save(ctx, note); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	listed, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, n := range listed {
		if n.ID == "note-00" {
			t.Fatal("List() shows note-00, expected the cap to hide it")
		}
	}

	got, err := repo.Get(ctx, "note-00")
	if err != nil {
		t.Fatalf("Get() error = %v, want the capped-out note found", err)
	}
	if got.ID != "note-00" {
		t.Errorf("Get() ID = %s, want note-00", got.ID)
	}
}

func TestNoteRepo_DeleteAndClear(t *testing.T) {
	s := newTestStore(t)
	repo := NewNoteRepo(s, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		note := &NoteRecord{ID: fmt.Sprintf("note-%d", i), Title: "T", Content: "C", Timestamp: int64(i), NoteType: NoteCustom}
		if err := repo.Save(ctx, note); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	if err := repo.Delete(ctx, "note-0"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "note-missing"); err != nil {
		t.Errorf("Delete() missing ID error = %v, want nil", err)
	}

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() count = %d, want 2", len(got))
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	got, err = repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("after Clear() count = %d, want 0", len(got))
	}
}
