package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"banana-studio/internal/service"
	"banana-studio/internal/service/mocks"
	"banana-studio/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestGenerateHandler_EditImage(t *testing.T) {
	tests := []struct {
		name          string
		body          interface{}
		mockSetup     func(*mocks.MockGenerateService)
		wantStatus    int
		checkResponse func(*httptest.ResponseRecorder) bool
	}{
		{
			name: "successful edit",
			body: EditRequest{Prompt: "add a hat", Images: []string{"data:src"}},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().
					EditImage(gomock.Any(), service.EditRequest{Prompt: "add a hat", Images: []string{"data:src"}}).
					Return(service.EditResult{
						EditedImage: "data:out",
						Record:      &storage.GenerationRecord{ID: "gen-1"},
						Saved:       true,
					}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp EditResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.EditedImage == "data:out" && resp.RecordID == "gen-1" && resp.Saved
			},
		},
		{
			name: "edit succeeded but save did not",
			body: EditRequest{Prompt: "p"},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().EditImage(gomock.Any(), gomock.Any()).
					Return(service.EditResult{EditedImage: "data:out", Saved: false}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(w *httptest.ResponseRecorder) bool {
				var resp EditResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					return false
				}
				return resp.EditedImage == "data:out" && !resp.Saved && resp.RecordID == ""
			},
		},
		{
			name:       "invalid JSON body",
			body:       "not json",
			mockSetup:  func(m *mocks.MockGenerateService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: EditRequest{},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().EditImage(gomock.Any(), gomock.Any()).
					Return(service.EditResult{}, &service.ValidationError{Field: "prompt", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "model failure maps to bad gateway",
			body: EditRequest{Prompt: "p"},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().EditImage(gomock.Any(), gomock.Any()).
					Return(service.EditResult{}, service.WrapError(service.ErrExternalService, "quota exhausted"))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "unexpected failure maps to 500",
			body: EditRequest{Prompt: "p"},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().EditImage(gomock.Any(), gomock.Any()).
					Return(service.EditResult{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			generate := mocks.NewMockGenerateService(ctrl)
			tt.mockSetup(generate)
			handler := NewGenerateHandler(generate)

			var body bytes.Buffer
			if s, ok := tt.body.(string); ok {
				body.WriteString(s)
			} else if err := json.NewEncoder(&body).Encode(tt.body); err != nil {
				t.Fatalf("encode body: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/edit", &body)
			w := httptest.NewRecorder()
			handler.EditImage(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("EditImage() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.checkResponse != nil && !tt.checkResponse(w) {
				t.Error("EditImage() response validation failed")
			}
		})
	}
}

func TestGenerateHandler_GenerateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generate := mocks.NewMockGenerateService(ctrl)
	generate.EXPECT().
		GenerateNote(gomock.Any(), service.NoteRequest{
			Topic:    "street food",
			NoteType: storage.NoteFood,
		}).
		Return(service.NoteResult{
			Note:  &storage.NoteRecord{ID: "note-1", Title: "Street Eats"},
			Saved: true,
		}, nil)
	handler := NewGenerateHandler(generate)

	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(GenerateNoteRequest{Topic: "street food", NoteType: "food"})

	req := httptest.NewRequest(http.MethodPost, "/api/notes/generate", &body)
	w := httptest.NewRecorder()
	handler.GenerateNote(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GenerateNote() status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp GenerateNoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Note == nil || resp.Note.ID != "note-1" || !resp.Saved {
		t.Errorf("GenerateNote() response = %+v, want saved note", resp)
	}
}

func TestGenerateHandler_RewriteNote(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       interface{}
		mockSetup  func(*mocks.MockGenerateService)
		wantStatus int
	}{
		{
			name: "rewrites a note",
			id:   "note-1",
			body: RewriteNoteRequest{Instruction: "make it punchier"},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().
					RewriteNote(gomock.Any(), service.RewriteRequest{NoteID: "note-1", Instruction: "make it punchier"}).
					Return(service.NoteResult{
						Note:  &storage.NoteRecord{ID: "note-1", Title: "Punchier"},
						Saved: true,
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown note id",
			id:   "note-404",
			body: RewriteNoteRequest{Instruction: "i"},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().RewriteNote(gomock.Any(), gomock.Any()).
					Return(service.NoteResult{}, storage.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid JSON body",
			id:         "note-1",
			body:       "not json",
			mockSetup:  func(m *mocks.MockGenerateService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "model failure maps to bad gateway",
			id:   "note-1",
			body: RewriteNoteRequest{Instruction: "i"},
			mockSetup: func(m *mocks.MockGenerateService) {
				m.EXPECT().RewriteNote(gomock.Any(), gomock.Any()).
					Return(service.NoteResult{}, service.WrapError(service.ErrExternalService, "model down"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			generate := mocks.NewMockGenerateService(ctrl)
			tt.mockSetup(generate)
			handler := NewGenerateHandler(generate)

			var body bytes.Buffer
			if s, ok := tt.body.(string); ok {
				body.WriteString(s)
			} else if err := json.NewEncoder(&body).Encode(tt.body); err != nil {
				t.Fatalf("encode body: %v", err)
			}

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/notes/"+tt.id+"/rewrite", &body), "id", tt.id)
			w := httptest.NewRecorder()
			handler.RewriteNote(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("RewriteNote() status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestGenerateHandler_ChangeNoteStyle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generate := mocks.NewMockGenerateService(ctrl)
	generate.EXPECT().
		ChangeNoteStyle(gomock.Any(), service.StyleRequest{NoteID: "note-1", Style: "humorous"}).
		Return(service.NoteResult{
			Note:  &storage.NoteRecord{ID: "note-1", Title: "Funny"},
			Saved: true,
		}, nil)
	handler := NewGenerateHandler(generate)

	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(ChangeStyleRequest{Style: "humorous"})

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/notes/note-1/style", &body), "id", "note-1")
	w := httptest.NewRecorder()
	handler.ChangeNoteStyle(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("ChangeNoteStyle() status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp GenerateNoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Note == nil || resp.Note.Title != "Funny" || !resp.Saved {
		t.Errorf("ChangeNoteStyle() response = %+v, want restyled saved note", resp)
	}
}

func TestGenerateHandler_GenerateTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generate := mocks.NewMockGenerateService(ctrl)
	generate.EXPECT().
		GenerateTitles(gomock.Any(), service.TitlesRequest{Topic: "street food", NoteType: storage.NoteFood, Count: 5}).
		Return([]string{"a", "b", "c", "d", "e"}, nil)
	handler := NewGenerateHandler(generate)

	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(TitlesRequest{Topic: "street food", NoteType: "food", Count: 5})

	req := httptest.NewRequest(http.MethodPost, "/api/notes/titles", &body)
	w := httptest.NewRecorder()
	handler.GenerateTitles(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GenerateTitles() status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp TitlesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Titles) != 5 {
		t.Errorf("GenerateTitles() titles = %v, want 5", resp.Titles)
	}
}

func TestGenerateHandler_EnhancePrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generate := mocks.NewMockGenerateService(ctrl)
	generate.EXPECT().
		EnhancePrompt(gomock.Any(), "a cat").
		Return("a fluffy cat in golden-hour light", nil)
	handler := NewGenerateHandler(generate)

	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(EnhancePromptRequest{Prompt: "a cat"})

	req := httptest.NewRequest(http.MethodPost, "/api/prompts/enhance", &body)
	w := httptest.NewRecorder()
	handler.EnhancePrompt(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("EnhancePrompt() status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp EnhancePromptResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Prompt != "a fluffy cat in golden-hour light" {
		t.Errorf("EnhancePrompt() prompt = %q, want the enhanced prompt", resp.Prompt)
	}
}

func TestGenerateHandler_GenerateNote_ModelFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generate := mocks.NewMockGenerateService(ctrl)
	generate.EXPECT().GenerateNote(gomock.Any(), gomock.Any()).
		Return(service.NoteResult{}, service.WrapError(service.ErrExternalService, "model down"))
	handler := NewGenerateHandler(generate)

	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(GenerateNoteRequest{Topic: "t"})

	req := httptest.NewRequest(http.MethodPost, "/api/notes/generate", &body)
	w := httptest.NewRecorder()
	handler.GenerateNote(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("GenerateNote() status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}
