package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"banana-studio/internal/handlers"
	"banana-studio/internal/service"
	"banana-studio/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store           *storage.Store
	HistoryService  service.HistoryService
	PromptService   service.PromptService
	NoteService     service.NoteService
	GenerateService service.GenerateService
	IndexHTML       string // Embedded HTML content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)

	// Add CORS middleware
	r.Use(CORS)

	historyHandler := handlers.NewHistoryHandler(deps.HistoryService)
	promptsHandler := handlers.NewPromptsHandler(deps.PromptService)
	notesHandler := handlers.NewNotesHandler(deps.NoteService)
	generateHandler := handlers.NewGenerateHandler(deps.GenerateService)
	usageHandler := handlers.NewUsageHandler(deps.Store)
	healthHandler := handlers.NewHealthHandler(deps.Store)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/history", historyHandler.List)
		r.Delete("/history", historyHandler.Clear)
		r.Delete("/history/{id}", historyHandler.Delete)

		r.Get("/prompts", promptsHandler.List)
		r.Post("/prompts", promptsHandler.Add)
		r.Delete("/prompts", promptsHandler.Clear)
		r.Delete("/prompts/item", promptsHandler.Remove)
		r.Post("/prompts/enhance", generateHandler.EnhancePrompt)

		r.Get("/notes", notesHandler.List)
		r.Post("/notes", notesHandler.Save)
		r.Delete("/notes", notesHandler.Clear)
		r.Delete("/notes/{id}", notesHandler.Delete)
		r.Get("/notes/{id}/preview", notesHandler.Preview)
		r.Post("/notes/generate", generateHandler.GenerateNote)
		r.Post("/notes/titles", generateHandler.GenerateTitles)
		r.Post("/notes/{id}/rewrite", generateHandler.RewriteNote)
		r.Post("/notes/{id}/style", generateHandler.ChangeNoteStyle)

		r.Post("/edit", generateHandler.EditImage)

		r.Method(http.MethodGet, "/usage", usageHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(deps.IndexHTML))
	})

	return r
}
