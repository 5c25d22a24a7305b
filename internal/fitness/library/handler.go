package library

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type libraryStore interface {
	Documents(ctx context.Context) ([]strength.ExerciseDocument, error)
	Add(ctx context.Context, doc strength.ExerciseDocument) (strength.ExerciseDocument, error)
	Update(ctx context.Context, doc strength.ExerciseDocument) (strength.ExerciseDocument, error)
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	store libraryStore
}

func NewHandler(store libraryStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.list")
	defer span.End()

	docs, err := handler.store.Documents(ctx)
	if err != nil {
		log.Errorf("list exercise library: %s", err)
		http.Error(w, "list exercise library failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, docs, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.add")
	defer span.End()

	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}

	added, err := handler.store.Add(ctx, doc)
	if err != nil {
		handler.writeStoreError(w, "add", err)
		return
	}

	log.Debugf("exercise added to library: %+v", added)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.update")
	defer span.End()

	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	if doc.ID <= 0 {
		http.Error(w, "exercise id is required", http.StatusBadRequest)
		return
	}

	updated, err := handler.store.Update(ctx, doc)
	if err != nil {
		handler.writeStoreError(w, "update", err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.delete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		handler.writeStoreError(w, "delete", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrDuplicateExercise):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s library exercise: %s", op, err)
		http.Error(w, op+" exercise failed", http.StatusInternalServerError)
	}
}

func decodeDocument(w http.ResponseWriter, r *http.Request) (strength.ExerciseDocument, bool) {
	var doc strength.ExerciseDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Errorf("library exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise json", http.StatusBadRequest)
		return strength.ExerciseDocument{}, false
	}
	doc.Name = strings.TrimSpace(doc.Name)
	if strength.NormalizeName(doc.Name) == "" {
		http.Error(w, "exercise name is required", http.StatusBadRequest)
		return strength.ExerciseDocument{}, false
	}
	if doc.Category != "" && !doc.Category.IsValid() {
		http.Error(w, "invalid exercise category", http.StatusBadRequest)
		return strength.ExerciseDocument{}, false
	}
	return doc, true
}
