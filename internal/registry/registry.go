package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/wardenlabs/warden/internal/db"
	"github.com/wardenlabs/warden/internal/domain"
	"github.com/wardenlabs/warden/internal/repository"
)

// documentHeader precedes the intent document so operators editing the
// workspace know the file is machine-managed.
const documentHeader = `# Active Intents
# This file is managed by warden.
# Do not edit manually.

`

// intentDocument is the on-disk shape of the intent store.
type intentDocument struct {
	ActiveIntents []*domain.BusinessIntent `yaml:"active_intents"`
}

// Registry is the source of authorization truth: a persisted store of
// business intents plus the derived file-to-intent index. Reads reload the
// document from disk so out-of-process edits are always visible. Construct
// one at process start and pass it by reference; there is no package-level
// instance.
type Registry struct {
	intentsPath string
	mapMDPath   string
	uow         db.UnitOfWork

	mu      sync.Mutex
	intents map[string]*domain.BusinessIntent
}

// New creates a Registry persisting intents at intentsPath, with the
// file-map index behind uow and its markdown projection at mapMDPath.
func New(intentsPath, mapMDPath string, uow db.UnitOfWork) *Registry {
	return &Registry{
		intentsPath: intentsPath,
		mapMDPath:   mapMDPath,
		uow:         uow,
		intents:     make(map[string]*domain.BusinessIntent),
	}
}

// NewIntentID mints a stable unique intent id.
func NewIntentID() string {
	return "INT-" + strings.ToUpper(uuid.New().String()[:8])
}

// GetIntent returns the intent with the given id, reloading the document
// from disk first. Returns (nil, nil) when the intent does not exist.
func (r *Registry) GetIntent(ctx context.Context, id string) (*domain.BusinessIntent, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	intent, ok := r.intents[id]
	if !ok {
		return nil, nil
	}
	cp := *intent
	return &cp, nil
}

// ListIntents returns all known intents ordered by id.
func (r *Registry) ListIntents(ctx context.Context) ([]*domain.BusinessIntent, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.BusinessIntent, 0, len(r.intents))
	for _, intent := range r.intents {
		cp := *intent
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateIntent upserts the intent and persists the full snapshot of all
// known intents. The intent's UpdatedAt is stamped here.
func (r *Registry) UpdateIntent(ctx context.Context, intent *domain.BusinessIntent) error {
	if intent.ID == "" {
		return fmt.Errorf("intent id is required")
	}
	if err := r.load(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if intent.CreatedAt.IsZero() {
		intent.CreatedAt = now
	}
	intent.UpdatedAt = now

	cp := *intent
	r.intents[intent.ID] = &cp
	return r.persistLocked()
}

// AddFileToIntentMap idempotently records that a file was touched under an
// intent, then regenerates the markdown projection from the index. Exactly
// one bullet per exact path string survives repeated calls.
func (r *Registry) AddFileToIntentMap(ctx context.Context, intentID, relativePath string) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteFileMapRepo(tx)
		if _, err := repo.Add(ctx, intentID, relativePath, time.Now().UTC()); err != nil {
			return err
		}
		mappings, err := repo.ListAll(ctx)
		if err != nil {
			return err
		}
		return r.writeProjection(mappings)
	})
}

// FileIntents returns the derived path-to-intent index.
func (r *Registry) FileIntents(ctx context.Context) (map[string]string, error) {
	var mappings []repository.FileMapping
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		mappings, err = repository.NewSQLiteFileMapRepo(tx).ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(mappings))
	for _, m := range mappings {
		index[m.RelativePath] = m.IntentID
	}
	return index, nil
}

// MappingsByIntent returns the recorded file associations for one intent.
func (r *Registry) MappingsByIntent(ctx context.Context, intentID string) ([]repository.FileMapping, error) {
	var mappings []repository.FileMapping
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		mappings, err = repository.NewSQLiteFileMapRepo(tx).ListByIntent(ctx, intentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// load reads the intent document from disk, creating it with an empty list
// when absent.
func (r *Registry) load() error {
	content, err := os.ReadFile(r.intentsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading intent document: %w", err)
		}
		if err := r.createDefault(); err != nil {
			return err
		}
		content = []byte(documentHeader + "active_intents: []\n")
	}

	var doc intentDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("parsing intent document: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = make(map[string]*domain.BusinessIntent, len(doc.ActiveIntents))
	for _, intent := range doc.ActiveIntents {
		r.intents[intent.ID] = intent
	}
	return nil
}

func (r *Registry) createDefault() error {
	if err := os.MkdirAll(filepath.Dir(r.intentsPath), 0755); err != nil {
		return fmt.Errorf("creating orchestration directory: %w", err)
	}
	if err := os.WriteFile(r.intentsPath, []byte(documentHeader+"active_intents: []\n"), 0644); err != nil {
		return fmt.Errorf("creating intent document: %w", err)
	}
	return nil
}

// persistLocked writes the full snapshot of all known intents. Caller holds mu.
func (r *Registry) persistLocked() error {
	doc := intentDocument{ActiveIntents: make([]*domain.BusinessIntent, 0, len(r.intents))}
	for _, intent := range r.intents {
		doc.ActiveIntents = append(doc.ActiveIntents, intent)
	}
	sort.Slice(doc.ActiveIntents, func(i, j int) bool {
		return doc.ActiveIntents[i].ID < doc.ActiveIntents[j].ID
	})

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding intent document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.intentsPath), 0755); err != nil {
		return fmt.Errorf("creating orchestration directory: %w", err)
	}
	if err := os.WriteFile(r.intentsPath, append([]byte(documentHeader), data...), 0644); err != nil {
		return fmt.Errorf("persisting intent document: %w", err)
	}
	return nil
}
