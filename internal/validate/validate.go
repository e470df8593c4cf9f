package validate

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Names of the bundled schemas.
const (
	CreateQuestion = "create_question"
	Quiz           = "quiz"
)

// Validator holds compiled JSON schemas keyed by file name without extension.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// New compiles the schemas bundled with this package.
func New() (*Validator, error) {
	v := &Validator{}
	if err := v.Load(schemaFS, "schemas"); err != nil {
		return nil, err
	}
	return v, nil
}

// Load replaces the cache with every *.json schema found in dir of fsys.
func (v *Validator) Load(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	newCache := make(map[string]*jsonschema.Schema)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read schema %s: %w", e.Name(), err)
		}

		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return fmt.Errorf("compile schema %s: %w", e.Name(), err)
		}
		newCache[strings.TrimSuffix(e.Name(), ".json")] = rs
	}

	v.mu.Lock()
	v.cache = newCache
	v.mu.Unlock()
	return nil
}

// Validate checks body against the named schema. It returns one message per
// violation; a non-nil error means the check itself could not run.
func (v *Validator) Validate(ctx context.Context, name string, body []byte) ([]string, error) {
	v.mu.RLock()
	s, ok := v.cache[name]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no schema named %q", name)
	}

	verrs, err := s.ValidateBytes(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("schema validate error: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, ke := range verrs {
		if ke.PropertyPath != "" && ke.PropertyPath != "/" {
			problems = append(problems, ke.PropertyPath+": "+ke.Message)
			continue
		}
		problems = append(problems, ke.Message)
	}
	return problems, nil
}
