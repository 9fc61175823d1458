package catalog

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"theme_ai_server/internal/types"
)

// File names of the two catalog partitions inside the catalog directory.
const (
	FreeCatalogFile = "free-1.json"
	ProCatalogFile  = "pro-1.json"
)

// catalogDocument is the on-disk shape of a catalog partition.
type catalogDocument struct {
	Components []types.ComponentDefinition `json:"components"`
}

// Store indexes the component definitions of both plan tiers. It is populated
// once at startup and read-only afterwards, so it is safe for unbounded
// concurrent reads without locking.
type Store struct {
	free []types.ComponentDefinition
	pro  []types.ComponentDefinition
}

// NewStore builds a store directly from definition slices. Tests use this to
// substitute fixture catalogs.
func NewStore(free, pro []types.ComponentDefinition) *Store {
	return &Store{free: free, pro: pro}
}

// LoadStore reads the free and pro catalog documents from dir. A missing or
// malformed document leaves that partition empty: the server keeps serving
// degraded results instead of refusing to start.
func LoadStore(dir string) *Store {
	return &Store{
		free: loadPartition(filepath.Join(dir, FreeCatalogFile)),
		pro:  loadPartition(filepath.Join(dir, ProCatalogFile)),
	}
}

func loadPartition(path string) []types.ComponentDefinition {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARN: Catalog file %s not readable: %v. Partition will be empty.", path, err)
		return nil
	}

	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("WARN: Catalog file %s is malformed: %v. Partition will be empty.", path, err)
		return nil
	}

	log.Printf("Loaded %d component definitions from %s", len(doc.Components), path)
	return doc.Components
}

// ListAvailable returns the definitions visible to a tier: the free partition
// for free plans, free followed by pro for pro plans.
func (s *Store) ListAvailable(tier types.PlanTier) []types.ComponentDefinition {
	if tier == types.PlanFree {
		return s.free
	}
	out := make([]types.ComponentDefinition, 0, len(s.free)+len(s.pro))
	out = append(out, s.free...)
	out = append(out, s.pro...)
	return out
}

// FindComponent resolves a requested component type for a tier. An exact type
// match wins; otherwise the first case-insensitive title substring match is
// accepted. Returns nil when nothing matches — callers decide whether to skip
// or substitute.
func (s *Store) FindComponent(typ string, tier types.PlanTier) *types.ComponentDefinition {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil
	}

	available := s.ListAvailable(tier)
	for i := range available {
		if available[i].Type == typ {
			return &available[i]
		}
	}

	needle := strings.ToLower(typ)
	for i := range available {
		if strings.Contains(strings.ToLower(available[i].Title), needle) {
			return &available[i]
		}
	}
	return nil
}

// TypeVocabulary lists the component type keys visible to a tier, in catalog
// order. The prompt builder embeds this in the instruction sent to the model.
func (s *Store) TypeVocabulary(tier types.PlanTier) []string {
	available := s.ListAvailable(tier)
	vocab := make([]string, 0, len(available))
	for i := range available {
		vocab = append(vocab, available[i].Type)
	}
	return vocab
}
