// Package parks holds the static park catalogue. The dataset ships embedded
// in the binary and is read-only after load.
package parks

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/blaketime/woodsmoke/internal/types"
)

//go:embed parks.json
var datasetJSON []byte

// Repository provides read access to the park catalogue.
type Repository struct {
	parks []types.Park
	byID  map[string]*types.Park
}

// NewRepository loads the embedded dataset. It fails if the dataset is
// malformed or contains duplicate IDs, which is a build defect rather than a
// runtime condition.
func NewRepository() (*Repository, error) {
	return newRepositoryFrom(datasetJSON)
}

func newRepositoryFrom(data []byte) (*Repository, error) {
	var parks []types.Park
	if err := json.Unmarshal(data, &parks); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDataset, "parsing park dataset", err)
	}

	byID := make(map[string]*types.Park, len(parks))
	for i := range parks {
		p := &parks[i]
		if p.ID == "" {
			return nil, types.NewAppError(types.ErrCodeInternalDataset, fmt.Sprintf("park %q has no id", p.Name), nil)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, types.NewAppError(types.ErrCodeInternalDataset, fmt.Sprintf("duplicate park id %q", p.ID), nil)
		}
		byID[p.ID] = p
	}

	return &Repository{parks: parks, byID: byID}, nil
}

// List returns every park in dataset order.
func (r *Repository) List() []types.Park {
	out := make([]types.Park, len(r.parks))
	copy(out, r.parks)
	return out
}

// Get returns the park with the given ID.
func (r *Repository) Get(id string) (types.Park, error) {
	p, ok := r.byID[id]
	if !ok {
		return types.Park{}, types.NewAppError(types.ErrCodeNotFoundPark, fmt.Sprintf("park %q not found", id), nil)
	}
	return *p, nil
}

// Len returns the number of parks in the catalogue.
func (r *Repository) Len() int {
	return len(r.parks)
}
