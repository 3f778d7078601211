package staff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"srms/internal/platform/store"
)

const (
	keyCollection = "srms_staff_data"
	keyNextID     = "srms_next_id"
)

// Repository persists the staff collection and its ID counter. Every
// operation reads the full collection on entry and mutations write the full
// collection back; two logically concurrent writers sharing one store race as
// last-writer-wins. Single-operator deployments serialize access by
// construction, so the repository adds no locking.
//
// It owns the srms_staff_data and srms_next_id keys and is the only writer to
// them.
type Repository struct {
	store store.Store
	now   func() time.Time
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// Initialize seeds the collection fixture on first run and is a no-op once a
// collection exists. The counter starts one past the highest seeded ID.
func (r *Repository) Initialize() error {
	_, found, err := r.store.Get(keyCollection)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	if err := r.writeCollection(seedRecords()); err != nil {
		return err
	}
	return r.writeNextID(seedNextID)
}

// GetAll returns the full collection snapshot in insertion order.
func (r *Repository) GetAll() ([]Record, error) {
	return r.readCollection()
}

// GetByID looks a record up by its textual id. Anything that does not parse
// to a positive integer, or parses but matches nothing, is not found.
func (r *Repository) GetByID(id string) (*Record, error) {
	numeric, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	records, err := r.readCollection()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == numeric {
			record := records[i]
			return &record, nil
		}
	}
	return nil, nil
}

// Add appends a new record built from draft, assigning the next ID and
// today's date. The counter moves exactly once per successful create and
// never walks back, so IDs are never reused after a delete.
func (r *Repository) Add(draft Draft) (Record, error) {
	records, err := r.readCollection()
	if err != nil {
		return Record{}, err
	}
	nextID, err := r.readNextID()
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ID:         nextID,
		FirstName:  draft.FirstName,
		LastName:   draft.LastName,
		Role:       draft.Role,
		Phone:      draft.Phone,
		Email:      draft.Email,
		Faculty:    draft.Faculty,
		Department: draft.Department,
		Type:       draft.Type,
		DateAdded:  r.now().Format("2006-01-02"),
	}

	if err := r.writeCollection(append(records, record)); err != nil {
		return Record{}, err
	}
	if err := r.writeNextID(nextID + 1); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Update replaces every draft field of the record with the given id, keeping
// its original ID and DateAdded. Returns nil without side effects when no
// record matches.
func (r *Repository) Update(id string, draft Draft) (*Record, error) {
	numeric, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	records, err := r.readCollection()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID != numeric {
			continue
		}
		updated := Record{
			ID:         numeric,
			FirstName:  draft.FirstName,
			LastName:   draft.LastName,
			Role:       draft.Role,
			Phone:      draft.Phone,
			Email:      draft.Email,
			Faculty:    draft.Faculty,
			Department: draft.Department,
			Type:       draft.Type,
			DateAdded:  records[i].DateAdded,
		}
		records[i] = updated
		if err := r.writeCollection(records); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the record with the given id. It reports whether a record
// was actually removed; nothing is written when no record matches.
func (r *Repository) Delete(id string) (bool, error) {
	numeric, ok := parseID(id)
	if !ok {
		return false, nil
	}
	records, err := r.readCollection()
	if err != nil {
		return false, err
	}
	remaining := make([]Record, 0, len(records))
	for _, record := range records {
		if record.ID != numeric {
			remaining = append(remaining, record)
		}
	}
	if len(remaining) == len(records) {
		return false, nil
	}
	if err := r.writeCollection(remaining); err != nil {
		return false, err
	}
	return true, nil
}

func parseID(id string) (int, bool) {
	numeric, err := strconv.Atoi(id)
	if err != nil || numeric <= 0 {
		return 0, false
	}
	return numeric, true
}

func (r *Repository) readCollection() ([]Record, error) {
	raw, found, err := r.store.Get(keyCollection)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Record{}, nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode staff collection: %w", err)
	}
	return records, nil
}

func (r *Repository) writeCollection(records []Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode staff collection: %w", err)
	}
	return r.store.Set(keyCollection, string(raw))
}

func (r *Repository) readNextID() (int, error) {
	raw, found, err := r.store.Get(keyNextID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 1, nil
	}
	numeric, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("decode next id %q: %w", raw, err)
	}
	return numeric, nil
}

func (r *Repository) writeNextID(id int) error {
	return r.store.Set(keyNextID, strconv.Itoa(id))
}
