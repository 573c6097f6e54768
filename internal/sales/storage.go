package sales

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale with an empty ID.
var ErrEmptyID = errors.New("empty sale ID")

// ErrStorage wraps failures of the durable medium (disk full, bad
// permissions, unreadable document).
var ErrStorage = errors.New("storage failure")

// Storage is the system-of-record contract: one ordered collection of
// sales, appended in creation order, scanned linearly by ID.
type Storage interface {
	List() ([]*Sale, error)
	Append(sale *Sale) error
	FindByID(id string) (*Sale, error)
	Replace(id string, sale *Sale) error
	Remove(id string) (*Sale, error)
}

// FileStorage persists the whole collection as a single JSON array
// document. Every operation reads the entire file, mutates in memory
// and writes the entire file back; the mutex serializes those cycles
// within the process. A crash mid-write can still corrupt the file.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage opens a file-backed store at path, creating the parent
// directory and an empty document if needed.
func NewFileStorage(path string) (*FileStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating data directory: %v", ErrStorage, err)
		}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("%w: initializing data file: %v", ErrStorage, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &FileStorage{path: path}, nil
}

func (f *FileStorage) load() ([]*Sale, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	var sales []*Sale
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, fmt.Errorf("%w: decoding data file: %v", ErrStorage, err)
	}
	return sales, nil
}

func (f *FileStorage) save(sales []*Sale) error {
	data, err := json.MarshalIndent(sales, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding data file: %v", ErrStorage, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// List returns all sales in creation order.
func (f *FileStorage) List() ([]*Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Append persists a new sale at the end of the collection. Nothing is
// considered persisted if the write fails.
func (f *FileStorage) Append(sale *Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	sales, err := f.load()
	if err != nil {
		return err
	}
	return f.save(append(sales, sale))
}

// FindByID scans the collection for the given ID.
func (f *FileStorage) FindByID(id string) (*Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sales, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// Replace swaps the stored sale with the given ID for the provided
// record, keeping its position in the collection.
func (f *FileStorage) Replace(id string, sale *Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sales, err := f.load()
	if err != nil {
		return err
	}
	for i, s := range sales {
		if s.ID == id {
			sales[i] = sale
			return f.save(sales)
		}
	}
	return ErrNotFound
}

// Remove deletes the sale with the given ID and returns it.
func (f *FileStorage) Remove(id string) (*Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sales, err := f.load()
	if err != nil {
		return nil, err
	}
	for i, s := range sales {
		if s.ID == id {
			removed := s
			sales = append(sales[:i], sales[i+1:]...)
			if err := f.save(sales); err != nil {
				return nil, err
			}
			return removed, nil
		}
	}
	return nil, ErrNotFound
}

// LocalStorage provides an in-memory implementation for storing sales,
// slice-backed so creation order is preserved. Used in tests.
type LocalStorage struct {
	sales []*Sale
}

// NewLocalStorage instantiates an empty in-memory store.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

// List returns all sales in creation order.
func (l *LocalStorage) List() ([]*Sale, error) {
	out := make([]*Sale, len(l.sales))
	copy(out, l.sales)
	return out, nil
}

// Append stores a new sale. Returns ErrEmptyID if the sale has an
// empty ID.
func (l *LocalStorage) Append(sale *Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}
	l.sales = append(l.sales, sale)
	return nil
}

// FindByID retrieves a sale by ID. Returns ErrNotFound if absent.
func (l *LocalStorage) FindByID(id string) (*Sale, error) {
	for _, s := range l.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// Replace swaps the sale with the given ID in place.
func (l *LocalStorage) Replace(id string, sale *Sale) error {
	for i, s := range l.sales {
		if s.ID == id {
			l.sales[i] = sale
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the sale with the given ID and returns it.
func (l *LocalStorage) Remove(id string) (*Sale, error) {
	for i, s := range l.sales {
		if s.ID == id {
			l.sales = append(l.sales[:i], l.sales[i+1:]...)
			return s, nil
		}
	}
	return nil, ErrNotFound
}
