package sales

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "sales.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)
	return storage, path
}

func testSale(id, date string) *Sale {
	products := []Product{{Name: "Widget", PurchasePrice: 10, SalePrice: 15}}
	return &Sale{
		ID:            id,
		SaleDate:      date,
		PaymentMethod: "Pix",
		Products:      products,
		Summary:       SummarizeProducts(products),
		Status:        StatusActive,
		CreatedAt:     time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestFileStorage_BootstrapsEmptyDocument(t *testing.T) {
	_, path := newTestFileStorage(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStorage_AppendAndListPreserveOrder(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	require.NoError(t, storage.Append(testSale("a", "2024-01-10")))
	require.NoError(t, storage.Append(testSale("b", "2024-01-11")))
	require.NoError(t, storage.Append(testSale("c", "2024-01-12")))

	stored, err := storage.List()
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "a", stored[0].ID)
	assert.Equal(t, "b", stored[1].ID)
	assert.Equal(t, "c", stored[2].ID)
}

func TestFileStorage_RoundTripAcrossReopen(t *testing.T) {
	storage, path := newTestFileStorage(t)
	sale := testSale("a", "2024-01-10")
	require.NoError(t, storage.Append(sale))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	got, err := reopened.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, sale.SaleDate, got.SaleDate)
	assert.Equal(t, sale.PaymentMethod, got.PaymentMethod)
	assert.Equal(t, sale.Products, got.Products)
	assert.Equal(t, SummarizeProducts(got.Products), got.Summary,
		"persisted summary must equal the fold of the persisted products")
	assert.True(t, sale.CreatedAt.Equal(got.CreatedAt))
	assert.Nil(t, got.UpdatedAt)
}

func TestFileStorage_AppendRejectsEmptyID(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	err := storage.Append(&Sale{})

	assert.True(t, errors.Is(err, ErrEmptyID))
}

func TestFileStorage_ReplaceKeepsPosition(t *testing.T) {
	storage, _ := newTestFileStorage(t)
	require.NoError(t, storage.Append(testSale("a", "2024-01-10")))
	require.NoError(t, storage.Append(testSale("b", "2024-01-11")))

	replacement := testSale("b", "2024-02-01")
	require.NoError(t, storage.Replace("b", replacement))

	stored, err := storage.List()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "b", stored[1].ID)
	assert.Equal(t, "2024-02-01", stored[1].SaleDate)
}

func TestFileStorage_ReplaceNotFound(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	err := storage.Replace("missing", testSale("missing", "2024-01-10"))

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileStorage_RemoveReturnsRecord(t *testing.T) {
	storage, _ := newTestFileStorage(t)
	require.NoError(t, storage.Append(testSale("a", "2024-01-10")))
	require.NoError(t, storage.Append(testSale("b", "2024-01-11")))

	removed, err := storage.Remove("a")
	require.NoError(t, err)
	assert.Equal(t, "a", removed.ID)

	stored, err := storage.List()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "b", stored[0].ID)
}

func TestFileStorage_RemoveNotFound(t *testing.T) {
	storage, _ := newTestFileStorage(t)
	require.NoError(t, storage.Append(testSale("a", "2024-01-10")))

	removed, err := storage.Remove("missing")

	assert.Nil(t, removed)
	assert.True(t, errors.Is(err, ErrNotFound))
	stored, _ := storage.List()
	assert.Len(t, stored, 1, "a failed remove must not shrink the list")
}

func TestFileStorage_CorruptDocumentIsStorageError(t *testing.T) {
	storage, path := newTestFileStorage(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := storage.List()

	assert.True(t, errors.Is(err, ErrStorage))
}
