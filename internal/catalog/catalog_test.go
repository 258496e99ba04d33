package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yusufstudio18-creator-1/yusuf-market/internal/db"
	"github.com/yusufstudio18-creator-1/yusuf-market/internal/models"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "market.db"))
	require.NoError(t, err)
	return New(gdb), gdb
}

func createSeller(t *testing.T, gdb *gorm.DB, username string) string {
	t.Helper()
	seller := models.Seller{ID: uuid.NewString(), Username: username, PasswordHash: "x"}
	require.NoError(t, gdb.Create(&seller).Error)
	return seller.ID
}

func TestAddAndGetProduct(t *testing.T) {
	svc, gdb := newTestService(t)
	owner := createSeller(t, gdb, "yusuf")

	created, err := svc.AddProduct(context.Background(), owner,
		"Klavye", 199.90, "mekanik", "Elektronik", "https://pay.example/klavye")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "Klavye", got.Name)
	require.Equal(t, 199.90, got.Price)
	require.Equal(t, owner, got.SellerID)
	require.Equal(t, "https://pay.example/klavye", got.PaymentLink)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProduct(context.Background(), "yok-boyle-bir-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchByName(t *testing.T) {
	svc, gdb := newTestService(t)
	owner := createSeller(t, gdb, "yusuf")

	_, err := svc.AddProduct(context.Background(), owner, "Keyboard", 10, "", "Electronics", "l1")
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), owner, "Mouse", 5, "", "Electronics", "l2")
	require.NoError(t, err)

	// подстрока без учёта регистра
	for _, q := range []string{"key", "KEY", "eyboar"} {
		items, err := svc.ListProducts(context.Background(), q, "")
		require.NoError(t, err)
		require.Len(t, items, 1, "query %q", q)
		require.Equal(t, "Keyboard", items[0].Name)
	}
}

func TestFilterByCategory(t *testing.T) {
	svc, gdb := newTestService(t)
	owner := createSeller(t, gdb, "yusuf")

	_, err := svc.AddProduct(context.Background(), owner, "Keyboard", 10, "", "Electronics", "l1")
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), owner, "Dune", 7, "", "Books", "l2")
	require.NoError(t, err)

	items, err := svc.ListProducts(context.Background(), "", "Books")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Dune", items[0].Name)

	cats, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Electronics", "Books"}, cats)
}

func TestSearchAndFilterCombine(t *testing.T) {
	svc, gdb := newTestService(t)
	owner := createSeller(t, gdb, "yusuf")

	_, err := svc.AddProduct(context.Background(), owner, "Keyboard", 10, "", "Electronics", "l1")
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), owner, "Key Holder", 3, "", "Home", "l2")
	require.NoError(t, err)

	items, err := svc.ListProducts(context.Background(), "key", "Home")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Key Holder", items[0].Name)

	all, err := svc.ListProducts(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestListOwnProducts(t *testing.T) {
	svc, gdb := newTestService(t)
	ownerA := createSeller(t, gdb, "ali")
	ownerB := createSeller(t, gdb, "veli")

	_, err := svc.AddProduct(context.Background(), ownerA, "Kitap", 7, "", "Books", "l1")
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), ownerB, "Kalem", 2, "", "Office", "l2")
	require.NoError(t, err)

	items, err := svc.ListOwnProducts(context.Background(), ownerA)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Kitap", items[0].Name)
}

func TestDeleteProductOwnerScoped(t *testing.T) {
	svc, gdb := newTestService(t)
	ownerA := createSeller(t, gdb, "ali")
	ownerB := createSeller(t, gdb, "veli")

	created, err := svc.AddProduct(context.Background(), ownerA, "Kitap", 7, "", "Books", "l1")
	require.NoError(t, err)

	// чужой товар: молча no-op
	require.NoError(t, svc.DeleteProduct(context.Background(), ownerB, created.ID))
	_, err = svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)

	// владелец: удаляется
	require.NoError(t, svc.DeleteProduct(context.Background(), ownerA, created.ID))
	_, err = svc.GetProduct(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// повторное удаление — тоже no-op
	require.NoError(t, svc.DeleteProduct(context.Background(), ownerA, created.ID))
}
