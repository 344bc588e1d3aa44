package database_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront-service/database"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestListRestaurants_OrderedByRating(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormCatalogRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "image_url", "rating", "cuisine_tags", "price_level", "created_at"}).
		AddRow("rest-1", "Trattoria", "Neapolitan classics", "", 4.8, "{italian,pizza}", 2, now).
		AddRow("rest-2", "Sushi Bar", "Omakase counter", "", 4.5, "{japanese}", 3, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants" ORDER BY rating DESC`)).
		WillReturnRows(rows)

	restaurants, err := repo.ListRestaurants(context.Background())
	assert.NoError(t, err)
	assert.Len(t, restaurants, 2)
	assert.Equal(t, "Trattoria", restaurants[0].Name)
	assert.Equal(t, []string{"italian", "pizza"}, []string(restaurants[0].CuisineTags))
}

func TestFindRestaurant_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormCatalogRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants"`)).
		WithArgs("rest-404", 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	restaurant, err := repo.FindRestaurant(context.Background(), "rest-404")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, restaurant)
}

func TestListMenuItems_OrderedByCategoryThenName(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormCatalogRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "restaurant_id", "name", "description", "price", "image_url", "category", "created_at"}).
		AddRow("item-3", "rest-1", "Gelato", "", 4.00, "", "desserts", now).
		AddRow("item-1", "rest-1", "Lasagna", "", 11.50, "", "mains", now).
		AddRow("item-2", "rest-1", "Risotto", "", 10.00, "", "mains", now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "menu_items" WHERE restaurant_id = $1 ORDER BY category ASC,name ASC`)).
		WithArgs("rest-1").
		WillReturnRows(rows)

	items, err := repo.ListMenuItems(context.Background(), "rest-1")
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "desserts", items[0].Category)
}

func TestFindMenuItem_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormCatalogRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "restaurant_id", "name", "description", "price", "image_url", "category", "created_at"}).
		AddRow("item-1", "rest-1", "Burger", "", 8.00, "", "mains", now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "menu_items"`)).
		WithArgs("item-1", 1).
		WillReturnRows(rows)

	item, err := repo.FindMenuItem(context.Background(), "item-1")
	assert.NoError(t, err)
	assert.Equal(t, 8.00, item.Price)
}
