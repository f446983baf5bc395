package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiefinds/internal/database"
	"foodiefinds/internal/database/dbtest"
	"foodiefinds/internal/repository/sqldb"
	"foodiefinds/internal/service"
)

// newCatalogApp wires the real stores and service over an in-memory catalog.
func newCatalogApp(t *testing.T) (*fiber.App, func(query string)) {
	t.Helper()

	db := dbtest.Open(t)
	dbtest.SeedRestaurants(t, db, dbtest.SampleRestaurants...)
	dbtest.SeedDishes(t, db, dbtest.SampleDishes...)

	svc := service.NewCatalogService(
		sqldb.NewRestaurantStore(db, database.Question),
		sqldb.NewDishStore(db, database.Question),
	)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, svc, "banner")

	exec := func(query string) {
		_, err := db.Exec(query)
		require.NoError(t, err)
	}
	return app, exec
}

func decodeList(t *testing.T, body, key string) []map[string]any {
	t.Helper()
	var payload map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Contains(t, payload, key)
	return payload[key]
}

func TestCatalog_RestaurantDetails(t *testing.T) {
	app, _ := newCatalogApp(t)

	status, body := do(t, app, http.MethodGet, "/restaurants/details/1")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"restaurant":[{
		"id":1,"name":"Spice Kitchen","cuisine":"Indian","isVeg":"true","rating":4.5,
		"priceForTwo":1500,"location":"MG Road","hasOutdoorSeating":"true","isLuxury":"false"}]}`, body)

	status, body = do(t, app, http.MethodGet, "/restaurants/details/999")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"No restaurant by this id found."}`, body)

	status, _ = do(t, app, http.MethodGet, "/restaurants/details/abc")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = do(t, app, http.MethodGet, "/restaurants/details/2xyz")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, decodeList(t, body, "restaurant")[0]["id"])
}

func TestCatalog_SortByRating(t *testing.T) {
	app, _ := newCatalogApp(t)

	status, body := do(t, app, http.MethodGet, "/restaurants/sort-by-rating")
	require.Equal(t, http.StatusOK, status)

	rows := decodeList(t, body, "restaurants")
	require.Len(t, rows, len(dbtest.SampleRestaurants))
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1]["rating"].(float64), rows[i]["rating"].(float64))
	}
}

func TestCatalog_SortByPrice(t *testing.T) {
	app, exec := newCatalogApp(t)
	exec(`DELETE FROM dishes`)
	exec(`INSERT INTO dishes (id, name, price, rating, isVeg) VALUES (1, 'A', 10, 4, 'true'), (2, 'B', 5, 4, 'false')`)

	status, body := do(t, app, http.MethodGet, "/dishes/sort-by-price")
	require.Equal(t, http.StatusOK, status)

	rows := decodeList(t, body, "dishes")
	require.Len(t, rows, 2)
	assert.EqualValues(t, 2, rows[0]["id"])
	assert.EqualValues(t, 1, rows[1]["id"])
}

func TestCatalog_FilterMatchesRawParams(t *testing.T) {
	app, _ := newCatalogApp(t)

	status, body := do(t, app, http.MethodGet, "/restaurants/filter?isVeg=true&hasOutdoorSeating=true&isLuxury=false")
	require.Equal(t, http.StatusOK, status)
	rows := decodeList(t, body, "restaurants")
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "true", r["isVeg"])
		assert.Equal(t, "true", r["hasOutdoorSeating"])
		assert.Equal(t, "false", r["isLuxury"])
	}

	status, body = do(t, app, http.MethodGet, "/dishes/filter?isVeg=false")
	require.Equal(t, http.StatusOK, status)
	rows = decodeList(t, body, "dishes")
	require.Len(t, rows, 1)
	assert.Equal(t, "false", rows[0]["isVeg"])

	// a missing flag binds NULL and matches nothing
	status, _ = do(t, app, http.MethodGet, "/restaurants/filter?isVeg=true&hasOutdoorSeating=true")
	assert.Equal(t, http.StatusNotFound, status)

	// values are compared as given
	status, _ = do(t, app, http.MethodGet, "/dishes/filter?isVeg=1")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCatalog_CuisineIsExact(t *testing.T) {
	app, _ := newCatalogApp(t)

	status, body := do(t, app, http.MethodGet, "/restaurants/cuisine/Indian")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeList(t, body, "restaurants"), 2)

	status, body = do(t, app, http.MethodGet, "/restaurants/cuisine/indian")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"No restaurant with indian cuisine found."}`, body)
}

func TestCatalog_RepeatedReadsAreIdentical(t *testing.T) {
	app, _ := newCatalogApp(t)

	for _, target := range []string{"/restaurants", "/dishes", "/restaurants/sort-by-rating"} {
		_, first := do(t, app, http.MethodGet, target)
		_, second := do(t, app, http.MethodGet, target)
		assert.Equal(t, first, second, target)
	}
}

func TestCatalog_ReadsReflectCurrentState(t *testing.T) {
	app, exec := newCatalogApp(t)

	status, _ := do(t, app, http.MethodGet, "/dishes/details/10")
	assert.Equal(t, http.StatusNotFound, status)

	exec(`INSERT INTO dishes (id, name, price, rating, isVeg) VALUES (10, 'Dal', 120, 4.2, 'true')`)

	status, body := do(t, app, http.MethodGet, "/dishes/details/10")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Dal", decodeList(t, body, "dish")[0]["name"])
}

func TestCatalog_MissingTable(t *testing.T) {
	app, exec := newCatalogApp(t)
	exec(`DROP TABLE restaurants`)

	status, body := do(t, app, http.MethodGet, "/restaurants")
	assert.Equal(t, http.StatusInternalServerError, status)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Contains(t, payload["error"], "no such table")

	// dishes are unaffected
	status, _ = do(t, app, http.MethodGet, "/dishes")
	assert.Equal(t, http.StatusOK, status)
}

func TestCatalog_EmptyTables(t *testing.T) {
	app, exec := newCatalogApp(t)
	exec(`DELETE FROM restaurants`)
	exec(`DELETE FROM dishes`)

	status, body := do(t, app, http.MethodGet, "/restaurants")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"No restaurants found."}`, body)

	status, body = do(t, app, http.MethodGet, "/dishes/sort-by-price")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"No dish found."}`, body)
}
