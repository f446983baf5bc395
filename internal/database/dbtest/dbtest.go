// Package dbtest provides an in-memory SQLite catalog for tests.
package dbtest

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE restaurants (
  id                INTEGER PRIMARY KEY,
  name              TEXT,
  cuisine           TEXT,
  isVeg             TEXT,
  rating            REAL,
  priceForTwo       INTEGER,
  location          TEXT,
  hasOutdoorSeating TEXT,
  isLuxury          TEXT
);
CREATE TABLE dishes (
  id     INTEGER PRIMARY KEY,
  name   TEXT,
  price  REAL,
  rating REAL,
  isVeg  TEXT
);`

// Restaurant is a fixture row for the restaurants table.
type Restaurant struct {
	ID                int64
	Name              string
	Cuisine           string
	IsVeg             string
	Rating            float64
	PriceForTwo       int64
	Location          string
	HasOutdoorSeating string
	IsLuxury          string
}

// Dish is a fixture row for the dishes table.
type Dish struct {
	ID     int64
	Name   string
	Price  float64
	Rating float64
	IsVeg  string
}

// Open returns an empty catalog with both tables created. The pool is
// pinned to one connection because every :memory: connection is a
// separate database.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

// OpenEmpty returns a database with no tables at all.
func OpenEmpty(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SeedRestaurants inserts the given rows.
func SeedRestaurants(t testing.TB, db *sql.DB, rows ...Restaurant) {
	t.Helper()
	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO restaurants (id, name, cuisine, isVeg, rating, priceForTwo, location, hasOutdoorSeating, isLuxury)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.Cuisine, r.IsVeg, r.Rating, r.PriceForTwo, r.Location, r.HasOutdoorSeating, r.IsLuxury,
		)
		if err != nil {
			t.Fatalf("seed restaurant %d: %v", r.ID, err)
		}
	}
}

// SeedDishes inserts the given rows.
func SeedDishes(t testing.TB, db *sql.DB, rows ...Dish) {
	t.Helper()
	for _, d := range rows {
		_, err := db.Exec(
			`INSERT INTO dishes (id, name, price, rating, isVeg) VALUES (?, ?, ?, ?, ?)`,
			d.ID, d.Name, d.Price, d.Rating, d.IsVeg,
		)
		if err != nil {
			t.Fatalf("seed dish %d: %v", d.ID, err)
		}
	}
}

// SampleRestaurants is a small catalog with mixed flags and ratings.
var SampleRestaurants = []Restaurant{
	{ID: 1, Name: "Spice Kitchen", Cuisine: "Indian", IsVeg: "true", Rating: 4.5, PriceForTwo: 1500, Location: "MG Road", HasOutdoorSeating: "true", IsLuxury: "false"},
	{ID: 2, Name: "Olive Bistro", Cuisine: "Italian", IsVeg: "false", Rating: 4.1, PriceForTwo: 2000, Location: "Jubilee Hills", HasOutdoorSeating: "false", IsLuxury: "true"},
	{ID: 3, Name: "Green Leaf", Cuisine: "Indian", IsVeg: "true", Rating: 4.8, PriceForTwo: 800, Location: "Banjara Hills", HasOutdoorSeating: "true", IsLuxury: "false"},
	{ID: 4, Name: "Dragon Wok", Cuisine: "Chinese", IsVeg: "false", Rating: 3.9, PriceForTwo: 1200, Location: "Hitech City", HasOutdoorSeating: "false", IsLuxury: "false"},
}

// SampleDishes pairs with SampleRestaurants.
var SampleDishes = []Dish{
	{ID: 1, Name: "Paneer Butter Masala", Price: 250, Rating: 4.5, IsVeg: "true"},
	{ID: 2, Name: "Chicken Alfredo Pasta", Price: 350, Rating: 4.7, IsVeg: "false"},
	{ID: 3, Name: "Veg Hakka Noodles", Price: 180, Rating: 4.0, IsVeg: "true"},
}
