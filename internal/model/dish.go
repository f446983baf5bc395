package model

// Dish is a row of the dishes table.
type Dish struct {
	Row
}

func (d Dish) ID() int64      { return d.Int("id") }
func (d Dish) Name() string   { return d.String("name") }
func (d Dish) Price() float64 { return d.Float("price") }
func (d Dish) IsVeg() string  { return d.String("isVeg") }
