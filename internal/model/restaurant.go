package model

// Restaurant is a row of the restaurants table. Columns beyond the ones
// with accessors are carried through untouched.
type Restaurant struct {
	Row
}

func (r Restaurant) ID() int64                 { return r.Int("id") }
func (r Restaurant) Name() string              { return r.String("name") }
func (r Restaurant) Cuisine() string           { return r.String("cuisine") }
func (r Restaurant) Rating() float64           { return r.Float("rating") }
func (r Restaurant) IsVeg() string             { return r.String("isVeg") }
func (r Restaurant) HasOutdoorSeating() string { return r.String("hasOutdoorSeating") }
func (r Restaurant) IsLuxury() string          { return r.String("isLuxury") }
