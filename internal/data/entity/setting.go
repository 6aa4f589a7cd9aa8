package entity

// Setting is a generic key-value configuration entry grouped by a label
// (hero, contact, general, ...).
type Setting struct {
	Base
	Key   string  `db:"key"`
	Value *string `db:"value"`
	Type  string  `db:"type"` // text, textarea, image, boolean
	Group string  `db:"group"`
}
