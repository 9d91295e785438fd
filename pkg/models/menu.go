package models

// MenuItem is the stored form of one menu entry. NameEN and NameAR are the
// two language variants of the display name; the bilingual engine guarantees
// both are filled whenever the operator supplied at least one.
//
// Category is a plain copy of a category name, not a foreign key. Deleting a
// category leaves existing items pointing at the old text.
type MenuItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	NameEN   string `json:"name_en"`
	NameAR   string `json:"name_ar"`
	Price    string `json:"price"`
	Origin   string `json:"origin,omitempty"`
	Process  string `json:"process,omitempty"`
	Flavors  string `json:"flavors,omitempty"`
	Image    string `json:"image,omitempty"` // filename under the upload dir, "" if none
}

// Category is a named menu section.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
