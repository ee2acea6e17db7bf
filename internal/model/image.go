package model

// Image представляет картинку, привязанную к достопримечательности.
// У одной достопримечательности может быть несколько картинок.
type Image struct {
	AttractionID int    `db:"attraction_id"`
	URL          string `db:"url"`
}
