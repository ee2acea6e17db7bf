package model

// Attraction представляет одну достопримечательность (строку таблицы attractions).
// Идентификатор приходит из исходного датасета и не генерируется базой.
type Attraction struct {
	ID          int      `db:"id"`
	Name        string   `db:"name"`
	Category    string   `db:"category"`
	Description string   `db:"description"`
	Address     string   `db:"address"`
	Transport   string   `db:"transport"` // как добраться (описание маршрута)
	MRT         *string  `db:"mrt"`       // ближайшая станция метро; NULL, если станции нет
	Lat         *float64 `db:"lat"`       // NULL, если в исходных данных координаты нет
	Lng         *float64 `db:"lng"`
}

// AttractionView - форма ответа API: поля достопримечательности плюс список URL ее картинок.
// Поле Images всегда список (возможно пустой), никогда не null.
type AttractionView struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Transport   string   `json:"transport"`
	MRT         *string  `json:"mrt"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Images      []string `json:"images"`
}

// AttractionPage - одна страница списка достопримечательностей.
// NextPage равен nil, когда это последняя страница (или страниц вообще нет).
type AttractionPage struct {
	NextPage *int             `json:"nextPage"`
	Data     []AttractionView `json:"data"`
}

// View собирает AttractionView из строки таблицы и списка URL картинок.
func (a *Attraction) View(images []string) AttractionView {
	if images == nil {
		images = []string{}
	}
	return AttractionView{
		ID:          a.ID,
		Name:        a.Name,
		Category:    a.Category,
		Description: a.Description,
		Address:     a.Address,
		Transport:   a.Transport,
		MRT:         a.MRT,
		Lat:         a.Lat,
		Lng:         a.Lng,
		Images:      images,
	}
}
