package repository

import (
	"fmt"

	"github.com/rachelL-tech/taipei-day-trip/internal/model"

	"github.com/jmoiron/sqlx"
)

// AttractionRepository обеспечивает доступ к данным достопримечательностей и их картинок.
type AttractionRepository struct {
	db *sqlx.DB
}

// NewAttractionRepository создает новый репозиторий достопримечательностей.
func NewAttractionRepository(db *sqlx.DB) *AttractionRepository {
	return &AttractionRepository{db: db}
}

// Count возвращает общее число достопримечательностей, подходящих под фильтр.
func (r *AttractionRepository) Count(f SearchFilter) (int, error) {
	whereSQL, args := f.WhereSQL()
	query := r.db.Rebind("SELECT COUNT(*) FROM attractions " + whereSQL)
	var total int
	if err := r.db.Get(&total, query, args...); err != nil {
		return 0, fmt.Errorf("ошибка при подсчете достопримечательностей: %w", err)
	}
	return total, nil
}

// FindPage возвращает одну страницу достопримечательностей по фильтру.
// Сортировка по id гарантирует стабильный порядок при повторных запросах.
func (r *AttractionRepository) FindPage(f SearchFilter, limit, offset int) ([]model.Attraction, error) {
	whereSQL, args := f.WhereSQL()
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT id, name, category, description, address, transport, mrt, lat, lng
		FROM attractions
		%s
		ORDER BY id ASC
		LIMIT ? OFFSET ?`, whereSQL))
	args = append(args, limit, offset)
	attractions := []model.Attraction{}
	if err := r.db.Select(&attractions, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при выборке страницы достопримечательностей: %w", err)
	}
	return attractions, nil
}

// GetByID получает достопримечательность по ее идентификатору.
func (r *AttractionRepository) GetByID(id int) (*model.Attraction, error) {
	var attraction model.Attraction
	query := r.db.Rebind(`
		SELECT id, name, category, description, address, transport, mrt, lat, lng
		FROM attractions
		WHERE id = ?`)
	err := r.db.Get(&attraction, query, id)
	if err != nil {
		// sqlx.Get возвращает sql.ErrNoRows, если строки нет - различение делает сервис
		return nil, err
	}
	return &attraction, nil
}

// ImagesByAttractionIDs одним запросом получает картинки для набора достопримечательностей
// и группирует URL по идентификатору. Для id без картинок в результате лежит пустой список.
func (r *AttractionRepository) ImagesByAttractionIDs(ids []int) (map[int][]string, error) {
	images := make(map[int][]string, len(ids))
	for _, id := range ids {
		images[id] = []string{}
	}
	if len(ids) == 0 {
		return images, nil
	}
	query, args, err := sqlx.In("SELECT attraction_id, url FROM images WHERE attraction_id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сборке запроса картинок: %w", err)
	}
	rows := []model.Image{}
	if err := r.db.Select(&rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении картинок: %w", err)
	}
	for _, row := range rows {
		images[row.AttractionID] = append(images[row.AttractionID], row.URL)
	}
	return images, nil
}

// ImageURLs возвращает все URL картинок одной достопримечательности в порядке вставки.
func (r *AttractionRepository) ImageURLs(attractionID int) ([]string, error) {
	urls := []string{}
	query := r.db.Rebind("SELECT url FROM images WHERE attraction_id = ?")
	if err := r.db.Select(&urls, query, attractionID); err != nil {
		return nil, fmt.Errorf("ошибка при получении картинок достопримечательности: %w", err)
	}
	return urls, nil
}

// Categories возвращает все непустые категории без повторов, по алфавиту.
func (r *AttractionRepository) Categories() ([]string, error) {
	categories := []string{}
	query := `
		SELECT DISTINCT category
		FROM attractions
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category`
	if err := r.db.Select(&categories, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка категорий: %w", err)
	}
	return categories, nil
}

// MRTStations возвращает непустые станции метро без повторов,
// сначала станции с наибольшим числом достопримечательностей, при равенстве - по алфавиту.
func (r *AttractionRepository) MRTStations() ([]string, error) {
	stations := []string{}
	query := `
		SELECT mrt
		FROM attractions
		WHERE mrt IS NOT NULL AND mrt <> ''
		GROUP BY mrt
		ORDER BY COUNT(*) DESC, mrt ASC`
	if err := r.db.Select(&stations, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка станций метро: %w", err)
	}
	return stations, nil
}

// ImportAll вставляет все достопримечательности и их картинки одной транзакцией.
// Любая ошибка откатывает весь пакет - частичного импорта не бывает.
func (r *AttractionRepository) ImportAll(attractions []model.Attraction, images map[int][]string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции импорта: %w", err)
	}
	defer tx.Rollback()

	insertAttraction := tx.Rebind(`
		INSERT INTO attractions (id, name, category, description, address, transport, mrt, lat, lng)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	insertImage := tx.Rebind("INSERT INTO images (attraction_id, url) VALUES (?, ?)")

	for _, a := range attractions {
		if _, err := tx.Exec(insertAttraction,
			a.ID, a.Name, a.Category, a.Description, a.Address, a.Transport, a.MRT, a.Lat, a.Lng); err != nil {
			return fmt.Errorf("ошибка при вставке достопримечательности %d: %w", a.ID, err)
		}
		for _, url := range images[a.ID] {
			if _, err := tx.Exec(insertImage, a.ID, url); err != nil {
				return fmt.Errorf("ошибка при вставке картинки достопримечательности %d: %w", a.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при завершении транзакции импорта: %w", err)
	}
	return nil
}
