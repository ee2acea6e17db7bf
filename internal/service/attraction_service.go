package service

import (
	"database/sql"
	"errors"

	"github.com/rachelL-tech/taipei-day-trip/internal/model"
	"github.com/rachelL-tech/taipei-day-trip/internal/repository"
)

// PageSize - фиксированный размер страницы списка достопримечательностей.
const PageSize = 8

// ErrAttractionNotFound возвращается, когда достопримечательности с таким id нет.
// Обработчик отличает эту ошибку от внутренних сбоев хранилища.
var ErrAttractionNotFound = errors.New("достопримечательность не найдена")

// AttractionService содержит бизнес-логику каталога достопримечательностей.
type AttractionService struct {
	attractionRepo *repository.AttractionRepository
}

// NewAttractionService создает новый сервис достопримечательностей.
func NewAttractionService(attractionRepo *repository.AttractionRepository) *AttractionService {
	return &AttractionService{attractionRepo: attractionRepo}
}

// ListAttractions возвращает одну страницу достопримечательностей по фильтру.
// Сначала считается общее число подходящих строк; если страница за пределами
// результата, сразу возвращается пустая страница без следующей - это штатный
// случай, а не ошибка. Иначе выбирается страница, одним запросом подтягиваются
// картинки всех ее строк и собирается ответ.
func (s *AttractionService) ListAttractions(page int, filter repository.SearchFilter) (*model.AttractionPage, error) {
	offset := page * PageSize

	total, err := s.attractionRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	if total == 0 || offset >= total {
		return &model.AttractionPage{NextPage: nil, Data: []model.AttractionView{}}, nil
	}

	attractions, err := s.attractionRepo.FindPage(filter, PageSize, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(attractions))
	for _, a := range attractions {
		ids = append(ids, a.ID)
	}
	images, err := s.attractionRepo.ImagesByAttractionIDs(ids)
	if err != nil {
		return nil, err
	}

	data := make([]model.AttractionView, 0, len(attractions))
	for i := range attractions {
		data = append(data, attractions[i].View(images[attractions[i].ID]))
	}

	var nextPage *int
	if offset+PageSize < total {
		next := page + 1
		nextPage = &next
	}
	return &model.AttractionPage{NextPage: nextPage, Data: data}, nil
}

// GetAttraction возвращает одну достопримечательность со списком ее картинок.
// Форма ответа полностью совпадает с элементом списка.
func (s *AttractionService) GetAttraction(id int) (*model.AttractionView, error) {
	attraction, err := s.attractionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAttractionNotFound
		}
		return nil, err
	}
	urls, err := s.attractionRepo.ImageURLs(id)
	if err != nil {
		return nil, err
	}
	view := attraction.View(urls)
	return &view, nil
}

// Categories возвращает список всех категорий для выпадающего меню.
func (s *AttractionService) Categories() ([]string, error) {
	return s.attractionRepo.Categories()
}

// MRTStations возвращает станции метро в порядке популярности.
func (s *AttractionService) MRTStations() ([]string, error) {
	return s.attractionRepo.MRTStations()
}
