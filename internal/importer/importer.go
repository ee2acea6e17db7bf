package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/rachelL-tech/taipei-day-trip/internal/logger"
	"github.com/rachelL-tech/taipei-day-trip/internal/model"
	"github.com/rachelL-tech/taipei-day-trip/internal/repository"
)

// imageURLPattern вылавливает из сплошного текста ссылки http(s) на .jpg/.png
// без учета регистра расширения.
var imageURLPattern = regexp.MustCompile(`(?i)https?://[^\s]+?\.(?:jpg|png)`)

// sourceDocument описывает структуру исходного JSON-экспорта: result.results[].
type sourceDocument struct {
	Result struct {
		Results []sourceAttraction `json:"results"`
	} `json:"result"`
}

// sourceAttraction - одна запись экспорта. Идентификатор и координаты объявлены
// как interface{}, потому что в исходных данных они встречаются и строками, и числами.
type sourceAttraction struct {
	ID          interface{} `json:"_id"`
	Name        string      `json:"name"`
	Category    string      `json:"CAT"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Transport   string      `json:"direction"`
	MRT         *string     `json:"MRT"`
	Latitude    interface{} `json:"latitude"`
	Longitude   interface{} `json:"longitude"`
	File        string      `json:"file"`
}

// Parse читает JSON-экспорт и превращает его в строки для вставки:
// достопримечательности и их картинки, сгруппированные по id.
func Parse(r io.Reader) ([]model.Attraction, map[int][]string, error) {
	var doc sourceDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("ошибка при разборе JSON-экспорта: %w", err)
	}

	attractions := make([]model.Attraction, 0, len(doc.Result.Results))
	images := make(map[int][]string, len(doc.Result.Results))
	for _, src := range doc.Result.Results {
		id, err := idValue(src.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка в записи %q: %w", src.Name, err)
		}
		mrt := src.MRT
		if mrt != nil && *mrt == "" {
			mrt = nil
		}
		attractions = append(attractions, model.Attraction{
			ID:          id,
			Name:        src.Name,
			Category:    src.Category,
			Description: src.Description,
			Address:     src.Address,
			Transport:   src.Transport,
			MRT:         mrt,
			Lat:         coordValue(src.Latitude),
			Lng:         coordValue(src.Longitude),
		})
		images[id] = ExtractImageURLs(src.File)
	}
	return attractions, images, nil
}

// idValue превращает исходный идентификатор в int. В экспорте он бывает
// и числом, и строкой с числом; действительно нечисловое значение - ошибка,
// которая откатывает весь импорт.
func idValue(v interface{}) (int, error) {
	switch val := v.(type) {
	case float64:
		return int(val), nil
	case string:
		id, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("нечисловой идентификатор _id %q: %w", val, err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("отсутствующий или нечисловой идентификатор _id: %v", v)
	}
}

// ExtractImageURLs достает из блоба текста все ссылки на картинки в порядке появления.
func ExtractImageURLs(blob string) []string {
	urls := imageURLPattern.FindAllString(blob, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}

// coordValue превращает исходное значение координаты в *float64.
// Пустые, отсутствующие и нечисловые значения дают nil (NULL в базе),
// а не случайный ноль - это инвариант импорта.
func coordValue(v interface{}) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case string:
		if val == "" {
			return nil
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Importer выполняет разовый импорт JSON-экспорта в базу.
type Importer struct {
	repo *repository.AttractionRepository
	log  *logger.Logger
}

// New создает импортер поверх репозитория достопримечательностей.
func New(repo *repository.AttractionRepository, log *logger.Logger) *Importer {
	return &Importer{repo: repo, log: log}
}

// Run читает файл экспорта и вставляет все записи одной транзакцией.
// Любая ошибка откатывает весь импорт целиком.
func (i *Importer) Run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка при открытии файла экспорта: %w", err)
	}
	defer f.Close()

	attractions, images, err := Parse(f)
	if err != nil {
		return err
	}
	totalImages := 0
	for _, urls := range images {
		totalImages += len(urls)
	}
	i.log.Infof("импорт: %d достопримечательностей, %d картинок", len(attractions), totalImages)

	if err := i.repo.ImportAll(attractions, images); err != nil {
		return err
	}
	i.log.Infof("импорт завершен")
	return nil
}
