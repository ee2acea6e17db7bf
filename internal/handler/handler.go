package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rachelL-tech/taipei-day-trip/internal/repository"
	"github.com/rachelL-tech/taipei-day-trip/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AttractionService *service.AttractionService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AttractionService) *Handler {
	return &Handler{AttractionService: as}
}

// ListAttractions обработчик для GET /api/attractions - возвращает страницу
// достопримечательностей по необязательным фильтрам category и keyword.
// Параметр page обязателен и должен быть целым числом >= 0; некорректное
// значение отклоняется до обращения к базе.
func (h *Handler) ListAttractions(c *gin.Context) {
	pageStr := c.Query("page")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   true,
			"message": "page must be a non-negative integer",
		})
		return
	}
	filter := repository.SearchFilter{
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
	}
	result, err := h.AttractionService.ListAttractions(page, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAttraction обработчик для GET /api/attraction/:attractionId - возвращает
// одну достопримечательность. Несуществующий или нечисловой id - ошибка клиента.
func (h *Handler) GetAttraction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("attractionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   true,
			"message": "attraction id must be an integer",
		})
		return
	}
	attraction, err := h.AttractionService.GetAttraction(id)
	if err != nil {
		if errors.Is(err, service.ErrAttractionNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   true,
				"message": "attraction id does not exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": attraction})
}

// ListCategories обработчик для GET /api/categories - возвращает все категории.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.AttractionService.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// ListMRTs обработчик для GET /api/mrts - возвращает станции метро по популярности.
func (h *Handler) ListMRTs(c *gin.Context) {
	stations, err := h.AttractionService.MRTStations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stations})
}
