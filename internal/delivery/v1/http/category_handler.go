package http

import (
	"net/http"

	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		categoryRequest		true	"Категория"
//	@Success	201			{object}	categoryResponse	"Успешное создание"
//	@Failure	400			{object}	ErrorResponse		"Ошибка валидации"
//	@Failure	409			{object}	ErrorResponse		"Категория уже существует"
//	@Router		/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if err := decodeJSON(r, &body); err != nil {
		c.logger.Warnf("create category: %s", err.Error())
		WriteError(w, err)
		return
	}

	category, err := c.categoryUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Name:        body.Name,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		c.logger.Warnf("create category: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	categoryResponse
//	@Router		/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categoryUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("list categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, toCategoryResponse(&categories[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// updateCategory
//
//	@Summary	Обновление категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"ID категории"
//	@Param		category	body		updateCategoryRequest	true	"Обновляемые поля"
//	@Success	200			{object}	categoryResponse
//	@Failure	404			{object}	ErrorResponse	"Категория не найдена"
//	@Failure	409			{object}	ErrorResponse	"Имя уже занято"
//	@Router		/categories/{id} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateCategoryRequest
	if err := decodeJSON(r, &body); err != nil {
		c.logger.Warnf("update category %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	category, err := c.categoryUsecase.UpdateCategory(r.Context(), id, &usecase.UpdateCategoryReq{
		Name:        body.Name,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		c.logger.Warnf("update category %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// deleteCategory
//
//	@Summary	Удаление категории
//	@Description	Категория с привязанными товарами не удаляется
//	@Tags		categories
//	@Produce	json
//	@Param		id	path	int	true	"ID категории"
//	@Success	204	"Категория удалена"
//	@Failure	404	{object}	ErrorResponse	"Категория не найдена"
//	@Failure	409	{object}	ErrorResponse	"Категория используется товарами"
//	@Router		/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.DeleteCategory(r.Context(), id); err != nil {
		c.logger.Warnf("delete category %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
