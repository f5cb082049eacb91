package http

import (
	"net/http"

	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Добавляет новый товар в каталог
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		createProductRequest	true	"Товар"
//	@Success		201		{object}	productResponse			"Успешное создание"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Категория не найдена"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(body.Price)
	if err != nil {
		p.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Title:       body.Title,
		Description: body.Description,
		Price:       price,
		Quantity:    body.Quantity,
		Rating:      body.Rating,
		ImageURL:    body.ImageURL,
		CategoryID:  body.CategoryID,
	})
	if err != nil {
		p.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int				true	"ID товара"
//	@Success	200	{object}	productResponse	"Товар"
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("get product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// listProducts
//
//	@Summary	Листинг каталога
//	@Tags		products
//	@Produce	json
//	@Param		page		query		int		false	"Номер страницы"
//	@Param		limit		query		int		false	"Размер страницы"
//	@Param		category	query		int		false	"Фильтр по категории"
//	@Param		search		query		string	false	"Поиск по названию и описанию"
//	@Param		sortBy		query		string	false	"price | title | rating | created_at"
//	@Param		sortOrder	query		string	false	"asc | desc"
//	@Success	200			{object}	productListResponse
//	@Failure	400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q, err := parseListProductsQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.ListProducts(r.Context(), q)
	if err != nil {
		p.logger.Warnf("list products: %s", err.Error())
		WriteError(w, err)
		return
	}

	products := make([]productResponse, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, toProductResponse(&res.Products[i]))
	}

	WriteSuccess(w, http.StatusOK, productListResponse{
		Products: products,
		Meta:     toPageMetaResponse(res.Meta),
	})
}

// updateProduct
//
//	@Summary	Обновление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID товара"
//	@Param		product	body		updateProductRequest	true	"Обновляемые поля"
//	@Success	200		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	404		{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateProductRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("update product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	req := &usecase.UpdateProductReq{
		Title:       body.Title,
		Description: body.Description,
		Quantity:    body.Quantity,
		Rating:      body.Rating,
		ImageURL:    body.ImageURL,
		CategoryID:  body.CategoryID,
	}
	if body.Price != nil {
		price, err := parsePriceToCents(*body.Price)
		if err != nil {
			p.logger.Warnf("update product %d: %s", id, err.Error())
			WriteError(w, err)
			return
		}
		req.Price = &price
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), id, req)
	if err != nil {
		p.logger.Warnf("update product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path	int	true	"ID товара"
//	@Success	204	"Товар удалён"
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("delete product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListProductsQuery(r *http.Request) (*usecase.ListProductsQuery, error) {
	page, err := queryInt64(r, "page", 1)
	if err != nil {
		return nil, err
	}

	limit, err := queryInt64(r, "limit", 0)
	if err != nil {
		return nil, err
	}

	q := &usecase.ListProductsQuery{
		Page:      page,
		Limit:     limit,
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		categoryID, err := queryInt64(r, "category", 0)
		if err != nil {
			return nil, err
		}
		q.CategoryID = &categoryID
	}

	return q, nil
}
