package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

type ImageHandler struct {
	imageUsecase      usecase.ImageUC
	uploadImagesLimit int
	logger            logger.Logger
}

func NewImageHandler(imageUsecase usecase.ImageUC, uploadImagesLimit int, logger logger.Logger) *ImageHandler {
	return &ImageHandler{
		imageUsecase:      imageUsecase,
		uploadImagesLimit: uploadImagesLimit,
		logger:            logger,
	}
}

// uploadImage
//
//	@Summary	Загрузка изображения
//	@Tags		images
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		image	formData	file	true	"Файл изображения (jpeg, png, webp)"
//	@Success	201		{object}	uploadImageResponse	"URL и ссылка на удаление"
//	@Failure	400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router		/images/upload [post]
func (i *ImageHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 16 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		i.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["image"], 1)
	if err != nil {
		i.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := i.imageUsecase.Upload(r.Context(), &images[0])
	if err != nil {
		i.logger.Warnf("upload image %s: %s", images[0].Name, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toUploadImageResponse(res))
}

// uploadImagesBulk
//
//	@Summary		Пакетная загрузка изображений
//	@Description	Каждый файл обрабатывается независимо: часть файлов может
//	@Description	загрузиться, часть завершиться ошибкой. Ответ содержит статус
//	@Description	каждого файла.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			images	formData	file	true	"Файлы изображений"
//	@Success		200		{object}	bulkUploadResponse	"Постатусный отчёт"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/images/bulk [post]
func (i *ImageHandler) uploadImagesBulk(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		i.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"], i.uploadImagesLimit)
	if err != nil {
		i.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := i.imageUsecase.UploadBulk(r.Context(), &usecase.BulkUploadReq{Files: images})
	if err != nil {
		i.logger.Warnf("bulk upload: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toBulkUploadResponse(res))
}

// deleteImage
//
//	@Summary	Удаление изображения
//	@Tags		images
//	@Produce	json
//	@Param		key	path	string	true	"Ключ объекта"
//	@Success	204	"Изображение удалено"
//	@Failure	404	{object}	ErrorResponse	"Изображение не найдено"
//	@Router		/images/{key} [delete]
func (i *ImageHandler) deleteImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := i.imageUsecase.Delete(r.Context(), key); err != nil {
		i.logger.Warnf("delete image %s: %s", key, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
