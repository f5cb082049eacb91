package minio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/green-haven/nursery-backend/internal/cfg"
	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/internal/infrastructure"
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет загрузкой и очисткой изображений в MinIO.
type MinioInfrastructure struct {
	minioRepo         usecase.ImageRepository
	cfg               *cfg.MinIOCfg
	logger            logger.Logger
	shutdownCtx       context.Context
	wg                sync.WaitGroup
	uploadImagesLimit int
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:         minioRepo,
		cfg:               cfg,
		logger:            logger,
		shutdownCtx:       shutdownCtx,
		wg:                sync.WaitGroup{},
		uploadImagesLimit: cfg.UploadImagesLimit,
	}
}

// UploadImage загружает одно изображение в MinIO и возвращает публичный URL
// вместе со ссылкой на удаление.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (*usecase.UploadImageRes, error) {
	const op = "MinioInfrastructure.UploadImage"

	key, err := m.uploadOne(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &usecase.UploadImageRes{
		Key:       key,
		URL:       m.publicURL(key),
		DeleteURL: m.deleteURL(key),
	}, nil
}

// UploadImagesBulk загружает изображения параллельно с ограничением одновременных операций.
// Ошибка одного файла не прерывает остальные: каждый файл получает свой результат.
func (m *MinioInfrastructure) UploadImagesBulk(ctx context.Context, req *usecase.BulkUploadReq) (*usecase.BulkUploadRes, error) {
	sem := make(chan struct{}, m.uploadImagesLimit)
	results := make([]usecase.UploadResult, len(req.Files))

	var uploadWg sync.WaitGroup
	for i, file := range req.Files {
		i, file := i, file
		uploadWg.Add(1)
		go func() {
			defer uploadWg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				results[i] = usecase.UploadResult{Name: file.Name, OK: false, Error: err.Error()}
				return
			}

			key, err := m.uploadOne(ctx, &file)
			if err != nil {
				results[i] = usecase.UploadResult{Name: file.Name, OK: false, Error: err.Error()}
				return
			}

			results[i] = usecase.UploadResult{
				Name:      file.Name,
				OK:        true,
				Key:       key,
				URL:       m.publicURL(key),
				DeleteURL: m.deleteURL(key),
			}
		}()
	}
	uploadWg.Wait()

	res := &usecase.BulkUploadRes{Results: results}
	for _, r := range results {
		if r.OK {
			res.Succeeded++
		} else {
			res.Failed++
		}
	}

	return res, nil
}

// DeleteImage удаляет объект из MinIO по ключу.
func (m *MinioInfrastructure) DeleteImage(ctx context.Context, key string) error {
	const op = "MinioInfrastructure.DeleteImage"

	if err := m.minioRepo.Delete(ctx, key); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// KeyFromURL возвращает ключ объекта, если URL указывает на наш бакет.
func (m *MinioInfrastructure) KeyFromURL(url string) (string, bool) {
	prefix := strings.TrimRight(m.cfg.PublicBaseURL, "/") + "/" + m.cfg.BucketName + "/"
	key, ok := strings.CutPrefix(url, prefix)
	if !ok || key == "" {
		return "", false
	}

	return key, true
}

// uploadOne валидирует MIME-тип, формирует ключ объекта и выполняет загрузку.
func (m *MinioInfrastructure) uploadOne(ctx context.Context, file *usecase.UploadImageReq) (string, error) {
	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(file.MimeType)
	if err != nil {
		return "", fmt.Errorf("invalid mime type %s for %s: %w", file.MimeType, file.Name, err)
	}

	objKey := fmt.Sprintf("%s-%s.%s", sanitizeName(file.Name), imageID, ext)
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, file.Data, &file.Size, &file.MimeType)

	key, err := m.minioRepo.Upload(ctx, newImage)
	if err != nil {
		return "", fmt.Errorf("upload %s failed: %w", file.Name, err)
	}

	return key, nil
}

func (m *MinioInfrastructure) publicURL(key string) string {
	return strings.TrimRight(m.cfg.PublicBaseURL, "/") + "/" + m.cfg.BucketName + "/" + key
}

func (m *MinioInfrastructure) deleteURL(key string) string {
	return "/api/v1/images/" + key
}

// sanitizeName приводит имя файла к безопасному виду для ключа объекта:
// отбрасывает путь и расширение, заменяет пробелы и слэши.
func sanitizeName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "/", "-")
	if base == "" || base == "." {
		return "image"
	}

	return base
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done() // сигнализируем завершение компенсации
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	// Создаём контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		backoff := time.Second
		for attempt := 0; attempt < 3; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break // Успешно удалено
			}

			// Проверяем, не отменён ли контекст
			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < 2 {
				// Добавляем jitter для распределения нагрузки
				jitter := time.Duration(time.Now().UnixNano() % int64(time.Second))
				sleepTime := backoff + jitter

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
				backoff *= 2
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
