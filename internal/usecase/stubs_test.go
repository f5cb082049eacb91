package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

// Заглушки репозиториев и инфраструктуры для юнит-тестов usecase-слоя.

type testLogger struct{}

func (testLogger) Debugf(format string, args ...any)            {}
func (testLogger) Infof(format string, args ...any)             {}
func (testLogger) Warnf(format string, args ...any)             {}
func (testLogger) Errorf(err error, format string, args ...any) {}

// fakeTx реализует pgx.Tx только в части Commit/Rollback.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

// fakePool выдаёт одну и ту же fakeTx на каждый BeginTx.
type fakePool struct {
	tx *fakeTx
}

func (p *fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return p.tx, nil
}

type stubProductRepo struct {
	mu        sync.Mutex
	products  map[int64]*domain.Product
	nextID    int64
	infoCalls int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: map[int64]*domain.Product{}, nextID: 1}
}

func (r *stubProductRepo) add(p *domain.Product) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.ID = r.nextID
	cp.InStock = cp.Quantity > 0
	r.nextID++
	r.products[cp.ID] = &cp
	return &cp
}

func (r *stubProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return r.add(product), nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(ctx context.Context, q *ListProductsQuery) ([]domain.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(ctx context.Context, id int64, upd *UpdateProductReq) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
		p.InStock = p.Quantity > 0
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DecrementStock(ctx context.Context, productID int64, qty int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return e.ErrProductNotFound
	}
	if p.Quantity < qty {
		return e.ErrInsufficientStock
	}
	p.Quantity -= qty
	p.InStock = p.Quantity > 0
	return nil
}

func (r *stubProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infoCalls++
	out := make([]ProductInfo, 0, len(ids))
	for _, id := range ids {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		out = append(out, NewProductInfo(p.ID, p.Title, p.Price, "test", p.ImageURL))
	}
	return out, nil
}

type stubCategoryRepo struct {
	mu         sync.Mutex
	categories map[int64]*domain.Category
	inUse      map[int64]bool
	nextID     int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		categories: map[int64]*domain.Category{},
		inUse:      map[int64]bool{},
		nextID:     1,
	}
}

func (r *stubCategoryRepo) add(name string) *domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &domain.Category{ID: r.nextID, Name: name}
	r.nextID++
	r.categories[c.ID] = c
	return c
}

func (r *stubCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, e.ErrCategoryExists
		}
	}
	cp := *category
	cp.ID = r.nextID
	r.nextID++
	r.categories[cp.ID] = &cp
	return &cp, nil
}

func (r *stubCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(ctx context.Context, id int64, upd *UpdateCategoryReq) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return e.ErrCategoryNotFound
	}
	if r.inUse[id] {
		return e.ErrCategoryInUse
	}
	delete(r.categories, id)
	return nil
}

type stubOrderRepo struct {
	mu          sync.Mutex
	orders      map[int64]*domain.Order
	nextID      int64
	createCalls int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[int64]*domain.Order{}, nextID: 1}
}

func (r *stubOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	cp := *order
	cp.ID = r.nextID
	r.nextID++
	for i := range cp.Items {
		cp.Items[i].ID = int64(i + 1)
		cp.Items[i].OrderID = cp.ID
	}
	r.orders[cp.ID] = &cp
	return &cp, nil
}

func (r *stubOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) List(ctx context.Context, page, limit int64) ([]domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) MarkPaid(ctx context.Context, id int64, paymentIntentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	o.PaymentStatus = domain.PaymentPaid
	o.Status = domain.OrderProcessing
	o.PaymentIntentID = &paymentIntentID
	return nil
}

type stubOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (r *stubOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *event
	cp.ID = int64(len(r.events) + 1)
	r.events = append(r.events, &cp)
	return &cp, nil
}

func (r *stubOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (r *stubOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func (r *stubOutboxRepo) RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

type stubCacheRepo struct {
	mu      sync.Mutex
	data    map[int64]ProductInfo
	deleted []int64
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{data: map[int64]ProductInfo{}}
}

func (r *stubCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int64]ProductInfo)
	for _, id := range ids {
		if info, ok := r.data[id]; ok {
			out[id] = info
		}
	}
	return out, nil
}

func (r *stubCacheRepo) SetProducts(ctx context.Context, products []ProductInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.data[p.ID] = p
	}
	return nil
}

func (r *stubCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.data, id)
		r.deleted = append(r.deleted, id)
	}
	return nil
}

type stubImagesInfra struct {
	mu          sync.Mutex
	cleanedKeys []string
	baseURL     string
}

func (s *stubImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	return &UploadImageRes{Key: req.Name, URL: s.baseURL + "/" + req.Name}, nil
}

func (s *stubImagesInfra) UploadImagesBulk(ctx context.Context, req *BulkUploadReq) (*BulkUploadRes, error) {
	res := &BulkUploadRes{}
	for _, f := range req.Files {
		res.Results = append(res.Results, UploadResult{Name: f.Name, OK: true, Key: f.Name})
		res.Succeeded++
	}
	return res, nil
}

func (s *stubImagesInfra) DeleteImage(ctx context.Context, key string) error {
	return nil
}

func (s *stubImagesInfra) CleanupImages(keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanedKeys = append(s.cleanedKeys, keys...)
}

func (s *stubImagesInfra) KeyFromURL(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):], true
	}
	return "", false
}

type stubGateway struct {
	intent *domain.PaymentIntent
	err    error
	calls  int
}

func (g *stubGateway) RetrievePaymentIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.intent, nil
}
