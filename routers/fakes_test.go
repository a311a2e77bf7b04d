package routers

import (
	"context"
	"errors"
	"sync"

	"ShopAdmin/apperr"
	"ShopAdmin/models"
	"ShopAdmin/repository"
	"golang.org/x/crypto/bcrypt"
)

// fakeProductStore 以記憶體模擬商品資料表
type fakeProductStore struct {
	mu       sync.Mutex
	nextID   uint
	products map[uint]models.Product
	order    []uint
	err      error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{nextID: 1, products: make(map[uint]models.Product)}
}

func (s *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	products := []models.Product{}
	for _, id := range s.order {
		if product, ok := s.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *fakeProductStore) Create(ctx context.Context, product models.Product) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	product.ProductID = s.nextID
	s.nextID++
	s.products[product.ProductID] = product
	s.order = append(s.order, product.ProductID)
	return product.ProductID, nil
}

func (s *fakeProductStore) Update(ctx context.Context, productID uint, patch models.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if patch.IsEmpty() {
		return apperr.Validation("No valid fields to update")
	}

	product, ok := s.products[productID]
	if !ok {
		return apperr.NotFound("Product not found")
	}

	derived := false
	if patch.Quantity != nil {
		var status string
		if status, derived = repository.DeriveStatus(product.Status, *patch.Quantity); derived {
			product.Status = status
		}
		product.Quantity = *patch.Quantity
	}
	if patch.Status != nil && !derived {
		product.Status = *patch.Status
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}

	s.products[productID] = product
	return nil
}

func (s *fakeProductStore) Delete(ctx context.Context, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.products[productID]; !ok {
		return apperr.NotFound("Product not found")
	}
	delete(s.products, productID)
	return nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	hashes map[string]string
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{hashes: make(map[string]string)}
}

func (s *fakeAdminStore) Register(ctx context.Context, name, email, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hashes[email]; ok {
		return "", apperr.Conflict("Admin with email %s already exists", email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}
	s.hashes[email] = string(hash)
	return email, nil
}

func (s *fakeAdminStore) Authenticate(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.hashes[email]
	if !ok {
		return apperr.NotFound("Admin not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return apperr.InvalidCredentials("Invalid password")
	}
	return nil
}

type fakeOrderStore struct {
	mu       sync.Mutex
	views    []models.OrderView
	statuses map[uint]string
}

func newFakeOrderStore(views ...models.OrderView) *fakeOrderStore {
	s := &fakeOrderStore{views: views, statuses: make(map[uint]string)}
	for _, view := range views {
		s.statuses[view.OrderID] = view.OrderStatus
	}
	return s
}

func (s *fakeOrderStore) List(ctx context.Context) ([]models.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]models.OrderView, 0, len(s.views))
	for _, view := range s.views {
		view.OrderStatus = s.statuses[view.OrderID]
		views = append(views, view)
	}
	return views, nil
}

func (s *fakeOrderStore) UpdateShippingStatus(ctx context.Context, orderID uint, status string) error {
	if !repository.IsShippingStatus(status) {
		return apperr.Validation("Invalid status. Allowed: 'shipped', 'delivered'")
	}
	return s.UpdateStatus(ctx, orderID, status)
}

func (s *fakeOrderStore) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.statuses[orderID]; !ok {
		return apperr.NotFound("Order not found")
	}
	s.statuses[orderID] = status
	return nil
}

// fakeProductCache 記錄快取的讀寫次數，世代規則與Redis實作相同
type fakeProductCache struct {
	mu          sync.Mutex
	products    []models.Product
	hit         bool
	generation  int64
	sets        int
	invalidates int
	getErr      error
}

func (c *fakeProductCache) Get(ctx context.Context) ([]models.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.products, c.hit, nil
}

func (c *fakeProductCache) Generation(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation, nil
}

func (c *fakeProductCache) Set(ctx context.Context, generation int64, products []models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return nil
	}
	c.products = products
	c.hit = true
	c.sets++
	return nil
}

func (c *fakeProductCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.hit = false
	c.generation++
	c.invalidates++
	return nil
}

// interleavingProductStore 在第一次List讀取完成後、回傳前執行afterList
type interleavingProductStore struct {
	*fakeProductStore
	once      sync.Once
	afterList func()
}

func (s *interleavingProductStore) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.fakeProductStore.List(ctx)
	s.once.Do(s.afterList)
	return products, err
}

var errConnectionRefused = errors.New("dial tcp 127.0.0.1:4000: connect: connection refused")
