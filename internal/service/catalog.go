package service

import "github.com/antauren/star-burger/internal/domain"

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) Delete(id int) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(category *domain.ProductCategory) error {
	return s.repo.CreateCategory(category)
}

func (s *CategoryService) List() ([]domain.ProductCategory, error) {
	return s.repo.ListCategories()
}

func (s *CategoryService) Delete(id int) (int64, error) {
	return s.repo.DeleteCategory(id)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(product *domain.Product) error {
	return s.repo.CreateProduct(product)
}

func (s *ProductService) List() ([]domain.Product, error) {
	return s.repo.ListProducts()
}

// ListAvailable returns only products some restaurant currently sells.
func (s *ProductService) ListAvailable() ([]domain.Product, error) {
	return s.repo.ListAvailableProducts()
}

func (s *ProductService) Get(id int) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *ProductService) Update(product *domain.Product) error {
	return s.repo.UpdateProduct(product)
}

func (s *ProductService) Delete(id int) (int64, error) {
	return s.repo.DeleteProduct(id)
}

func (s *ProductService) UpdateImage(id int, imageURL string) error {
	return s.repo.UpdateProductImage(id, imageURL)
}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) SetItem(item *domain.MenuItem) error {
	return s.repo.SetMenuItem(item)
}

func (s *MenuService) ListItems() ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems()
}
