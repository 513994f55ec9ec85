package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio/dto"
	apperrors "studio/errors"
	"studio/models"
	"studio/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const popularPackagesCacheKey = "popular_packages"

type PackageService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewPackageService(db *gorm.DB, redisCli *redis.Client) *PackageService {
	return &PackageService{db: db, redis: redisCli}
}

// Create tạo gói chụp mới, mã PKG sinh tự động
func (s *PackageService) Create(req *dto.PackageCreateRequest, createdBy *uint) (*models.Package, error) {
	if err := validator.ValidatePackage(req); err != nil {
		return nil, err
	}

	packageID, err := NextPackageID(s.db)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi sinh mã gói", err)
	}

	pkg := models.Package{
		PackageID:   packageID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Includes:    req.Includes,
		IsActive:    true,
		Description: req.Description,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
	}

	if req.Details != nil {
		pkg.Details = *req.Details
	}

	if err := s.db.Create(&pkg).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo gói chụp", err)
	}

	s.invalidatePopularCache()

	return &pkg, nil
}

// Update cập nhật gói chụp theo patch
func (s *PackageService) Update(id uint, req *dto.PackageUpdateRequest) (*models.Package, error) {
	if err := validator.ValidatePackageUpdate(req); err != nil {
		return nil, err
	}

	pkg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Category != nil {
		pkg.Category = *req.Category
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Details != nil {
		pkg.Details = *req.Details
	}
	if req.Includes != nil {
		pkg.Includes = req.Includes
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Notes != nil {
		pkg.Notes = *req.Notes
	}

	if err := s.db.Save(pkg).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật gói chụp", err)
	}

	s.invalidatePopularCache()

	return pkg, nil
}

// GetByID lấy gói theo ID
func (s *PackageService) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	if err := s.db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Không tìm thấy gói chụp", apperrors.ErrPackageNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn gói chụp", err)
	}
	return &pkg, nil
}

// List lấy danh sách gói với filter
func (s *PackageService) List(filter *dto.PackageFilter) ([]models.Package, int64, error) {
	query := s.db.Model(&models.Package{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+strings.TrimSpace(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi đếm gói chụp", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var packages []models.Package
	if err := query.Order("created_at DESC").Offset(filter.Page * limit).Limit(limit).Find(&packages).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn danh sách gói", err)
	}

	return packages, total, nil
}

// Delete xóa mềm gói chụp
func (s *PackageService) Delete(id uint) error {
	pkg, err := s.GetByID(id)
	if err != nil {
		return err
	}

	pkg.IsActive = false
	if err := s.db.Save(pkg).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa gói chụp", err)
	}

	s.invalidatePopularCache()

	return nil
}

// GetByCategory lấy gói đang hoạt động theo danh mục
func (s *PackageService) GetByCategory(category string) ([]models.Package, error) {
	var packages []models.Package
	if err := s.db.Where("category = ? AND is_active = ?", category, true).Find(&packages).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn gói theo danh mục", err)
	}
	return packages, nil
}

// GetPopular lấy danh sách gói phổ biến, ưu tiên đọc từ cache Redis
func (s *PackageService) GetPopular(ctx context.Context, limit int) ([]models.Package, error) {
	if limit <= 0 {
		limit = 10
	}

	var packages []models.Package
	if s.redis != nil {
		if err := GetFromRedis(ctx, s.redis, popularPackagesCacheKey, &packages); err == nil && len(packages) > 0 {
			if len(packages) > limit {
				packages = packages[:limit]
			}
			return packages, nil
		}
	}

	if err := s.db.Where("is_active = ?", true).
		Order("popularity_score DESC, created_at DESC").
		Limit(limit).Find(&packages).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn gói phổ biến", err)
	}

	if s.redis != nil {
		_ = SetToRedis(ctx, s.redis, popularPackagesCacheKey, packages, 30*time.Minute)
	}

	return packages, nil
}

// RefreshPopularCache nạp lại cache gói phổ biến
func (s *PackageService) RefreshPopularCache(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}

	var packages []models.Package
	if err := s.db.Where("is_active = ?", true).
		Order("popularity_score DESC, created_at DESC").
		Limit(10).Find(&packages).Error; err != nil {
		return err
	}

	return SetToRedis(ctx, s.redis, popularPackagesCacheKey, packages, 30*time.Minute)
}

// IncrementPopularity tăng điểm phổ biến khi gói được chọn
func (s *PackageService) IncrementPopularity(id uint) (*models.Package, error) {
	pkg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(pkg).Update("popularity_score", gorm.Expr("popularity_score + 1")).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tăng điểm phổ biến", err)
	}

	pkg.PopularityScore++
	s.invalidatePopularCache()

	return pkg, nil
}

func (s *PackageService) invalidatePopularCache() {
	if s.redis != nil {
		_ = DeleteFromRedis(context.Background(), s.redis, popularPackagesCacheKey)
	}
}

// PackageServiceAdapter bọc PackageService cho cron job làm mới cache
type PackageServiceAdapter struct {
	service *PackageService
}

func NewPackageServiceAdapter(service *PackageService) *PackageServiceAdapter {
	return &PackageServiceAdapter{service: service}
}

func (a *PackageServiceAdapter) RefreshPopularCache() error {
	return a.service.RefreshPopularCache(context.Background())
}

// Từ khóa nhận diện danh mục trong câu truy vấn tự do
var categoryKeywords = map[string][]string{
	"wedding":    {"cuoi", "wedding", "dam cuoi", "pre-wedding", "prewedding"},
	"portrait":   {"chan dung", "portrait", "profile", "ca nhan"},
	"family":     {"gia dinh", "family"},
	"couple":     {"couple", "cap doi", "doi"},
	"event":      {"su kien", "event", "hoi nghi"},
	"commercial": {"quang cao", "commercial", "san pham", "lookbook"},
}

// normalizeQuery chuẩn hóa câu truy vấn: bỏ dấu, viết thường
func normalizeQuery(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

// parsePackageCategory tách danh mục gói từ câu truy vấn tự do
func parsePackageCategory(query string) string {
	normalized := normalizeQuery(query)

	for category, keywords := range categoryKeywords {
		matcher := closestmatch.New(keywords, []int{2, 3})
		match := matcher.Closest(normalized)
		if match != "" && strings.Contains(normalized, match) {
			return category
		}
	}

	return ""
}

// nameSimilarity tính độ tương đồng giữa câu truy vấn và tên gói
func nameSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Search tìm gói theo câu truy vấn tự do: nhận diện danh mục từ
// từ khóa tiếng Việt, xếp hạng kết quả theo độ giống tên gói.
func (s *PackageService) Search(query string) (*dto.PackageSearchResult, error) {
	category := parsePackageCategory(query)

	dbQuery := s.db.Where("is_active = ?", true)
	if category != "" {
		dbQuery = dbQuery.Where("category = ?", category)
	}

	var packages []models.Package
	if err := dbQuery.Find(&packages).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tìm kiếm gói", err)
	}

	normalized := normalizeQuery(query)
	if category == "" && normalized != "" {
		var matched []models.Package
		for _, pkg := range packages {
			name := normalizeQuery(pkg.Name)
			if strings.Contains(name, normalized) || nameSimilarity(normalized, name) >= 0.5 {
				matched = append(matched, pkg)
			}
		}
		packages = matched
	}

	return &dto.PackageSearchResult{
		Query:    query,
		Category: category,
		Items:    packages,
		Total:    len(packages),
	}, nil
}
