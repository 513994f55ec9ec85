package controllers

import (
	"strconv"

	"studio/dto"
	"studio/response"
	"studio/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type PackageController struct {
	service *services.PackageService
}

func NewPackageController(db *gorm.DB, redisCli *redis.Client) *PackageController {
	return &PackageController{service: services.NewPackageService(db, redisCli)}
}

func (ctrl *PackageController) Create(c *gin.Context) {
	var req dto.PackageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	pkg, err := ctrl.service.Create(&req, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pkg)
}

func (ctrl *PackageController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PackageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	pkg, err := ctrl.service.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pkg)
}

func (ctrl *PackageController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pkg, err := ctrl.service.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pkg)
}

func (ctrl *PackageController) List(c *gin.Context) {
	var filter dto.PackageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}

	packages, total, err := ctrl.service.List(&filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	response.SuccessWithPagination(c, packages, filter.Page, limit, int(total))
}

func (ctrl *PackageController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": id, "is_active": false})
}

func (ctrl *PackageController) GetByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		response.BadRequest(c, "Thiếu tham số category")
		return
	}

	packages, err := ctrl.service.GetByCategory(category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, packages)
}

// GetPopular trả về các gói phổ biến nhất, ưu tiên lấy từ cache
func (ctrl *PackageController) GetPopular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	packages, err := ctrl.service.GetPopular(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, packages)
}

// Search tìm gói theo câu truy vấn tự do, ví dụ "chụp cưới ngoại cảnh"
func (ctrl *PackageController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số q")
		return
	}

	result, err := ctrl.service.Search(query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
