package controllers

import (
	"studio/dto"
	"studio/response"
	"studio/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PartnerController struct {
	service *services.PartnerService
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{service: services.NewPartnerService(db)}
}

func (ctrl *PartnerController) Create(c *gin.Context) {
	var req dto.PartnerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	partner, err := ctrl.service.Create(&req, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, partner)
}

func (ctrl *PartnerController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PartnerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	partner, err := ctrl.service.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, partner)
}

func (ctrl *PartnerController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	partner, err := ctrl.service.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, partner)
}

func (ctrl *PartnerController) List(c *gin.Context) {
	var filter dto.PartnerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}

	partners, total, err := ctrl.service.List(&filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	response.SuccessWithPagination(c, partners, filter.Page, limit, int(total))
}

func (ctrl *PartnerController) Delete(c *gin.Context) {
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

func (ctrl *PartnerController) GetByType(c *gin.Context) {
	partnerType := c.Query("type")
	if partnerType == "" {
		response.BadRequest(c, "Thiếu tham số type")
		return
	}

	partners, err := ctrl.service.GetByType(partnerType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, partners)
}

// UpdateStatistics ghi nhận một dự án vừa dùng đối tác này
func (ctrl *PartnerController) UpdateStatistics(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PartnerStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	partner, err := ctrl.service.UpdateStatistics(id, req.ProjectCost)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, partner)
}

// UpdateRating cập nhật đánh giá trung bình của đối tác
func (ctrl *PartnerController) UpdateRating(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PartnerRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	partner, err := ctrl.service.UpdateRating(id, req.Rating)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, partner)
}
