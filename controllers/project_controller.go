package controllers

import (
	"context"
	"strconv"

	"studio/dto"
	"studio/models"
	"studio/response"
	"studio/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProjectController struct {
	service *services.ProjectService
	cld     *cloudinary.Cloudinary
}

func NewProjectController(db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) *ProjectController {
	packageService := services.NewPackageService(db, redisCli)
	return &ProjectController{
		service: services.NewProjectService(db, packageService),
		cld:     cld,
	}
}

func (ctrl *ProjectController) Create(c *gin.Context) {
	var req dto.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	project, err := ctrl.service.Create(&req, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

func (ctrl *ProjectController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	project, err := ctrl.service.Update(id, &req, getActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

func (ctrl *ProjectController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := ctrl.service.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

func (ctrl *ProjectController) List(c *gin.Context) {
	var filter dto.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}

	projects, total, err := ctrl.service.List(&filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	response.SuccessWithPagination(c, projects, filter.Page, limit, int(total))
}

// Delete hủy dự án, không xóa bản ghi
func (ctrl *ProjectController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": id, "status": "cancelled"})
}

func (ctrl *ProjectController) AddMilestone(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	project, err := ctrl.service.AddMilestone(id, req.Milestone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

func (ctrl *ProjectController) UpdateProgress(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	project, err := ctrl.service.UpdateProgress(id, req.Progress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

func (ctrl *ProjectController) AddPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	project, err := ctrl.service.AddPayment(id, req.PaymentItem)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// UploadFile đẩy file lên Cloudinary rồi gắn URL vào dự án
func (ctrl *ProjectController) UploadFile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := ctrl.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "projects"})
	if err != nil {
		response.ServerError(c)
		return
	}

	project, err := ctrl.service.AddFile(id, models.ProjectFile{
		Type: c.DefaultPostForm("type", "image"),
		URL:  resp.SecureURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

func (ctrl *ProjectController) GetByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		response.BadRequest(c, "Thiếu tham số status")
		return
	}

	projects, err := ctrl.service.GetByStatus(status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}

func (ctrl *ProjectController) GetUpcoming(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	projects, err := ctrl.service.GetUpcoming(days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}
