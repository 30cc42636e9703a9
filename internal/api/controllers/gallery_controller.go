package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

type GalleryController struct {
	galleryService services.GalleryServiceInterface
}

func NewGalleryController(galleryService services.GalleryServiceInterface) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// UploadImage godoc
// @Summary Upload a trip image
// @Description Store an image under the user's trip gallery
// @Tags Gallery
// @Accept mpfd
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param image formData file true "Image file"
// @Success 201 {object} response_models.PhotoResponse
// @Security BearerAuth
// @Router /trips/{tripId}/images [post]
func (g *GalleryController) UploadImage(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	userID := c.GetString("user_id")
	dst, err := g.galleryService.PrepareUpload(c.Request.Context(), userID, tripID, file.Filename)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	photo, err := g.galleryService.RecordUpload(c.Request.Context(), userID, tripID, filepath.Base(dst), dst)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, photo, "Image uploaded successfully")
}

func (g *GalleryController) ListImages(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	photos, err := g.galleryService.ListImages(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Images fetched successfully")
}
