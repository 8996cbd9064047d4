package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"blogql-be/internal/service"
)

type QRCodeController struct {
	postService service.PostService
	frontendURL string
}

func NewQRCodeController(postService service.PostService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		postService: postService,
		frontendURL: frontendURL,
	}
}

// GeneratePostQRCode handles GET /api/v1/posts/:id/qrcode - renders a QR code
// linking to a published post. Drafts and unknown IDs both come back as 404 so
// the endpoint leaks nothing about unpublished content.
func (qc *QRCodeController) GeneratePostQRCode(c *gin.Context) {
	postID := c.Param("id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Post ID is required",
		})
		return
	}

	// Anonymous lookup: only published posts are visible
	post, err := qc.postService.GetByID(c.Request.Context(), nil, postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to look up post",
		})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Post not found",
		})
		return
	}

	shareURL := qc.frontendURL + "/posts/" + post.ID

	// Generate QR code (256x256 pixels, medium error recovery)
	qrCode, err := qrcode.New(shareURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
