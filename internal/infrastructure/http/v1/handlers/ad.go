package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adboard/internal/domain/ad"
	"adboard/internal/infrastructure/http/v1/dto"
)

// AdHandler serves the /ad resource, including image uploads.
type AdHandler struct {
	*ResourceHandler[*ad.Ad, dto.CreateAdRequest, dto.PatchAdRequest, dto.AdResponse]
	service *ad.Service
	toDTO   func(*ad.Ad) dto.AdResponse
}

// NewAdHandler creates the ad handler. resolveURL turns a stored image
// path into its public URL.
func NewAdHandler(service *ad.Service, pageSize int, resolveURL func(string) string) *AdHandler {
	toDTO := func(a *ad.Ad) dto.AdResponse {
		return dto.FromAd(a, resolveURL)
	}
	return &AdHandler{
		ResourceHandler: NewResourceHandler[*ad.Ad, dto.CreateAdRequest, dto.PatchAdRequest](
			ResourceHandlerConfig[*ad.Ad, dto.AdResponse]{
				Service:    service,
				ToDTO:      toDTO,
				EntityName: "ad",
				PageSize:   pageSize,
			},
		),
		service: service,
		toDTO:   toDTO,
	}
}

// UploadImage handles POST and PATCH /:id/upload_image/. The image is
// sent as the multipart form field "image"; a request without a file
// leaves the stored image untouched.
func (h *AdHandler) UploadImage(c *gin.Context) {
	id, err := idParam(c, "ad")
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Requests without a file (or without a multipart body at all)
	// fall through to the no-op path.
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}

	updated, err := h.service.UploadImage(c.Request.Context(), id, file)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, h.toDTO(updated))
}
