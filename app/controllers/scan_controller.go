package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/route-assist/app/responses"
	"github.com/route-assist/internal/ocr"
	"go.uber.org/zap"
)

// maxPhotoBytes caps label photo uploads at 10 MiB.
const maxPhotoBytes = 10 << 20

// ScanController turns an uploaded label photo into an editable address
// suggestion through the external recognition collaborator.
type ScanController struct {
	reader *ocr.LabelReader
	logger *zap.Logger
}

// NewScanController creates the controller.
func NewScanController(reader *ocr.LabelReader, logger *zap.Logger) *ScanController {
	return &ScanController{
		reader: reader,
		logger: logger,
	}
}

// Scan accepts a multipart photo under the "image" field and returns the
// recognized address suggestion. A recognition failure is a user-visible
// retry prompt, never a server error.
func (sc *ScanController) Scan(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_IMAGE",
			Message: "Veuillez joindre une photo de l'étiquette.",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "UNREADABLE_IMAGE",
			Message: "Photo illisible. Veuillez réessayer.",
		})
		return
	}

	text := sc.reader.ReadLabel(c.Request.Context(), data)
	address := ocr.AddressFromText(text)
	if address == "" {
		sc.logger.Warn("Label recognition yielded no address",
			zap.Int("photo_bytes", len(data)))
		c.JSON(http.StatusUnprocessableEntity, responses.ErrorResponse{
			Error:   "RECOGNITION_FAILED",
			Message: "Impossible de lire l'adresse sur la photo. Veuillez réessayer.",
		})
		return
	}

	c.JSON(http.StatusOK, responses.ScanResponse{
		Address: address,
		RawText: text,
	})
}
