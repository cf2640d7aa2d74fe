package services

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"hotel-api/config"
	"hotel-api/errors"
)

// UploadRoomImage đẩy file ảnh lên Cloudinary và trả về secure URL
func UploadRoomImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if config.Cloudinary == nil {
		return "", errors.NewAppError(errors.ErrCodeValidation,
			"Upload ảnh chưa được cấu hình", nil)
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidFormat, "Không đọc được file ảnh", err)
	}
	defer src.Close()

	result, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: "rooms",
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Upload ảnh thất bại", err)
	}

	return result.SecureURL, nil
}
