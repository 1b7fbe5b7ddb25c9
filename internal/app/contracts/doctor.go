package contracts

import (
	"context"
	"io"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	Upsert(ctx context.Context, doctor *models.Doctor) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	SetImage(ctx context.Context, doctorID, objectName string) error
}

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	// Onboard handles the identity-provider post-confirmation hook. Non-doctor
	// confirmations are a no-op. The notification email is best effort.
	Onboard(ctx context.Context, request *requests.PostConfirmation) error
	UploadImage(ctx context.Context, doctorID, fileName, contentType string, file io.Reader, size int64) (*responses.DoctorImage, error)
}
