package doctors

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	RedisRepository       contracts.RedisRepository
	NotificationPublisher contracts.NotificationPublisher
	StorageService        contracts.StorageService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	notificationPublisher contracts.NotificationPublisher,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:      doctorMongoRepository,
		RedisRepository:       redisRepository,
		NotificationPublisher: notificationPublisher,
		StorageService:        storageService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// FindAll serves the doctor directory through a redis cache. Cache failures
// fall through to mongo so a degraded redis never takes the listing down.
func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDoctorList)
	if err != nil {
		uc.Log.Warn("failed to read doctor list cache",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyDoctorList),
			zap.Error(err),
		)
	}
	if cached != "" {
		var result []responses.Doctor
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, *buildDoctorResponse(&doctors[i]))
	}

	if encoded, err := json.Marshal(result); err == nil {
		ttl := time.Duration(uc.InternalConfig.App.DoctorCacheTTLInSeconds) * time.Second
		if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyDoctorList, string(encoded), ttl); err != nil {
			uc.Log.Warn("failed to write doctor list cache",
				zap.String(constvars.LoggingRedisKey, constvars.RedisKeyDoctorList),
				zap.Error(err),
			)
		}
	}
	return result, nil
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	doctorID := request.ID
	if doctorID == "" {
		doctorID = utils.GenerateDoctorID()
	}

	doctor := &models.Doctor{
		ID:             doctorID,
		Name:           request.Name,
		Email:          request.Email,
		Phone:          request.Phone,
		Specialization: request.Specialization,
		Fee:            request.Fee,
		Experience:     request.Experience,
		Image:          request.Image,
		IsApproved:     true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.DoctorRepository.Upsert(ctx, doctor); err != nil {
		return nil, err
	}
	uc.invalidateDoctorCache(ctx)
	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) Onboard(ctx context.Context, request *requests.PostConfirmation) error {
	if request.Role != constvars.RoleDoctor {
		uc.Log.Info("post-confirmation for non-doctor role, skipping",
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.String(constvars.LoggingRoleKey, request.Role),
		)
		return nil
	}

	doctor := &models.Doctor{
		ID:             request.UserID,
		Name:           request.Name,
		Email:          request.Email,
		Phone:          request.Phone,
		Specialization: request.Specialization,
		IsApproved:     false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.DoctorRepository.Upsert(ctx, doctor); err != nil {
		return err
	}
	uc.invalidateDoctorCache(ctx)

	payload := &requests.EmailPayload{
		Recipient: request.Email,
		Subject:   constvars.EmailSubjectDoctorOnboarded,
		Body:      fmt.Sprintf(constvars.EmailBodyDoctorOnboardedFmt, request.Name),
	}
	if err := uc.NotificationPublisher.Publish(ctx, payload); err != nil {
		// best effort, onboarding must not fail on a notification problem
		uc.Log.Warn("failed to enqueue onboarding email",
			zap.String(constvars.LoggingRecipientKey, request.Email),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *doctorUsecase) UploadImage(ctx context.Context, doctorID, fileName, contentType string, file io.Reader, size int64) (*responses.DoctorImage, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("content type %q", contentType))
	}
	maxSize := uc.InternalConfig.App.ImageMaxUploadSizeInMB * 1024 * 1024
	if size > maxSize {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("size %d exceeds limit %d", size, maxSize))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	objectName := utils.GenerateImageObjectName(doctorID, filepath.Ext(fileName))
	if err := uc.StorageService.UploadObject(ctx, objectName, contentType, file, size); err != nil {
		return nil, err
	}
	if err := uc.DoctorRepository.SetImage(ctx, doctorID, objectName); err != nil {
		return nil, err
	}
	uc.invalidateDoctorCache(ctx)

	expiry := time.Duration(uc.InternalConfig.App.ImagePresignExpiryInMinutes) * time.Minute
	url, err := uc.StorageService.PresignedURL(ctx, objectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.DoctorImage{
		DoctorID:   doctorID,
		ObjectName: objectName,
		URL:        url,
	}, nil
}

func (uc *doctorUsecase) invalidateDoctorCache(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyDoctorList); err != nil {
		uc.Log.Warn("failed to invalidate doctor list cache",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyDoctorList),
			zap.Error(err),
		)
	}
}

func buildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Fee:            doctor.Fee,
		Experience:     doctor.Experience,
		Image:          doctor.Image,
		IsApproved:     doctor.IsApproved,
		CreatedAt:      doctor.CreatedAt,
	}
}
