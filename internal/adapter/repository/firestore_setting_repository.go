package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/repository"
	"voltmarket/pkg/errors"
)

type firestoreSettingRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingRepository(client *firestore.Client) repository.SettingRepository {
	return &firestoreSettingRepository{
		client: client,
	}
}

func (r *firestoreSettingRepository) GetAll(ctx context.Context, filter entity.SettingFilter) ([]entity.Setting, error) {
	query := r.client.Collection("settings").Query
	if filter.IsActive != nil {
		query = query.Where("isActive", "==", *filter.IsActive)
	}
	if filter.IsDeleted != nil {
		query = query.Where("isDeleted", "==", *filter.IsDeleted)
	}

	iter := query.Documents(ctx)
	var settings []entity.Setting

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var setting entity.Setting
		if err := doc.DataTo(&setting); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	return settings, nil
}

func (r *firestoreSettingRepository) Get(ctx context.Context, key entity.SettingKey) (*entity.Setting, error) {
	doc, err := r.client.Collection("settings").Doc(string(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Setting", err)
		}
		return nil, err
	}

	var setting entity.Setting
	if err := doc.DataTo(&setting); err != nil {
		return nil, err
	}

	return &setting, nil
}

func (r *firestoreSettingRepository) Set(ctx context.Context, setting *entity.Setting) error {
	_, err := r.client.Collection("settings").Doc(string(setting.Key)).Set(ctx, setting)
	return err
}
