package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/repository"
	"voltmarket/pkg/errors"
)

type firestoreAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreAccountRepository(client *firestore.Client) repository.AccountRepository {
	return &firestoreAccountRepository{
		client: client,
	}
}

func (r *firestoreAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	_, err := r.client.Collection("users").Doc(account.ID).Set(ctx, account)
	return err
}

func (r *firestoreAccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Account", err)
		}
		return nil, err
	}

	var account entity.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *firestoreAccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Account", err)
		}
		return nil, err
	}

	var account entity.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *firestoreAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	account.UpdatedAt = time.Now()
	_, err := r.client.Collection("users").Doc(account.ID).Set(ctx, account)
	return err
}

// UpdateFields merges a partial update into the document without touching
// fields outside the map.
func (r *firestoreAccountRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()
	_, err := r.client.Collection("users").Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *firestoreAccountRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("users").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreAccountRepository) FindByField(ctx context.Context, field string, value interface{}, limit, offset int) ([]*entity.Account, int64, error) {
	query := r.client.Collection("users").Where(field, "==", value)
	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreAccountRepository) FindBusinessesByStatus(ctx context.Context, approvalStatus entity.ApprovalStatus, limit, offset int) ([]*entity.Account, int64, error) {
	query := r.client.Collection("users").
		Where("accountType", "==", string(entity.AccountTypeBusiness)).
		Where("businessInfo.status", "==", string(approvalStatus))
	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreAccountRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Account, int64, error) {
	total, err := r.count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var accounts []*entity.Account

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var account entity.Account
		if err := doc.DataTo(&account); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, &account)
	}

	return accounts, total, nil
}

// count runs a server-side aggregation so list totals never read the full
// result set.
func (r *firestoreAccountRepository) count(ctx context.Context, query firestore.Query) (int64, error) {
	results, err := query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}

	value, ok := results["total"].(*firestorepb.Value)
	if !ok {
		return 0, errors.Internal("Unexpected count aggregation result", nil)
	}

	return value.GetIntegerValue(), nil
}
