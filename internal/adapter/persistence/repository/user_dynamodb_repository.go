package repository

import (
	"context"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID          string `dynamodbav:"id"`
	Email       string `dynamodbav:"email"`
	DisplayName string `dynamodbav:"display_name"`
}

// UserDynamoRepository reads user profiles owned by the auth service.
type UserDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoDBAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getItem(ctx, r.ddb, r.tableName, idKey(id), &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return entities.User{ID: it.ID, Email: it.Email, DisplayName: it.DisplayName}, nil
}
