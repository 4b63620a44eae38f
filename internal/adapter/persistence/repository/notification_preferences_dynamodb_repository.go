package repository

import (
	"context"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNotificationPreferencesTableName = "notification_preferences"

type notificationPreferencesItem struct {
	UserID       string          `dynamodbav:"user_id"`
	EmailEnabled bool            `dynamodbav:"email_enabled"`
	Types        map[string]bool `dynamodbav:"types,omitempty"`
	UpdatedAt    string          `dynamodbav:"updated_at"`
}

// NotificationPreferencesDynamoRepository stores one preferences document per user.
//
// Table requirements:
//   - PK: user_id (string)
type NotificationPreferencesDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INotificationPreferencesRepository = (*NotificationPreferencesDynamoRepository)(nil)

func NewNotificationPreferencesDynamoRepository(ddb DynamoDBAPI) *NotificationPreferencesDynamoRepository {
	return &NotificationPreferencesDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATION_PREFERENCES_TABLE", defaultNotificationPreferencesTableName),
	}
}

func (r *NotificationPreferencesDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.NotificationPreferences, error) {
	var it notificationPreferencesItem
	key := map[string]types.AttributeValue{"user_id": stringValue(userID)}
	found, err := getItem(ctx, r.ddb, r.tableName, key, &it)
	if err != nil || !found {
		return entities.NotificationPreferences{}, err
	}
	return fromNotificationPreferencesItem(it), nil
}

func (r *NotificationPreferencesDynamoRepository) Upsert(ctx context.Context, p entities.NotificationPreferences) (entities.NotificationPreferences, error) {
	av, err := attributevalue.MarshalMap(toNotificationPreferencesItem(p))
	if err != nil {
		return entities.NotificationPreferences{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.NotificationPreferences{}, err
	}
	return p, nil
}

func toNotificationPreferencesItem(p entities.NotificationPreferences) notificationPreferencesItem {
	it := notificationPreferencesItem{
		UserID:       p.UserID,
		EmailEnabled: p.EmailEnabled,
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
	if len(p.Types) > 0 {
		it.Types = make(map[string]bool, len(p.Types))
		for t, enabled := range p.Types {
			it.Types[string(t)] = enabled
		}
	}
	return it
}

func fromNotificationPreferencesItem(it notificationPreferencesItem) entities.NotificationPreferences {
	p := entities.NotificationPreferences{
		UserID:       it.UserID,
		EmailEnabled: it.EmailEnabled,
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if len(it.Types) > 0 {
		p.Types = make(map[entities.NotificationType]bool, len(it.Types))
		for t, enabled := range it.Types {
			p.Types[entities.NotificationType(t)] = enabled
		}
	}
	return p
}
