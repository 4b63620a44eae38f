package repository

import (
	"context"
	"errors"
	"time"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-index"

	// BatchWriteItem accepts at most 25 requests.
	maxBatchWrite = 25
)

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Type      string `dynamodbav:"type"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Link      string `dynamodbav:"link,omitempty"`
	Priority  string `dynamodbav:"priority"`
	Read      bool   `dynamodbav:"read"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists in-app notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type NotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoDBAPI) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, conditionError(err)
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, notificationsUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw, fromNotificationItem)
}

// MarkRead flips the read flag when the notification belongs to userID.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :user_id"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": stringValue(userID),
			":read":    &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
			"#read":    "read",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionError(err), interfaces.ErrConditionFailed) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// ListCreatedBefore scans for notifications created before cutoff and stops
// once limit items were collected.
func (r *NotificationDynamoRepository) ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]entities.Notification, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		FilterExpression:     aws.String("#created_at < :cutoff"),
		ProjectionExpression: aws.String("#id, #created_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": stringValue(formatTime(cutoff)),
		},
	})

	var raw []map[string]types.AttributeValue
	for p.HasMorePages() && len(raw) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		raw = append(raw, page.Items...)
	}
	if len(raw) > limit {
		raw = raw[:limit]
	}
	return decodeItems(raw, fromNotificationItem)
}

func (r *NotificationDynamoRepository) DeleteBatch(ctx context.Context, ids []string) error {
	for start := 0; start < len(ids); start += maxBatchWrite {
		end := min(start+maxBatchWrite, len(ids))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, id := range ids[start:end] {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: idKey(id)}})
		}

		pending := map[string][]types.WriteRequest{r.tableName: reqs}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == 5 {
				return errors.New("notifications: unprocessed deletes after retries")
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
			if len(pending) > 0 {
				time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
			}
		}
	}
	return nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Priority:  string(n.Priority),
		Read:      n.Read,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      entities.NotificationType(it.Type),
		Title:     it.Title,
		Message:   it.Message,
		Link:      it.Link,
		Priority:  entities.NotificationPriority(it.Priority),
		Read:      it.Read,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
