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

const defaultPropertiesTableName = "properties"

type propertyItem struct {
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository reads and flips property occupancy. The listings
// table is shared with the listing service, so only status and updated_at
// are written and properties are never created here.
type PropertyDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb DynamoDBAPI) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
		now:       time.Now,
	}
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	var it propertyItem
	found, err := getItem(ctx, r.ddb, r.tableName, idKey(id), &it)
	if err != nil || !found {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PropertyStatus) (entities.Property, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     stringValue(string(status)),
			":updated_at": stringValue(formatTime(r.now())),
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionError(err), interfaces.ErrConditionFailed) {
			return entities.Property{}, nil
		}
		return entities.Property{}, err
	}
	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func fromPropertyItem(it propertyItem) entities.Property {
	return entities.Property{
		ID:        it.ID,
		Status:    entities.PropertyStatus(it.Status),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
