package repository

import (
	"context"
	"encoding/json"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	InvoiceID          string                 `dynamodbav:"invoice_id"`
	LandlordID         string                 `dynamodbav:"landlord_id"`
	Amount             string                 `dynamodbav:"amount"`
	PaymentMethod      string                 `dynamodbav:"payment_method"`
	Reference          string                 `dynamodbav:"reference,omitempty"`
	PaymentDate        string                 `dynamodbav:"payment_date"`
	CreatedAt          string                 `dynamodbav:"created_at"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, conditionError(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, idKey(id), &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, paymentsInvoiceIDIndex, "invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw, fromPaymentItem)
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		LandlordID:         p.LandlordID,
		Amount:             p.Amount.StringFixed(2),
		PaymentMethod:      p.PaymentMethod,
		Reference:          p.Reference,
		PaymentDate:        formatTime(p.PaymentDate),
		CreatedAt:          formatTime(p.CreatedAt),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	// The decoded copy keeps the gateway response queryable from the console.
	if len(p.ProviderPayloadRaw) > 0 {
		var payload map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &payload); err == nil {
			it.ProviderPayload = payload
		}
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:            it.ID,
		InvoiceID:     it.InvoiceID,
		LandlordID:    it.LandlordID,
		Amount:        parseDecimal(it.Amount),
		PaymentMethod: it.PaymentMethod,
		Reference:     it.Reference,
		PaymentDate:   parseTime(it.PaymentDate),
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
