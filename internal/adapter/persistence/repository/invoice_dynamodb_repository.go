package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesStatusIndex      = "status-index"
	invoicesLandlordIDIndex  = "landlord_id-index"
)

type invoiceLineItem struct {
	LeaseID     string `dynamodbav:"lease_id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
}

type invoiceItem struct {
	ID         string            `dynamodbav:"id"`
	LandlordID string            `dynamodbav:"landlord_id"`
	Period     string            `dynamodbav:"period"`
	Amount     string            `dynamodbav:"amount"`
	DueDate    string            `dynamodbav:"due_date"`
	Status     string            `dynamodbav:"status"`
	LeaseIDs   []string          `dynamodbav:"lease_ids"`
	Items      []invoiceLineItem `dynamodbav:"items"`
	PaidAt     string            `dynamodbav:"paid_at,omitempty"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: landlord_id-index (PK: landlord_id)
//
// The id is derived from landlord and period, so the conditional put is what
// keeps a period from being billed twice.
type InvoiceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoDBAPI) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, conditionError(err)
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var it invoiceItem
	found, err := getItem(ctx, r.ddb, r.tableName, idKey(id), &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, invoicesStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return decodeItems(raw, fromInvoiceItem)
}

func (r *InvoiceDynamoRepository) ListByLandlordID(ctx context.Context, landlordID string) ([]entities.Invoice, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, invoicesLandlordIDIndex, "landlord_id", landlordID)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw, fromInvoiceItem)
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, to entities.InvoiceStatus, from []entities.InvoiceStatus, at time.Time) (entities.Invoice, error) {
	if len(from) == 0 {
		return entities.Invoice{}, fmt.Errorf("invoice %s: no source status given", id)
	}
	stamp := formatTime(at)
	expr := "SET #status = :to, #updated_at = :at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to": stringValue(string(to)),
		":at": stringValue(stamp),
	}
	if to == entities.InvoiceStatusPaid {
		expr += ", #paid_at = :at"
		names["#paid_at"] = "paid_at"
	}
	placeholders := make([]string, 0, len(from))
	for i, s := range from {
		key := fmt.Sprintf(":from%d", i)
		placeholders = append(placeholders, key)
		values[key] = stringValue(string(s))
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Invoice{}, conditionError(err)
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Items))
	for _, li := range inv.Items {
		lines = append(lines, invoiceLineItem{LeaseID: li.LeaseID, Description: li.Description, Amount: li.Amount.StringFixed(2)})
	}
	return invoiceItem{
		ID:         inv.ID,
		LandlordID: inv.LandlordID,
		Period:     inv.Period,
		Amount:     inv.Amount.StringFixed(2),
		DueDate:    formatTime(inv.DueDate),
		Status:     string(inv.Status),
		LeaseIDs:   inv.LeaseIDs,
		Items:      lines,
		PaidAt:     formatTimePtr(inv.PaidAt),
		CreatedAt:  formatTime(inv.CreatedAt),
		UpdatedAt:  formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.InvoiceItem{LeaseID: li.LeaseID, Description: li.Description, Amount: parseDecimal(li.Amount)})
	}
	return entities.Invoice{
		ID:         it.ID,
		LandlordID: it.LandlordID,
		Period:     it.Period,
		Amount:     parseDecimal(it.Amount),
		DueDate:    parseTime(it.DueDate),
		Status:     entities.InvoiceStatus(it.Status),
		LeaseIDs:   it.LeaseIDs,
		Items:      items,
		PaidAt:     parseTimePtr(it.PaidAt),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
