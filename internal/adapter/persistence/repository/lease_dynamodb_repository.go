package repository

import (
	"context"
	"time"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeasesTableName = "leases"
	leasesStatusIndex      = "status-index"
	leasesLandlordIDIndex  = "landlord_id-index"
	leasesTenantIDIndex    = "tenant_id-index"
)

type leaseItem struct {
	ID                string `dynamodbav:"id"`
	PropertyID        string `dynamodbav:"property_id"`
	LandlordID        string `dynamodbav:"landlord_id"`
	TenantID          string `dynamodbav:"tenant_id"`
	RentAmount        string `dynamodbav:"rent_amount"`
	Deposit           string `dynamodbav:"deposit"`
	StartDate         string `dynamodbav:"start_date"`
	EndDate           string `dynamodbav:"end_date"`
	Terms             string `dynamodbav:"terms"`
	LandlordSignature string `dynamodbav:"landlord_signature,omitempty"`
	TenantSignature   string `dynamodbav:"tenant_signature,omitempty"`
	LandlordSignedAt  string `dynamodbav:"landlord_signed_at,omitempty"`
	TenantSignedAt    string `dynamodbav:"tenant_signed_at,omitempty"`
	Status            string `dynamodbav:"status"`
	ActivatedAt       string `dynamodbav:"activated_at,omitempty"`
	TerminatedAt      string `dynamodbav:"terminated_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// LeaseDynamoRepository persists Lease entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: landlord_id-index (PK: landlord_id)
//   - GSI: tenant_id-index (PK: tenant_id)
type LeaseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILeaseRepository = (*LeaseDynamoRepository)(nil)

func NewLeaseDynamoRepository(ddb DynamoDBAPI) *LeaseDynamoRepository {
	return &LeaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEASES_TABLE", defaultLeasesTableName),
	}
}

func (r *LeaseDynamoRepository) Create(ctx context.Context, l entities.Lease) (entities.Lease, error) {
	av, err := attributevalue.MarshalMap(toLeaseItem(l))
	if err != nil {
		return entities.Lease{}, err
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
		return entities.Lease{}, conditionError(err)
	}
	return l, nil
}

func (r *LeaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lease, error) {
	var it leaseItem
	found, err := getItem(ctx, r.ddb, r.tableName, idKey(id), &it)
	if err != nil || !found {
		return entities.Lease{}, err
	}
	return fromLeaseItem(it), nil
}

func (r *LeaseDynamoRepository) ListByStatus(ctx context.Context, status entities.LeaseStatus) ([]entities.Lease, error) {
	return r.listByIndex(ctx, leasesStatusIndex, "status", string(status))
}

func (r *LeaseDynamoRepository) ListByLandlordID(ctx context.Context, landlordID string) ([]entities.Lease, error) {
	return r.listByIndex(ctx, leasesLandlordIDIndex, "landlord_id", landlordID)
}

func (r *LeaseDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Lease, error) {
	return r.listByIndex(ctx, leasesTenantIDIndex, "tenant_id", tenantID)
}

func (r *LeaseDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Lease, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw, fromLeaseItem)
}

// RecordSignature stores the party's signature only while that signature is
// still absent and the lease is signable. The first signature moves a draft
// to pending_signatures.
func (r *LeaseDynamoRepository) RecordSignature(ctx context.Context, id string, party entities.LeaseParty, signature string, signedAt time.Time) (entities.Lease, error) {
	sigAttr, atAttr := "tenant_signature", "tenant_signed_at"
	if party == entities.LeasePartyLandlord {
		sigAttr, atAttr = "landlord_signature", "landlord_signed_at"
	}
	at := formatTime(signedAt)

	return r.update(ctx, id,
		"SET #sig = :sig, #signed_at = :at, #status = :pending, #updated_at = :at",
		"attribute_exists(#id) AND attribute_not_exists(#sig) AND #status IN (:draft, :pending)",
		map[string]types.AttributeValue{
			":sig":     stringValue(signature),
			":at":      stringValue(at),
			":draft":   stringValue(string(entities.LeaseStatusDraft)),
			":pending": stringValue(string(entities.LeaseStatusPendingSignatures)),
		},
		map[string]string{
			"#sig":        sigAttr,
			"#signed_at":  atAttr,
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	)
}

// UpdateStatus moves the lease from one status to another. Reaching active or
// terminated also stamps activated_at or terminated_at.
func (r *LeaseDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.LeaseStatus, at time.Time) (entities.Lease, error) {
	expr := "SET #status = :to, #updated_at = :at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	switch to {
	case entities.LeaseStatusActive:
		expr += ", #stamp = :at"
		names["#stamp"] = "activated_at"
	case entities.LeaseStatusTerminated:
		expr += ", #stamp = :at"
		names["#stamp"] = "terminated_at"
	}

	return r.update(ctx, id, expr,
		"attribute_exists(#id) AND #status = :from",
		map[string]types.AttributeValue{
			":to":   stringValue(string(to)),
			":from": stringValue(string(from)),
			":at":   stringValue(formatTime(at)),
		},
		names,
	)
}

func (r *LeaseDynamoRepository) update(
	ctx context.Context,
	id, updateExpr, condition string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Lease, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Lease{}, conditionError(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Lease{}, nil
	}
	var it leaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lease{}, err
	}
	return fromLeaseItem(it), nil
}

func toLeaseItem(l entities.Lease) leaseItem {
	return leaseItem{
		ID:                l.ID,
		PropertyID:        l.PropertyID,
		LandlordID:        l.LandlordID,
		TenantID:          l.TenantID,
		RentAmount:        l.RentAmount.String(),
		Deposit:           l.Deposit.String(),
		StartDate:         formatTime(l.StartDate),
		EndDate:           formatTime(l.EndDate),
		Terms:             l.Terms,
		LandlordSignature: l.LandlordSignature,
		TenantSignature:   l.TenantSignature,
		LandlordSignedAt:  formatTimePtr(l.LandlordSignedAt),
		TenantSignedAt:    formatTimePtr(l.TenantSignedAt),
		Status:            string(l.Status),
		ActivatedAt:       formatTimePtr(l.ActivatedAt),
		TerminatedAt:      formatTimePtr(l.TerminatedAt),
		CreatedAt:         formatTime(l.CreatedAt),
		UpdatedAt:         formatTime(l.UpdatedAt),
	}
}

func fromLeaseItem(it leaseItem) entities.Lease {
	return entities.Lease{
		ID:                it.ID,
		PropertyID:        it.PropertyID,
		LandlordID:        it.LandlordID,
		TenantID:          it.TenantID,
		RentAmount:        parseDecimal(it.RentAmount),
		Deposit:           parseDecimal(it.Deposit),
		StartDate:         parseTime(it.StartDate),
		EndDate:           parseTime(it.EndDate),
		Terms:             it.Terms,
		LandlordSignature: it.LandlordSignature,
		TenantSignature:   it.TenantSignature,
		LandlordSignedAt:  parseTimePtr(it.LandlordSignedAt),
		TenantSignedAt:    parseTimePtr(it.TenantSignedAt),
		Status:            entities.LeaseStatus(it.Status),
		ActivatedAt:       parseTimePtr(it.ActivatedAt),
		TerminatedAt:      parseTimePtr(it.TerminatedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
