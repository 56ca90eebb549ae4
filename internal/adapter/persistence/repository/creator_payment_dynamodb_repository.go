package repository

import (
	"context"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsBookingIDIndex = "booking_id-index"

type creatorPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	BookingID          string                 `dynamodbav:"booking_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// CreatorPaymentDynamoRepository persists CreatorPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
type CreatorPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICreatorPaymentRepository = (*CreatorPaymentDynamoRepository)(nil)

func NewCreatorPaymentDynamoRepository(ddb dynamoAPI, tableName string) *CreatorPaymentDynamoRepository {
	return &CreatorPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CreatorPaymentDynamoRepository) Create(ctx context.Context, p entities.CreatorPayment) (entities.CreatorPayment, error) {
	av, err := attributevalue.MarshalMap(toCreatorPaymentItem(p))
	if err != nil {
		return entities.CreatorPayment{}, err
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
		return entities.CreatorPayment{}, err
	}
	return p, nil
}

func (r *CreatorPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CreatorPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CreatorPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.CreatorPayment{}, nil
	}

	var it creatorPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CreatorPayment{}, err
	}
	return fromCreatorPaymentItem(it), nil
}

func (r *CreatorPaymentDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.CreatorPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CreatorPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it creatorPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCreatorPaymentItem(it))
	}
	return items, nil
}

func toCreatorPaymentItem(p entities.CreatorPayment) creatorPaymentItem {
	return creatorPaymentItem{
		ID:                 p.ID,
		BookingID:          p.BookingID,
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromCreatorPaymentItem(it creatorPaymentItem) entities.CreatorPayment {
	return entities.CreatorPayment{
		ID:                 it.ID,
		BookingID:          it.BookingID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
