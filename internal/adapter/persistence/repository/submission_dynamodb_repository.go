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

type submissionItem struct {
	BookingID     string   `dynamodbav:"booking_id"`
	SessionID     string   `dynamodbav:"session_id"`
	QuoteID       string   `dynamodbav:"quote_id,omitempty"`
	GuestEmail    string   `dynamodbav:"guest_email"`
	ContentTypes  []string `dynamodbav:"content_types"`
	Location      string   `dynamodbav:"location"`
	BudgetMin     float64  `dynamodbav:"budget_min"`
	BudgetMax     float64  `dynamodbav:"budget_max"`
	Amount        float64  `dynamodbav:"amount"`
	DurationHours int      `dynamodbav:"duration_hours"`
	ResultsPath   string   `dynamodbav:"results_path"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// SubmissionDynamoRepository persists the submission ledger in DynamoDB.
//
// Table requirements:
//   - PK: booking_id (string)
//
// The booking service issues the id, so one booking has exactly one entry.
type SubmissionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb dynamoAPI, tableName string) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	av, err := attributevalue.MarshalMap(toSubmissionItem(s))
	if err != nil {
		return entities.Submission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#booking_id)"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
	})
	if err != nil {
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Submission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it), nil
}

func toSubmissionItem(s entities.Submission) submissionItem {
	tags := make([]string, 0, len(s.ContentTypes))
	for _, ct := range s.ContentTypes {
		tags = append(tags, string(ct))
	}
	return submissionItem{
		BookingID:     s.BookingID,
		SessionID:     s.SessionID,
		QuoteID:       s.QuoteID,
		GuestEmail:    s.GuestEmail,
		ContentTypes:  tags,
		Location:      s.Location,
		BudgetMin:     s.BudgetMin,
		BudgetMax:     s.BudgetMax,
		Amount:        s.Amount,
		DurationHours: s.DurationHours,
		ResultsPath:   s.ResultsPath,
		CreatedAt:     formatTime(s.CreatedAt),
	}
}

func fromSubmissionItem(it submissionItem) entities.Submission {
	cts := make([]entities.ContentType, 0, len(it.ContentTypes))
	for _, tag := range it.ContentTypes {
		cts = append(cts, entities.ContentType(tag))
	}
	return entities.Submission{
		BookingID:     it.BookingID,
		SessionID:     it.SessionID,
		QuoteID:       it.QuoteID,
		GuestEmail:    it.GuestEmail,
		ContentTypes:  cts,
		Location:      it.Location,
		BudgetMin:     it.BudgetMin,
		BudgetMax:     it.BudgetMax,
		Amount:        it.Amount,
		DurationHours: it.DurationHours,
		ResultsPath:   it.ResultsPath,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
