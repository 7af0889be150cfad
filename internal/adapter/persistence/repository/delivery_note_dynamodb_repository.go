package repository

import (
	"context"
	"errors"
	"time"

	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDeliveryNotesTableName = "delivery_notes"

type deliveryNoteItem struct {
	ID          string  `dynamodbav:"id"`
	UserID      string  `dynamodbav:"user_id"`
	ClientID    string  `dynamodbav:"client_id"`
	ProjectID   string  `dynamodbav:"project_id"`
	Format      string  `dynamodbav:"format"`
	Hours       float64 `dynamodbav:"hours"`
	Description string  `dynamodbav:"description"`
	Pending     bool    `dynamodbav:"pending"`
	Sign        string  `dynamodbav:"sign,omitempty"`
	PDFURL      string  `dynamodbav:"pdf_url,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
	DeletedAt   string  `dynamodbav:"deleted_at,omitempty"`
}

// DeliveryNoteDynamoRepository persists DeliveryNote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Archival is a deleted_at attribute; it is absent on active records so
// active reads can filter with attribute_not_exists. The signing commit
// and the hard delete ride on conditional expressions, which is the only
// mutual exclusion this table needs: two concurrent signers produce one
// winner and one conditional-check failure.

type DeliveryNoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliveryNoteRepository = (*DeliveryNoteDynamoRepository)(nil)

func NewDeliveryNoteDynamoRepository(ddb *dynamodb.Client) *DeliveryNoteDynamoRepository {
	return &DeliveryNoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DELIVERY_NOTES_TABLE", defaultDeliveryNotesTableName),
	}
}

func (r *DeliveryNoteDynamoRepository) Create(ctx context.Context, n entities.DeliveryNote) (entities.DeliveryNote, error) {
	it := toDeliveryNoteItem(n)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DeliveryNote{}, err
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
		return entities.DeliveryNote{}, err
	}
	return n, nil
}

// GetByID returns only active notes; an archived record reads as absent.
func (r *DeliveryNoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.DeliveryNote, error) {
	n, err := r.getAnyByID(ctx, id)
	if err != nil {
		return entities.DeliveryNote{}, err
	}
	if n.Archived() {
		return entities.DeliveryNote{}, nil
	}
	return n, nil
}

func (r *DeliveryNoteDynamoRepository) getAnyByID(ctx context.Context, id string) (entities.DeliveryNote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DeliveryNote{}, err
	}
	if len(out.Item) == 0 {
		return entities.DeliveryNote{}, nil
	}

	var it deliveryNoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DeliveryNote{}, err
	}
	return fromDeliveryNoteItem(it), nil
}

func (r *DeliveryNoteDynamoRepository) List(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNote, error) {
	return r.scan(ctx, f, false)
}

func (r *DeliveryNoteDynamoRepository) ListDeleted(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNote, error) {
	return r.scan(ctx, f, true)
}

func (r *DeliveryNoteDynamoRepository) scan(ctx context.Context, f entities.NoteFilter, archived bool) ([]entities.DeliveryNote, error) {
	filterExpr := "attribute_not_exists(#deleted_at)"
	if archived {
		filterExpr = "attribute_exists(#deleted_at)"
	}
	names := map[string]string{"#deleted_at": "deleted_at"}
	values := map[string]types.AttributeValue{}

	if f.UserID != "" {
		filterExpr += " AND #user_id = :user_id"
		names["#user_id"] = "user_id"
		values[":user_id"] = &types.AttributeValueMemberS{Value: f.UserID}
	}
	if f.ClientID != "" {
		filterExpr += " AND #client_id = :client_id"
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: f.ClientID}
	}
	if f.ProjectID != "" {
		filterExpr += " AND #project_id = :project_id"
		names["#project_id"] = "project_id"
		values[":project_id"] = &types.AttributeValueMemberS{Value: f.ProjectID}
	}

	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String(filterExpr),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}

	notes := []entities.DeliveryNote{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []deliveryNoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			notes = append(notes, fromDeliveryNoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return notes, nil
}

// Update patches mutable fields. The condition restricts patching to
// active, still-pending notes; a zero-value result means the record is
// absent, archived or already signed, and the caller re-reads to tell
// those apart.
func (r *DeliveryNoteDynamoRepository) Update(ctx context.Context, id string, patch entities.NotePatch) (entities.DeliveryNote, error) {
	expr := "SET #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#pending":    "pending",
		"#deleted_at": "deleted_at",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		":true":       &types.AttributeValueMemberBOOL{Value: true},
	}

	if patch.ClientID != nil {
		expr += ", #client_id = :client_id"
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: *patch.ClientID}
	}
	if patch.ProjectID != nil {
		expr += ", #project_id = :project_id"
		names["#project_id"] = "project_id"
		values[":project_id"] = &types.AttributeValueMemberS{Value: *patch.ProjectID}
	}
	if patch.Hours != nil {
		expr += ", #hours = :hours"
		names["#hours"] = "hours"
		values[":hours"] = &types.AttributeValueMemberN{Value: floatToString(*patch.Hours)}
	}
	if patch.Description != nil {
		expr += ", #description = :description"
		names["#description"] = "description"
		values[":description"] = &types.AttributeValueMemberS{Value: *patch.Description}
	}

	return r.conditionalUpdate(ctx, id, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at) AND #pending = :true"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
}

// SoftDelete stamps deleted_at on an active note. Archiving an already
// archived note is a no-op that returns the record unchanged; updated_at
// is deliberately left alone so a later restore reproduces the
// pre-archive record exactly.
func (r *DeliveryNoteDynamoRepository) SoftDelete(ctx context.Context, id string) (entities.DeliveryNote, error) {
	n, err := r.conditionalUpdate(ctx, id, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		UpdateExpression:    aws.String("SET #deleted_at = :deleted_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted_at": "deleted_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deleted_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return entities.DeliveryNote{}, err
	}
	if n.ID != "" {
		return n, nil
	}
	// Already archived, or gone. Surface the archived record as-is.
	return r.getAnyByID(ctx, id)
}

// Restore clears the archival marker. Restoring an active note is a
// no-op returning the current record.
func (r *DeliveryNoteDynamoRepository) Restore(ctx context.Context, id string) (entities.DeliveryNote, error) {
	return r.conditionalUpdate(ctx, id, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		UpdateExpression:    aws.String("REMOVE #deleted_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted_at": "deleted_at",
		},
	})
}

// CommitSignature is the provisional commit of the signing pipeline: it
// flips pending and records the signature URL in one conditional write,
// so exactly one of any concurrent sign attempts wins.
func (r *DeliveryNoteDynamoRepository) CommitSignature(ctx context.Context, id, signURL string) (entities.DeliveryNote, error) {
	return r.conditionalUpdate(ctx, id, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		UpdateExpression:    aws.String("SET #sign = :sign, #pending = :false, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at) AND #pending = :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#sign":       "sign",
			"#pending":    "pending",
			"#deleted_at": "deleted_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sign":       &types.AttributeValueMemberS{Value: signURL},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
}

// SetPDFURL anchors the rendered document. The condition requires the
// signature to already be committed, which keeps pdf_url from ever
// appearing on an unsigned record.
func (r *DeliveryNoteDynamoRepository) SetPDFURL(ctx context.Context, id, pdfURL string) (entities.DeliveryNote, error) {
	return r.conditionalUpdate(ctx, id, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		UpdateExpression:    aws.String("SET #pdf_url = :pdf_url, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_exists(#sign)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#sign":       "sign",
			"#pdf_url":    "pdf_url",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pdf_url":    &types.AttributeValueMemberS{Value: pdfURL},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
}

// HardDelete removes the record only while pending is false, closing the
// window between the caller's check and the delete.
func (r *DeliveryNoteDynamoRepository) HardDelete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConditionExpression: aws.String("attribute_exists(#id) AND #pending = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#pending": "pending",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DeliveryNoteDynamoRepository) conditionalUpdate(ctx context.Context, id string, input *dynamodb.UpdateItemInput) (entities.DeliveryNote, error) {
	input.Key = map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	input.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DeliveryNote{}, nil
		}
		return entities.DeliveryNote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DeliveryNote{}, nil
	}
	var it deliveryNoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DeliveryNote{}, err
	}
	return fromDeliveryNoteItem(it), nil
}

func toDeliveryNoteItem(n entities.DeliveryNote) deliveryNoteItem {
	it := deliveryNoteItem{
		ID:          n.ID,
		UserID:      n.UserID,
		ClientID:    n.ClientID,
		ProjectID:   n.ProjectID,
		Format:      string(n.Format),
		Hours:       n.Hours,
		Description: n.Description,
		Pending:     n.Pending,
		Sign:        n.Sign,
		PDFURL:      n.PDFURL,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if n.DeletedAt != nil {
		it.DeletedAt = n.DeletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDeliveryNoteItem(it deliveryNoteItem) entities.DeliveryNote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	n := entities.DeliveryNote{
		ID:          it.ID,
		UserID:      it.UserID,
		ClientID:    it.ClientID,
		ProjectID:   it.ProjectID,
		Format:      entities.NoteFormat(it.Format),
		Hours:       it.Hours,
		Description: it.Description,
		Pending:     it.Pending,
		Sign:        it.Sign,
		PDFURL:      it.PDFURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.DeletedAt != "" {
		if deletedAt, err := time.Parse(time.RFC3339Nano, it.DeletedAt); err == nil {
			n.DeletedAt = &deletedAt
		}
	}
	return n
}
