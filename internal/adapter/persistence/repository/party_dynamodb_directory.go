package repository

import (
	"context"

	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName    = "users"
	defaultClientsTableName  = "clients"
	defaultProjectsTableName = "projects"
)

type userItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Surnames string `dynamodbav:"surnames"`
	Email    string `dynamodbav:"email"`
}

type clientItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
	CIF  string `dynamodbav:"cif"`
}

type projectItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	ProjectCode string `dynamodbav:"project_code"`
}

// PartyDynamoDirectory resolves user/client/project display attributes
// from their DynamoDB tables. Missing parties come back as zero-value
// info structs; dangling references are the renderer's problem, not a
// lookup failure.

type PartyDynamoDirectory struct {
	ddb           *dynamodb.Client
	usersTable    string
	clientsTable  string
	projectsTable string
}

var _ interfaces.IPartyDirectory = (*PartyDynamoDirectory)(nil)

func NewPartyDynamoDirectory(ddb *dynamodb.Client) *PartyDynamoDirectory {
	return &PartyDynamoDirectory{
		ddb:           ddb,
		usersTable:    getenvDefault("USERS_TABLE", defaultUsersTableName),
		clientsTable:  getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		projectsTable: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (d *PartyDynamoDirectory) GetUser(ctx context.Context, id string) (entities.UserInfo, error) {
	var it userItem
	found, err := d.getItem(ctx, d.usersTable, id, &it)
	if err != nil || !found {
		return entities.UserInfo{}, err
	}
	return entities.UserInfo{Name: it.Name, Surnames: it.Surnames, Email: it.Email}, nil
}

func (d *PartyDynamoDirectory) GetClient(ctx context.Context, id string) (entities.ClientInfo, error) {
	var it clientItem
	found, err := d.getItem(ctx, d.clientsTable, id, &it)
	if err != nil || !found {
		return entities.ClientInfo{}, err
	}
	return entities.ClientInfo{Name: it.Name, CIF: it.CIF}, nil
}

func (d *PartyDynamoDirectory) GetProject(ctx context.Context, id string) (entities.ProjectInfo, error) {
	var it projectItem
	found, err := d.getItem(ctx, d.projectsTable, id, &it)
	if err != nil || !found {
		return entities.ProjectInfo{}, err
	}
	return entities.ProjectInfo{Name: it.Name, ProjectCode: it.ProjectCode}, nil
}

func (d *PartyDynamoDirectory) getItem(ctx context.Context, table, id string, dst interface{}) (bool, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}
