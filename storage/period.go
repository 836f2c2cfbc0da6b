package storage

import (
	"context"

	"github.com/alex-pricope/elevate-awards/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type VotingPeriodStorage interface {
	// Get returns nil, nil when no period has been stored yet.
	Get(ctx context.Context) (*VotingPeriod, error)
	Put(ctx context.Context, period *VotingPeriod) error
}

type DynamoVotingPeriodStorage struct {
	Client    DynamoClient
	TableName string
}

func (s *DynamoVotingPeriodStorage) Get(ctx context.Context) (*VotingPeriod, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": ActivePeriodKey})
	if err != nil {
		logging.Log.Errorf("PERIOD: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PERIOD: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		logging.Log.Warnf("PERIOD: no voting period stored")
		return nil, nil
	}

	var period VotingPeriod
	if err := attributevalue.UnmarshalMap(out.Item, &period); err != nil {
		logging.Log.Errorf("PERIOD: failed to unmarshal voting period: %v", err)
		return nil, err
	}
	return &period, nil
}

func (s *DynamoVotingPeriodStorage) Put(ctx context.Context, period *VotingPeriod) error {
	period.Key = ActivePeriodKey
	item, err := attributevalue.MarshalMap(period)
	if err != nil {
		logging.Log.Errorf("PERIOD: failed to marshal voting period: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("PERIOD: failed to put voting period: %v", err)
		return err
	}
	return nil
}
