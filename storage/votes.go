package storage

import (
	"context"
	"sort"
	"time"

	"github.com/alex-pricope/elevate-awards/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v5"
)

// BatchWriteItem takes at most 25 requests.
const (
	maxBatchWriteItems = 25
	maxBatchWriteTries = 5
)

// DynamoClient is the part of *dynamodb.Client the storages call.
type DynamoClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type VoteStorage interface {
	GetAll(ctx context.Context) ([]*Vote, error)
	Put(ctx context.Context, vote *Vote) error
	DeleteAll(ctx context.Context) error
}

type DynamoVoteStorage struct {
	Client    DynamoClient
	TableName string

	// newBackOff paces the resends of unprocessed batch items. Nil means exponential.
	newBackOff func() backoff.BackOff
}

// GetAll returns every stored vote ordered by its position in the vote log.
func (s *DynamoVoteStorage) GetAll(ctx context.Context) ([]*Vote, error) {
	var votes []*Vote
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: lastEvaluatedKey,
		})
		if err != nil {
			logging.Log.Errorf("VOTE: scan failed: %v", err)
			return nil, err
		}

		var page []*Vote
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("VOTE: failed to unmarshal vote list: %v", err)
			return nil, err
		}
		votes = append(votes, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Position < votes[j].Position
	})
	return votes, nil
}

// Put writes the vote, replacing any stored vote with the same ID.
func (s *DynamoVoteStorage) Put(ctx context.Context, vote *Vote) error {
	item, err := attributevalue.MarshalMap(vote)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to marshal vote: %v", err)
		return err
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("VOTE: failed to put vote %s: %v", vote.ID, err)
		return err
	}
	return nil
}

// DeleteAll is not atomic across batches: a failure leaves earlier batches deleted.
func (s *DynamoVoteStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK"),
		})
		if err != nil {
			logging.Log.Errorf("VOTE: scan for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
					},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += maxBatchWriteItems {
			end := min(i+maxBatchWriteItems, len(writeRequests))
			if err := s.batchDelete(ctx, writeRequests[i:end]); err != nil {
				return err
			}
			logging.Log.Infof("VOTE: deleted batch of %d items", end-i)
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}

// batchDelete sends one batch and resends whatever DynamoDB reports as
// unprocessed until the batch drains or maxBatchWriteTries is spent.
func (s *DynamoVoteStorage) batchDelete(ctx context.Context, requests []types.WriteRequest) error {
	pending := requests
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		out, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.TableName: pending,
			},
		})
		if err != nil {
			logging.Log.Errorf("VOTE: batch delete failed: %v", err)
			return struct{}{}, backoff.Permanent(err)
		}
		if left := out.UnprocessedItems[s.TableName]; len(left) > 0 {
			logging.Log.Warnf("VOTE: %d of %d deletes unprocessed, retrying", len(left), len(pending))
			pending = left
			return struct{}{}, ErrUnprocessedItems
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(s.backOff()), backoff.WithMaxTries(maxBatchWriteTries))
	if err != nil {
		logging.Log.Errorf("VOTE: giving up on batch delete: %v", err)
	}
	return err
}

func (s *DynamoVoteStorage) backOff() backoff.BackOff {
	if s.newBackOff != nil {
		return s.newBackOff()
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	return b
}
