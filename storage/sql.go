package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/alex-pricope/elevate-awards/logging"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQL connects to postgres or sqlite and migrates the award tables.
func OpenSQL(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logging.Log.Errorf("SQL: failed to open %s: %v", driver, err)
		return nil, err
	}
	if err := db.AutoMigrate(&Vote{}, &VotingPeriod{}); err != nil {
		logging.Log.Errorf("SQL: migration failed: %v", err)
		return nil, err
	}
	logging.Log.Infof("SQL: %s storage ready", driver)
	return db, nil
}

// SQLStorage is the VoteStorage backed by postgres or sqlite.
type SQLStorage struct {
	DB *gorm.DB
}

func (s *SQLStorage) GetAll(ctx context.Context) ([]*Vote, error) {
	var votes []*Vote
	if err := s.DB.WithContext(ctx).Order("position asc").Find(&votes).Error; err != nil {
		logging.Log.Errorf("VOTE: failed to list votes: %v", err)
		return nil, err
	}
	return votes, nil
}

func (s *SQLStorage) Put(ctx context.Context, vote *Vote) error {
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(vote).Error
	if err != nil {
		logging.Log.Errorf("VOTE: failed to put vote %s: %v", vote.ID, err)
		return err
	}
	return nil
}

func (s *SQLStorage) DeleteAll(ctx context.Context) error {
	res := s.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Vote{})
	if res.Error != nil {
		logging.Log.Errorf("VOTE: failed to delete votes: %v", res.Error)
		return res.Error
	}
	logging.Log.Infof("VOTE: deleted %d rows", res.RowsAffected)
	return nil
}

// SQLPeriodStorage is the VotingPeriodStorage sharing SQLStorage's database.
type SQLPeriodStorage struct {
	DB *gorm.DB
}

func (s *SQLPeriodStorage) Get(ctx context.Context) (*VotingPeriod, error) {
	var period VotingPeriod
	err := s.DB.WithContext(ctx).First(&period, "id = ?", ActivePeriodKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Log.Warnf("PERIOD: no voting period stored")
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("PERIOD: failed to load voting period: %v", err)
		return nil, err
	}
	return &period, nil
}

func (s *SQLPeriodStorage) Put(ctx context.Context, period *VotingPeriod) error {
	period.Key = ActivePeriodKey
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(period).Error
	if err != nil {
		logging.Log.Errorf("PERIOD: failed to put voting period: %v", err)
		return err
	}
	return nil
}
