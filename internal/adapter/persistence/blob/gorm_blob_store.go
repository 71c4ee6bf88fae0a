package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicer/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobRecord is one storage key in the blob_records table.
type BlobRecord struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (BlobRecord) TableName() string {
	return "blob_records"
}

// GormBlobStore persists blobs in a relational database through gorm.
type GormBlobStore struct {
	db *gorm.DB
}

var _ interfaces.IBlobStore = (*GormBlobStore)(nil)

func NewGormBlobStore(db *gorm.DB) (*GormBlobStore, error) {
	if err := db.AutoMigrate(&BlobRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate blob_records: %w", err)
	}
	return &GormBlobStore{db: db}, nil
}

func (s *GormBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec BlobRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Value), true, nil
}

func (s *GormBlobStore) Put(ctx context.Context, key string, value []byte) error {
	rec := BlobRecord{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
