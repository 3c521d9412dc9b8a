package data

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcrodman/objdefs/internal/registry"
)

const insertBatchSize = 200

// Snapshot is a stored copy of the identifier table, taken so that later
// versions can be checked for renumbering.
type Snapshot struct {
	ID string `gorm:"primaryKey;type:varchar(36)"`
	// Where the identifiers were loaded from (file, glob or "embedded").
	Source  string
	Version string
	// LAST ID declared by the source, if any.
	LastID   int
	Checksum string `gorm:"index"`
	// Number of stored identifiers, retired ones included.
	Size      int
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Identifier is a single entry of a Snapshot.
type Identifier struct {
	ID         uint64 `gorm:"primaryKey"`
	SnapshotID string `gorm:"index;not null;type:varchar(36)"`
	// Position of the entry in its source, used to restore source order.
	Position   int    `gorm:"not null"`
	Namespace  string `gorm:"not null;size:2"`
	Name       string `gorm:"not null"`
	Value      int    `gorm:"not null"`
	Deprecated bool   `gorm:"default:false"`
	Comment    string
}

// BeforeCreate assigns a random ID to snapshots created without one.
func (s *Snapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Checksum fingerprints the names, values and retirement flags of entries in
// order. Comments are left out since they vary with the text encoding.
func Checksum(entries []registry.Entry) string {
	h := sha256.New()
	for _, e := range entries {
		fmt.Fprintf(h, "%s\t%s\t%d\t%t\n", e.Namespace, e.Name, e.Value, e.Deprecated)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CreateSnapshot persists snapshot along with every entry. The checksum and
// size are filled in from entries.
func CreateSnapshot(db *gorm.DB, snapshot *Snapshot, entries []registry.Entry) error {
	snapshot.Checksum = Checksum(entries)
	snapshot.Size = len(entries)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snapshot).Error; err != nil {
			return fmt.Errorf("error creating snapshot: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		identifiers := make([]Identifier, len(entries))
		for i, e := range entries {
			identifiers[i] = Identifier{
				SnapshotID: snapshot.ID,
				Position:   i,
				Namespace:  string(e.Namespace),
				Name:       e.Name,
				Value:      e.Value,
				Deprecated: e.Deprecated,
				Comment:    e.Comment,
			}
		}
		if err := tx.CreateInBatches(identifiers, insertBatchSize).Error; err != nil {
			return fmt.Errorf("error storing identifiers: %w", err)
		}
		return nil
	})
}

// FindLatestSnapshot returns the most recently created snapshot, or nil if
// there are none.
func FindLatestSnapshot(db *gorm.DB) (*Snapshot, error) {
	var snapshot Snapshot
	err := db.Order("created_at desc").First(&snapshot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

// FindSnapshot searches for a snapshot by ID, returning nil if there is no match.
func FindSnapshot(db *gorm.DB, id string) (*Snapshot, error) {
	var snapshot Snapshot
	err := db.Where("id = ?", id).First(&snapshot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

// ListSnapshots returns every snapshot that has not been deleted, newest first.
func ListSnapshots(db *gorm.DB) ([]Snapshot, error) {
	var snapshots []Snapshot
	if err := db.Order("created_at desc").Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// FindIdentifiers returns the entries of a snapshot in their source order.
func FindIdentifiers(db *gorm.DB, snapshotID string) ([]registry.Entry, error) {
	var identifiers []Identifier
	err := db.Where("snapshot_id = ?", snapshotID).Order("position").Find(&identifiers).Error
	if err != nil {
		return nil, err
	}

	entries := make([]registry.Entry, len(identifiers))
	for i, id := range identifiers {
		entries[i] = registry.Entry{
			Namespace:  registry.Namespace(id.Namespace),
			Name:       id.Name,
			Value:      id.Value,
			Deprecated: id.Deprecated,
			Comment:    id.Comment,
		}
	}
	return entries, nil
}

// CountIdentifiers returns the number of distinct active names per namespace
// in a snapshot, matching Registry.Count. Namespaces without entries are left
// out.
func CountIdentifiers(db *gorm.DB, snapshotID string) (map[registry.Namespace]int, error) {
	var rows []struct {
		Namespace string
		Total     int
	}
	err := db.Model(&Identifier{}).
		Select("namespace, count(distinct name) as total").
		Where("snapshot_id = ? AND deprecated = ?", snapshotID, false).
		Group("namespace").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[registry.Namespace]int, len(rows))
	for _, row := range rows {
		counts[registry.Namespace(row.Namespace)] = row.Total
	}
	return counts, nil
}

// LoadRegistry rebuilds the registry a snapshot was taken from.
func LoadRegistry(db *gorm.DB, snapshot *Snapshot) (*registry.Registry, error) {
	entries, err := FindIdentifiers(db, snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading identifiers of snapshot %s: %w", snapshot.ID, err)
	}
	return registry.New(entries, registry.WithDeclaredLastID(snapshot.LastID))
}

// DeleteSnapshot soft-deletes a snapshot. A permanent delete also removes
// its identifiers.
func DeleteSnapshot(db *gorm.DB, snapshot *Snapshot, permanent bool) error {
	if !permanent {
		return db.Delete(snapshot).Error
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("snapshot_id = ?", snapshot.ID).Delete(&Identifier{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(snapshot).Error
	})
}
