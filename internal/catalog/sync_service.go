package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hostpanel/internal/datapacket"
	"hostpanel/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSyncInProgress is returned when another sync run holds the lease.
var ErrSyncInProgress = errors.New("a sync run is already in progress")

// Provider is the subset of the datapacket client the sync engine uses.
type Provider interface {
	FetchDetailedPricing(ctx context.Context) (*datapacket.DetailedPricing, error)
	FetchConfigurations(ctx context.Context) ([]datapacket.Configuration, error)
	FetchOperatingSystems(ctx context.Context) ([]datapacket.OperatingSystem, error)
}

// Locker serializes overlapping sync runs. Nil disables locking.
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// SyncResult aggregates the counters of one sync run.
type SyncResult struct {
	ComponentsAdded   int `json:"componentsAdded"`
	ComponentsUpdated int `json:"componentsUpdated"`
	OSAdded           int `json:"osAdded"`
	OSUpdated         int `json:"osUpdated"`
}

// Service owns catalog reads and sync runs.
type Service struct {
	db       *gorm.DB
	provider Provider
	lock     Locker
	logger   *logrus.Entry
}

// NewService creates a catalog service. lock may be nil.
func NewService(db *gorm.DB, provider Provider, lock Locker, logger *logrus.Entry) *Service {
	return &Service{
		db:       db,
		provider: provider,
		lock:     lock,
		logger:   logger.WithField("component", "catalog"),
	}
}

// Sync runs one full synchronization: hardware (detailed pricing with
// configurations fallback) then operating systems. Partial failures degrade
// to zero counts instead of failing the run; only catalog-store failures
// surface as errors.
func (s *Service) Sync(ctx context.Context) (*SyncResult, error) {
	if s.lock != nil {
		ok, err := s.lock.Acquire(ctx)
		switch {
		case err != nil:
			// Lease is best-effort: a dead Redis must not block syncing.
			s.logger.WithError(err).Warn("sync lease unavailable, proceeding without it")
		case !ok:
			return nil, ErrSyncInProgress
		default:
			defer func() {
				if err := s.lock.Release(context.Background()); err != nil {
					s.logger.WithError(err).Warn("failed to release sync lease")
				}
			}()
		}
	}

	runID := uuid.NewString()
	log := s.logger.WithField("run_id", runID)

	syncLog := model.SyncLog{
		RunID:         runID,
		SyncStartedAt: time.Now(),
	}
	if err := s.db.Create(&syncLog).Error; err != nil {
		return nil, fmt.Errorf("failed to open sync log: %w", err)
	}

	result := &SyncResult{}
	result.ComponentsAdded, result.ComponentsUpdated = s.reconcile(s.fetchHardware(ctx, log), log)

	osList, err := s.provider.FetchOperatingSystems(ctx)
	if err != nil {
		log.WithError(err).Warn("operating systems fetch failed, skipping OS sync")
	} else {
		result.OSAdded, result.OSUpdated = s.reconcile(recordsFromOperatingSystems(osList), log)
	}

	now := time.Now()
	err = s.db.Model(&model.SyncLog{}).Where("id = ?", syncLog.ID).Updates(map[string]interface{}{
		"sync_finished_at":   &now,
		"components_added":   result.ComponentsAdded,
		"components_updated": result.ComponentsUpdated,
		"os_added":           result.OSAdded,
		"os_updated":         result.OSUpdated,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to close sync log: %w", err)
	}

	log.WithFields(logrus.Fields{
		"components_added":   result.ComponentsAdded,
		"components_updated": result.ComponentsUpdated,
		"os_added":           result.OSAdded,
		"os_updated":         result.OSUpdated,
	}).Info("sync completed")

	return result, nil
}

// fetchHardware tries detailed pricing first, then the configurations
// fallback. When both fail the hardware phase degrades to zero records.
func (s *Service) fetchHardware(ctx context.Context, log *logrus.Entry) []Record {
	pricing, err := s.provider.FetchDetailedPricing(ctx)
	if err == nil {
		return recordsFromDetailedPricing(pricing)
	}
	log.WithError(err).Info("detailed pricing unavailable, falling back to configurations")

	cfgs, err := s.provider.FetchConfigurations(ctx)
	if err != nil {
		log.WithError(err).Error("configurations fetch failed, hardware phase degraded to zero")
		return nil
	}
	return recordsFromConfigurations(cfgs)
}

// reconcile feeds records through the upsert engine one by one. A failing
// record is logged and skipped; it never aborts the rest of the run.
func (s *Service) reconcile(records []Record, log *logrus.Entry) (added, updated int) {
	for _, rec := range records {
		created, err := s.upsertRecord(rec)
		if err != nil {
			log.WithError(err).WithField("record_id", rec.ID).Error("failed to reconcile record")
			continue
		}
		if created {
			added++
		} else {
			updated++
		}
	}
	return added, updated
}

// upsertRecord reconciles one provider record against the catalog inside its
// own transaction. New ids are inserted enabled; existing rows are refreshed,
// leaving name untouched when an admin set custom_name. Rows absent from the
// provider response are never deleted here.
func (s *Service) upsertRecord(rec Record) (bool, error) {
	if rec.ID == "" {
		return false, fmt.Errorf("record has empty id")
	}

	specsJSON, err := json.Marshal(rec.Specs)
	if err != nil {
		return false, fmt.Errorf("failed to marshal specs: %w", err)
	}
	dpJSON, err := json.Marshal(rec.Datapacket)
	if err != nil {
		return false, fmt.Errorf("failed to marshal datapacket data: %w", err)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	now := time.Now()

	var existing model.Component
	err = tx.Where("id = ?", rec.ID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return false, fmt.Errorf("failed to look up component: %w", err)
		}

		comp := model.Component{
			ID:                  rec.ID,
			Name:                rec.Name,
			Type:                rec.Type,
			BasePrice:           rec.Price,
			Specs:               specsJSON,
			DatapacketData:      dpJSON,
			IsEnabled:           true,
			FirstSeenAt:         now,
			LastUpdatedAt:       now,
			DatapacketUpdatedAt: &now,
		}
		if err := tx.Create(&comp).Error; err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to create component: %w", err)
		}
		if err := tx.Commit().Error; err != nil {
			return false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return true, nil
	}

	updates := map[string]interface{}{
		"type":                  rec.Type,
		"base_price":            rec.Price,
		"specs":                 specsJSON,
		"datapacket_data":       dpJSON,
		"datapacket_updated_at": &now,
		"last_updated_at":       now,
	}
	// An admin rename shields name from the provider; everything else still
	// refreshes.
	if existing.CustomName == nil {
		updates["name"] = rec.Name
	}

	if err := tx.Model(&model.Component{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to update component: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return false, nil
}
