package background

import (
	"context"
	"time"

	"github.com/orderhub/order-hub-service/internal/usecase"
	"github.com/sirupsen/logrus"
)

type BackgroundTasks struct {
	AuthUsecase     *usecase.DefaultWebhookAuthUsecase
	ShipmentUsecase usecase.ShipmentUsecase
	Log             *logrus.Logger

	NoncePurgeInterval      time.Duration
	TrackingRefreshInterval time.Duration
}

func NewBackgroundTasks(authUC *usecase.DefaultWebhookAuthUsecase, shipmentUC usecase.ShipmentUsecase, log *logrus.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		AuthUsecase:             authUC,
		ShipmentUsecase:         shipmentUC,
		Log:                     log,
		NoncePurgeInterval:      time.Hour,
		TrackingRefreshInterval: 6 * time.Hour,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startNoncePurge(ctx)
	go bt.startTrackingRefresh(ctx)
}

func (bt *BackgroundTasks) startNoncePurge(ctx context.Context) {
	ticker := time.NewTicker(bt.NoncePurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := bt.AuthUsecase.PurgeExpiredNonces(ctx)
			if err != nil {
				bt.Log.WithError(err).Error("nonce purge failed")
				continue
			}
			if removed > 0 {
				bt.Log.WithField("removed", removed).Info("expired nonces purged")
			}
		}
	}
}

func (bt *BackgroundTasks) startTrackingRefresh(ctx context.Context) {
	ticker := time.NewTicker(bt.TrackingRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := bt.ShipmentUsecase.RefreshAllShipments(ctx)
			if err != nil {
				bt.Log.WithError(err).Error("tracking refresh sweep failed")
				continue
			}
			bt.Log.WithFields(logrus.Fields{
				"total":   result.Total,
				"updated": result.Updated,
				"failed":  result.Failed,
			}).Info("tracking refresh sweep finished")
		}
	}
}
