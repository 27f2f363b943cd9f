package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"assisthub/models"
	"assisthub/services/portaldata"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func logScheduler(message string) {
	log.Printf("[NOTIF-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// refreshNotifications pulls the integration notifications feed and stores
// rows not seen before. Fallback responses are skipped: the fallback payload
// is the store itself, so there is nothing new to merge.
func refreshNotifications(db *gorm.DB, data *portaldata.Service) {
	result := data.Fetch(context.Background(), portaldata.ResourceNotifications)
	if !result.IsLive {
		return
	}

	raw, err := json.Marshal(result.Payload)
	if err != nil {
		logScheduler("Error re-encoding live payload: " + err.Error())
		return
	}
	var incoming []models.AppNotification
	if err := json.Unmarshal(raw, &incoming); err != nil {
		logScheduler("Error decoding live notifications: " + err.Error())
		return
	}

	inserted := 0
	for _, n := range incoming {
		if n.ID == "" {
			continue
		}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&n)
		if res.Error != nil {
			logScheduler("Error storing notification " + n.ID + ": " + res.Error.Error())
			continue
		}
		inserted += int(res.RowsAffected)
	}
	if inserted > 0 {
		logScheduler(fmt.Sprintf("Merged %d new notifications", inserted))
	}
}

// StartNotificationScheduler refreshes the notifications feed on a fixed
// interval. The returned cron can be stopped on shutdown.
func StartNotificationScheduler(db *gorm.DB, data *portaldata.Service, intervalSeconds int) *cron.Cron {
	if intervalSeconds <= 0 {
		intervalSeconds = 30
	}

	c := cron.New(cron.WithSeconds())
	spec := fmt.Sprintf("@every %ds", intervalSeconds)
	if _, err := c.AddFunc(spec, func() { refreshNotifications(db, data) }); err != nil {
		logScheduler("Error scheduling refresh job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Notification refresh scheduled " + spec)
	return c
}
