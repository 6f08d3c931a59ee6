package services

import (
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists an in-app alert and pushes it to any open sockets.
// Safe to call anywhere; a no-op before InitAlertDeps.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.NotifyUser(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}
