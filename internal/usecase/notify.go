package usecase

import (
	"context"
	"log"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
)

// notifyBestEffort forwards n to the sink and only logs a failure.
func notifyBestEffort(ctx context.Context, sink interfaces.INotificationSink, n entities.Notification) {
	if sink == nil {
		log.Printf("[notification][usecase] sink not configured; dropping user_id=%s type=%s", n.UserID, n.Type)
		return
	}
	if err := sink.Notify(ctx, n); err != nil {
		log.Printf("[notification][usecase] notify failed user_id=%s type=%s err=%v", n.UserID, n.Type, err)
	}
}
