package services

import (
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
)

// Enqueuer accepts notification requests without blocking. Satisfied by
// *notifier.Queue.
type Enqueuer interface {
	Enqueue(req notifier.Request)
}

// Notify is set at startup. When nil (e.g. in tests that do not care about
// notifications) requests are silently discarded.
var Notify Enqueuer

func notify(req notifier.Request) {
	if Notify != nil {
		Notify.Enqueue(req)
	}
}

// Broadcast enqueues a message to every authorized user. Admin only.
// Returns how many recipients were enqueued.
func Broadcast(actorID int64, text string) (int, error) {
	if !IsAdmin(actorID) {
		return 0, ErrPermissionDenied
	}
	ids, err := AuthorizedIDs()
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		notify(notifier.Request{RecipientID: id, Text: text})
	}
	return len(ids), nil
}

// notifyAdmins fans a message out to every admin except the acting one,
// plus the admin group chat.
func notifyAdmins(exceptID int64, text string) {
	ids, err := AdminIDs()
	if err != nil {
		return
	}
	for _, id := range ids {
		if id == exceptID {
			continue
		}
		notify(notifier.Request{RecipientID: id, Text: text})
	}
	notify(notifier.Request{AdminGroup: true, Text: text})
}
