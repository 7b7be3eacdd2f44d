package reminder

import (
	"fmt"
	"log"
	"time"
)

// Sender delivers reminder notifications. The Discord session satisfies it
// through an adapter; tests substitute a fake.
type Sender interface {
	SendMessage(channelID, content string) error
	SendDM(userID, content string) error
}

// Dispatcher fires due reminders on every tick with at-most-one delivery
// attempt per record: channel first, then a DM fallback, and the record is
// dropped either way.
type Dispatcher struct {
	store  *Store
	sender Sender
}

// NewDispatcher creates a Dispatcher over store.
func NewDispatcher(store *Store, sender Sender) *Dispatcher {
	return &Dispatcher{store: store, sender: sender}
}

// Tick delivers every record whose fire time has passed. The store persists
// the surviving list once per tick, not once per record.
func (d *Dispatcher) Tick(now time.Time) {
	for _, r := range d.store.TakeDue(now) {
		d.deliver(r)
	}
}

func (d *Dispatcher) deliver(r Record) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Reminder delivery panicked for user %s: %v", r.UserID, rec)
		}
	}()

	content := fmt.Sprintf("⏰ <@%s> Reminder: %s", r.UserID, r.Message)

	if err := d.sender.SendMessage(r.ChannelID, content); err == nil {
		return
	} else {
		log.Printf("Reminder channel delivery failed (channel %s): %v, trying DM", r.ChannelID, err)
	}

	if err := d.sender.SendDM(r.UserID, fmt.Sprintf("⏰ Reminder: %s", r.Message)); err != nil {
		log.Printf("Reminder DM fallback failed (user %s): %v, dropping", r.UserID, err)
	}
}
