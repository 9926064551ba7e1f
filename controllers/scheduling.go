package controllers

import (
	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/scheduler"
	"github.com/clientsbook/clientsbook-api/store"
)

var (
	engine      *scheduler.Engine
	slotStore   *store.WorkingSlotStore
	apptStore   *store.AppointmentStore
	clientStore bookingClientStore
	subStore    subscriptionStore
)

// InitScheduling wires the scheduling engine to the database-backed stores.
// Must run after db.Init.
func InitScheduling() {
	slotStore = store.NewWorkingSlotStore(db.DB)
	apptStore = store.NewAppointmentStore(db.DB)
	clientStore = store.NewClientStore(db.DB)
	subStore = store.NewSubscriptionStore(db.DB)
	engine = scheduler.NewEngine(slotStore, apptStore)
}
