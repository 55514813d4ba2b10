package queue

// Subjects published by the fleet services.
const (
	SubjectAlertRaised          = "frota.alerts.raised"
	SubjectMaintenanceCompleted = "frota.maintenance.completed"
	SubjectMaintenanceDue       = "frota.maintenance.due"
	SubjectVehicleRegistered    = "frota.vehicles.registered"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
