package types

type EmailDeliveryProvider string

const (
	SMTP     EmailDeliveryProvider = "smtp"
	SendGrid EmailDeliveryProvider = "sendgrid"
	// Disabled writes emails to the log instead of sending them
	Disabled EmailDeliveryProvider = "disabled"
)

type StorageProvider string

const (
	Mongo  StorageProvider = "mongo"
	Memory StorageProvider = "memory"
)
