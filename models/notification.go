package models

// Provider identifiers reported in a NotificationOutcome. The chain is tried
// in this order; the console sink terminates it and cannot fail.
const (
	NotifierResend  = "resend"
	NotifierSMTP    = "smtp"
	NotifierConsole = "console"
)

// EmailMessage is a rendered email ready for any provider in the chain.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}

// NotificationOutcome records how a dispatch attempt chain ended. It is
// reported to the caller or the log and then discarded, never persisted.
type NotificationOutcome struct {
	Delivered   bool   `json:"delivered"`
	Provider    string `json:"provider"`
	ErrorDetail string `json:"errorDetail,omitempty"`
}

// NotificationTask is the payload for a detached admin-notification job.
type NotificationTask struct {
	BookingReference string `json:"bookingReference"`
}

// ProviderProbe is one entry of the provider self-test report.
type ProviderProbe struct {
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}
