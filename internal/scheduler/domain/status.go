package domain

// StatusForResponse maps the latest invite response to the booking status.
// It is total over every input and does not look at the booking's current
// status: answering twice simply re-derives the status from the newer answer.
func StatusForResponse(rs ResponseStatus) BookingStatus {
	switch rs {
	case ResponseAccepted:
		return BookingAccepted
	case ResponseRejected:
		return BookingRejected
	case ResponseProposed:
		return BookingRescheduled
	default:
		return BookingPending
	}
}
