package interfaces

// ConversionRecorder receives one event per handled conversion request.
type ConversionRecorder interface {
	RecordConversion(direction, result string)
}
