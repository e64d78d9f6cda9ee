package archive2

import "fmt"

// AlarmState is the status of the RDA as a result of an alarm.
type AlarmState int

const (
	AlarmStateUnknown AlarmState = iota
	AlarmStateMaintenanceMandatory
	AlarmStateMaintenanceRequired
	AlarmStateInoperative
	// AlarmStateSecondary marks an alarm not specifically tied to a state
	// change.
	AlarmStateSecondary
)

// AlarmType classifies how an alarm is reported.
type AlarmType int

const (
	AlarmTypeUnknown AlarmType = iota
	// AlarmTypeEdgeDetected is reported once the alarm fails consecutively
	// enough times to meet its reporting count/sample threshold.
	AlarmTypeEdgeDetected
	// AlarmTypeOccurrence is reported each time the condition is met.
	AlarmTypeOccurrence
	// AlarmTypeFilteredOccurrence is reported at most once every 15 minutes
	// while the condition holds.
	AlarmTypeFilteredOccurrence
)

// AlarmDevice is the hardware device area an alarm originated from.
type AlarmDevice int

const (
	AlarmDeviceUnknown AlarmDevice = iota
	AlarmDeviceControl
	AlarmDevicePedestal
	AlarmDeviceReceiver
	AlarmDeviceSignalProcessor
	AlarmDeviceCommunications
	AlarmDeviceTowerUtilities
	AlarmDeviceTransmitter
)

// AlarmCode is a single entry from the RDA alarm code catalog: the
// classification data associated with one of RDAStatusData's AlarmCodes
// entries.
type AlarmCode struct {
	Code       uint16
	State      AlarmState
	Type       AlarmType
	Device     AlarmDevice
	Message    string
	Recognized bool
}

// alarmCatalog maps alarm codes to their catalog entry. The RDA ICD defines
// several hundred codes; none of the retrieved reference material carries
// that table's contents (only the Rust struct shape the entries would take,
// in rda_status_data/alarm/model.rs), so this catalog starts empty and every
// lookup resolves through the Unknown fallback below. Entries can be added
// here as the catalog data becomes available, without changing any caller.
var alarmCatalog = map[uint16]AlarmCode{}

// LookupAlarmCode resolves a raw alarm code to its catalog entry, falling
// back to an AlarmCode with Recognized=false and a generic message when the
// code is not in the catalog.
func LookupAlarmCode(code uint16) AlarmCode {
	if entry, ok := alarmCatalog[code]; ok {
		return entry
	}
	return AlarmCode{
		Code:       code,
		Message:    fmt.Sprintf("unrecognized alarm code %d", code),
		Recognized: false,
	}
}
