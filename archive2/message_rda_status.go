package archive2

// AlarmSummary decodes the RDA system's active alarm bit flags
// (User 3.2.4.6, Table IV).
type AlarmSummary uint16

// None reports whether no alarms are active.
func (a AlarmSummary) None() bool { return a == 0 }

// TowerUtilities reports whether the tower/utilities alarm is active.
func (a AlarmSummary) TowerUtilities() bool { return a&0b0000001 != 0 }

// Pedestal reports whether the pedestal alarm is active.
func (a AlarmSummary) Pedestal() bool { return a&0b0000010 != 0 }

// Transmitter reports whether the transmitter alarm is active.
func (a AlarmSummary) Transmitter() bool { return a&0b0000100 != 0 }

// Receiver reports whether the receiver alarm is active.
func (a AlarmSummary) Receiver() bool { return a&0b0001000 != 0 }

// RDAControl reports whether the RDA control alarm is active.
func (a AlarmSummary) RDAControl() bool { return a&0b0010000 != 0 }

// Communication reports whether the communication alarm is active.
func (a AlarmSummary) Communication() bool { return a&0b0100000 != 0 }

// SignalProcessor reports whether the signal processor alarm is active.
func (a AlarmSummary) SignalProcessor() bool { return a&0b1000000 != 0 }

// ScanDataFlags decodes the RDA system's scan and data status flags
// (User 3.2.4.6, Table IV).
type ScanDataFlags uint16

// AVSETEnabled reports whether AVSET is enabled.
func (f ScanDataFlags) AVSETEnabled() bool { return f&0b0001 != 0 }

// AVSETDisabled reports whether AVSET is disabled.
func (f ScanDataFlags) AVSETDisabled() bool { return f&0b0010 != 0 }

// EBCEnabled reports whether EBC is enabled.
func (f ScanDataFlags) EBCEnabled() bool { return f&0b0100 != 0 }

// RDALogDataEnabled reports whether RDA log data is enabled.
func (f ScanDataFlags) RDALogDataEnabled() bool { return f&0b1000 != 0 }

// TimeSeriesDataRecordingEnabled reports whether time series data recording
// is enabled.
func (f ScanDataFlags) TimeSeriesDataRecordingEnabled() bool { return f&0b10000 != 0 }

// RDAStatusData is the Message Type 2 body: current RDA system operating
// status, performance parameters, and active alarms (User 3.2.4.6).
type RDAStatusData struct {
	RDAStatus                                  uint16
	OperabilityStatus                          uint16
	ControlStatus                              uint16
	AuxiliaryPowerGeneratorState                uint16
	AverageTransmitterPower                    uint16
	HorizontalReflectivityCalibrationCorrection int16
	DataTransmissionEnabled                    uint16
	VolumeCoveragePattern                      int16
	RDAControlAuthorization                    uint16
	RDABuildNumberRaw                          uint16
	OperationalMode                            uint16
	SuperResolutionStatus                      uint16
	ClutterMitigationDecisionStatus            uint16
	RDAScanAndDataFlags                        ScanDataFlags
	RDAAlarmSummary                            AlarmSummary
	CommandAcknowledgement                     uint16
	ChannelControlStatus                       uint16
	SpotBlankingStatus                         uint16
	BypassMapGenerationDate                    uint16
	BypassMapGenerationTime                    uint16
	ClutterFilterMapGenerationDate             uint16
	ClutterFilterMapGenerationTime             uint16
	VerticalReflectivityCalibrationCorrection  int16
	TransitionPowerSourceStatus                 uint16
	RMSControlStatus                           uint16
	PerformanceCheckStatus                     uint16

	// AlarmCodes holds up to 14 active alarm codes; unused entries are zero.
	AlarmCodes [14]uint16

	SignalProcessorOptions uint16

	// DownloadedPatternNumber is the VCP number currently in use, as
	// downloaded from the RPG.
	DownloadedPatternNumber uint16
	StatusVersion           uint16
}

func (RDAStatusData) isMessageContents() {}

// BuildNumber returns the decoded RDA software build number.
func (d *RDAStatusData) BuildNumber() BuildNumber {
	return DecodeBuildNumber(d.RDABuildNumberRaw)
}

// Alarms resolves each of the status message's non-zero AlarmCodes entries
// against the alarm code catalog, via LookupAlarmCode.
func (d *RDAStatusData) Alarms() []AlarmCode {
	var alarms []AlarmCode
	for _, code := range d.AlarmCodes {
		if code == 0 {
			continue
		}
		alarms = append(alarms, LookupAlarmCode(code))
	}
	return alarms
}

func decodeRDAStatusData(payload []byte) (*RDAStatusData, error) {
	cur := NewCursor(payload)
	var d RDAStatusData
	var err error

	u16 := func(dst *uint16) {
		if err != nil {
			return
		}
		*dst, err = cur.ReadU16()
	}
	i16 := func(dst *int16) {
		if err != nil {
			return
		}
		*dst, err = cur.ReadI16()
	}

	u16(&d.RDAStatus)
	u16(&d.OperabilityStatus)
	u16(&d.ControlStatus)
	u16(&d.AuxiliaryPowerGeneratorState)
	u16(&d.AverageTransmitterPower)
	i16(&d.HorizontalReflectivityCalibrationCorrection)
	u16(&d.DataTransmissionEnabled)
	i16(&d.VolumeCoveragePattern)
	u16(&d.RDAControlAuthorization)
	u16(&d.RDABuildNumberRaw)
	u16(&d.OperationalMode)
	u16(&d.SuperResolutionStatus)
	u16(&d.ClutterMitigationDecisionStatus)
	var scanDataFlags uint16
	u16(&scanDataFlags)
	d.RDAScanAndDataFlags = ScanDataFlags(scanDataFlags)
	var alarmSummary uint16
	u16(&alarmSummary)
	d.RDAAlarmSummary = AlarmSummary(alarmSummary)
	u16(&d.CommandAcknowledgement)
	u16(&d.ChannelControlStatus)
	u16(&d.SpotBlankingStatus)
	u16(&d.BypassMapGenerationDate)
	u16(&d.BypassMapGenerationTime)
	u16(&d.ClutterFilterMapGenerationDate)
	u16(&d.ClutterFilterMapGenerationTime)
	i16(&d.VerticalReflectivityCalibrationCorrection)
	u16(&d.TransitionPowerSourceStatus)
	u16(&d.RMSControlStatus)
	u16(&d.PerformanceCheckStatus)
	for i := range d.AlarmCodes {
		u16(&d.AlarmCodes[i])
	}
	u16(&d.SignalProcessorOptions)
	if err == nil {
		err = cur.Advance(17 * 2) // spares
	}
	u16(&d.DownloadedPatternNumber)
	u16(&d.StatusVersion)

	if err != nil {
		return nil, err
	}
	return &d, nil
}
