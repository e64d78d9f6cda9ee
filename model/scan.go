package model

import "github.com/jddeal/nexrad/archive2"

// Scan is a complete radar volume: the coverage pattern that drove the scan
// strategy plus every sweep collected under it, in the order each elevation
// number was first encountered in the file.
type Scan struct {
	VCP    *VolumeCoveragePattern
	Sweeps []*Sweep
}

// AssembleScan projects a fully decoded Archive II file into a domain Scan.
// It requires at least one Type 5 (Volume Coverage Pattern) message and uses
// Type 31 (and, if present, legacy Type 1) radials for sweep assembly,
// grouped by elevation number in encounter order (§4.10).
func AssembleScan(file *archive2.File) (*Scan, error) {
	vcps := file.VolumeCoveragePatterns()
	if len(vcps) == 0 {
		return nil, &MissingCoveragePatternError{}
	}

	scan := &Scan{VCP: NewVolumeCoveragePattern(vcps[0])}

	order := make([]uint8, 0)
	byElevation := make(map[uint8][]*Radial)

	for _, msg := range file.Messages {
		switch contents := msg.Contents.(type) {
		case *archive2.DigitalRadarData:
			r := NewRadial(contents)
			if _, seen := byElevation[r.ElevationNumber]; !seen {
				order = append(order, r.ElevationNumber)
			}
			byElevation[r.ElevationNumber] = append(byElevation[r.ElevationNumber], r)
		case *archive2.DigitalRadarDataLegacy:
			r := NewRadialFromLegacy(contents)
			if _, seen := byElevation[r.ElevationNumber]; !seen {
				order = append(order, r.ElevationNumber)
			}
			byElevation[r.ElevationNumber] = append(byElevation[r.ElevationNumber], r)
		}
	}

	for _, elevation := range order {
		scan.Sweeps = append(scan.Sweeps, &Sweep{
			ElevationNumber: elevation,
			Radials:         byElevation[elevation],
		})
	}

	return scan, nil
}
