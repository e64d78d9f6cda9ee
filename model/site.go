package model

// Site describes the fixed, per-radar installation metadata carried in a
// Type 31 Volume Data Block.
type Site struct {
	ICAO        string
	Lat         float32
	Lon         float32
	HeightM     int16
	TowerHeight uint16
}
