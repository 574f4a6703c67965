package model

// Station represents one discoverable radio stream as reported by the
// radio-browser upstream. Country holds the country the record was fetched
// for, not necessarily the upstream's own country field.
type Station struct {
	StationUUID string `json:"stationuuid"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	URLResolved string `json:"url_resolved"`
	Country     string `json:"country"`
	Tags        string `json:"tags"`
	Favicon     string `json:"favicon,omitempty"`
	Bitrate     int    `json:"bitrate,omitempty"`
	Codec       string `json:"codec,omitempty"`
	ClickCount  int    `json:"clickcount"`
}

// Valid reports whether the station can be included in a result set.
// Records without a display name or a resolved stream URL are unplayable.
func (s Station) Valid() bool {
	return s.Name != "" && s.URLResolved != ""
}
