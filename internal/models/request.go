package models

// Coordinates is the wire form of a Point.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinates) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

type DeviceRequest struct {
	Coordinates Coordinates `json:"coordinates"`
}

type LinkStationEntry struct {
	Coordinates Coordinates `json:"coordinates"`
	Reach       int         `json:"reach"`
}

// LinkStationRequest is the JSON body accepted by the most suitable link station endpoint.
type LinkStationRequest struct {
	Device       DeviceRequest      `json:"device"`
	LinkStations []LinkStationEntry `json:"linkStations"`
}

func (r LinkStationRequest) DevicePoint() Point {
	return r.Device.Coordinates.Point()
}

func (r LinkStationRequest) Stations() []LinkStation {
	stations := make([]LinkStation, 0, len(r.LinkStations))
	for _, s := range r.LinkStations {
		stations = append(stations, NewLinkStation(s.Coordinates.X, s.Coordinates.Y, s.Reach))
	}
	return stations
}

// NewLinkStationRequest builds the wire form of a request, mostly useful to clients and tests.
func NewLinkStationRequest(device Point, stations []LinkStation) LinkStationRequest {
	req := LinkStationRequest{
		Device:       DeviceRequest{Coordinates: Coordinates{X: device.X, Y: device.Y}},
		LinkStations: make([]LinkStationEntry, 0, len(stations)),
	}
	for _, s := range stations {
		req.LinkStations = append(req.LinkStations, LinkStationEntry{
			Coordinates: Coordinates{X: s.X, Y: s.Y},
			Reach:       s.Reach,
		})
	}
	return req
}
